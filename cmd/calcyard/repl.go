package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"calcyard/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Repl opens an interactive prompt that evaluates each line as an expression; quit with ctrl+c, ctrl+d, or :q`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	ev, cfg, err := newEvaluator(cmd)
	if err != nil {
		return err
	}

	model := ui.NewRepl(ev, cfg.REPL.Prompt)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("repl failed: %w", err)
	}
	return nil
}
