package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calcyard/internal/tokfmt"
	"calcyard/pkg/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] \"expression\"",
	Short: "Tokenize an expression",
	Long:  `Tokenize breaks an expression into its infix token sequence without converting or evaluating it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	ev, _, err := newEvaluator(cmd)
	if err != nil {
		return err
	}

	return writeTokens(ev.Tokens(args[0]), format)
}

func writeTokens(tokens []token.Token, format string) error {
	switch format {
	case "pretty":
		return tokfmt.Pretty(os.Stdout, tokens)
	case "json":
		return tokfmt.JSON(os.Stdout, tokens)
	case "msgpack":
		return tokfmt.Msgpack(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
