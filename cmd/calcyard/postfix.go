package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var postfixCmd = &cobra.Command{
	Use:   "postfix [flags] \"expression\"",
	Short: "Show the postfix (RPN) form of an expression",
	Long:  `Postfix tokenizes an expression and runs the shunting-yard conversion, printing the reverse Polish token sequence`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPostfix,
}

func init() {
	postfixCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runPostfix(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	ev, _, err := newEvaluator(cmd)
	if err != nil {
		return err
	}

	return writeTokens(ev.Postfix(args[0]), format)
}
