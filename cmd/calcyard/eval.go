package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] \"expression\"...",
	Short: "Evaluate expressions",
	Long:  `Eval runs each expression through the pipeline and prints its result; with no arguments it reads one expression per line from stdin`,
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().Bool("numeric", false, "require a numeric result and print it as a float")
}

func runEval(cmd *cobra.Command, args []string) error {
	numeric, err := cmd.Flags().GetBool("numeric")
	if err != nil {
		return fmt.Errorf("failed to get numeric flag: %w", err)
	}

	ev, _, err := newEvaluator(cmd)
	if err != nil {
		return err
	}

	exprs := args
	if len(exprs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			exprs = append(exprs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	errLine := color.New(color.FgRed)
	errLine.DisableColor()
	if useColor(cmd, os.Stderr) {
		errLine.EnableColor()
	}

	failed := 0
	for _, expr := range exprs {
		ok, out := ev.TryEvaluate(expr)
		if !ok {
			failed++
			errLine.Fprintf(os.Stderr, "error: %s\n", out)
			continue
		}

		if numeric {
			numOk, value := ev.TryEvaluateNumeric(expr)
			if !numOk {
				failed++
				errLine.Fprintf(os.Stderr, "error: result is not numeric: %s\n", out)
				continue
			}
			fmt.Fprintf(os.Stdout, "%g\n", value)
			continue
		}

		fmt.Fprintln(os.Stdout, out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}
