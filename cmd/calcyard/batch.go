package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] file",
	Short: "Evaluate a file of expressions concurrently",
	Long:  `Batch reads one expression per line (blank lines and '#' comments skipped) and evaluates them in parallel on a shared evaluator`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "number of parallel evaluations (0 = GOMAXPROCS)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	var exprs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	ev, _, err := newEvaluator(cmd)
	if err != nil {
		return err
	}

	results, err := ev.EvaluateAll(cmd.Context(), exprs, jobs)
	if err != nil {
		return err
	}

	okLine := color.New(color.FgGreen)
	errLine := color.New(color.FgRed)
	okLine.DisableColor()
	errLine.DisableColor()
	if useColor(cmd, os.Stdout) {
		okLine.EnableColor()
		errLine.EnableColor()
	}

	failed := 0
	for _, res := range results {
		if !res.Ok {
			failed++
			errLine.Printf("%s => error: %s\n", res.Expr, res.Output)
			continue
		}
		if quiet {
			fmt.Println(res.Output)
			continue
		}
		okLine.Printf("%s => %s\n", res.Expr, res.Output)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}
