package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"calcyard/internal/config"
	"calcyard/pkg/calc"
)

// loadConfig resolves the --config flag or walks up from the working
// directory; a missing manifest is not an error, just defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	if path == "" {
		found, ok, err := config.Find(".")
		if err != nil {
			return config.Config{}, err
		}
		if !ok {
			return config.Default(), nil
		}
		path = found
	}

	return config.Load(path)
}

// newEvaluator builds an evaluator with the host configuration applied:
// every [constants] entry becomes a Keyword extension, registered before any
// evaluation so it can override built-ins like "pi". Names register in
// sorted order; extension lookup is first-match, so order must be
// deterministic.
func newEvaluator(cmd *cobra.Command) (*calc.Evaluator, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}

	names := make([]string, 0, len(cfg.Constants))
	for name := range cfg.Constants {
		names = append(names, name)
	}
	sort.Strings(names)

	ev := calc.New()
	for _, name := range names {
		ev.RegisterConstant(name, cfg.Constants[name])
	}
	return ev, cfg, nil
}
