// Package config loads the optional calcyard.toml host configuration. The
// config is how an embedding host registers extension constants at startup
// without writing code; the CLI applies it before evaluating anything.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest searched for by Find.
const FileName = "calcyard.toml"

// Config is the host configuration.
type Config struct {
	// Constants maps extension constant names to their numeric values;
	// each entry is registered as a Keyword extension and therefore can
	// override a built-in symbol such as "pi".
	Constants map[string]float64 `toml:"constants"`
	REPL      REPLConfig         `toml:"repl"`
}

// REPLConfig holds interactive-session settings.
type REPLConfig struct {
	Prompt string `toml:"prompt"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{REPL: REPLConfig{Prompt: "calc> "}}
}

// Find walks up from startDir looking for a calcyard.toml; ok is false when
// no manifest exists anywhere up the tree.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and decodes a manifest, filling defaults for omitted fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.REPL.Prompt == "" {
		cfg.REPL.Prompt = Default().REPL.Prompt
	}
	return cfg, nil
}
