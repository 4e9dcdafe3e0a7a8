// Package config holds the run configuration: the three fixed paths and the
// generation threshold, with optional YAML overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration for one run. The transform entry point
// takes it as an explicit value; nothing reads process-wide state.
type Config struct {
	// MetadataPath is the moves CSV table.
	MetadataPath string `yaml:"metadata"`
	// SourcePath is the battle_moves.h to rewrite.
	SourcePath string `yaml:"source"`
	// OutputPath is where the rewritten table is written.
	OutputPath string `yaml:"output"`
	// MaxGeneration is the inclusion threshold (moves with a higher
	// generation are elided). Zero means unset: Load and the CLI flags
	// treat 0 as "use the default of 3".
	MaxGeneration int `yaml:"max_generation"`
}

// Default returns the repository-relative default configuration.
func Default() Config {
	return Config{
		MetadataPath:  "testing/moves.csv",
		SourcePath:    "src/data/battle_moves.h",
		OutputPath:    "testing/battle_moves.h",
		MaxGeneration: 3,
	}
}

// Load reads a YAML config file and overlays it onto the defaults.
// A missing file is not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	return cfg, nil
}

// applyDefaults fills in zero values left by a sparse config file. Zero is
// the "unset" sentinel throughout, so an explicit `max_generation: 0` reads
// as the default threshold, not as "generation zero only".
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.MetadataPath == "" {
		cfg.MetadataPath = def.MetadataPath
	}

	if cfg.SourcePath == "" {
		cfg.SourcePath = def.SourcePath
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = def.OutputPath
	}

	if cfg.MaxGeneration == 0 {
		cfg.MaxGeneration = def.MaxGeneration
	}
}
