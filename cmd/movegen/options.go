package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"movegen/internal/config"
)

// defaultConfigPath is the optional config file checked by every command.
const defaultConfigPath = "movegen.yaml"

// options holds the flag values shared by generate and check.
type options struct {
	configPath string
	metadata   string
	source     string
	output     string
	maxGen     int
	verbose    bool
}

// bind registers the shared flags on cmd.
func (o *options) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", defaultConfigPath, "config file (optional)")
	cmd.Flags().StringVar(&o.metadata, "metadata", "", "moves CSV path (overrides config)")
	cmd.Flags().StringVar(&o.source, "source", "", "battle_moves.h path (overrides config)")
	cmd.Flags().StringVar(&o.output, "output", "", "output path (overrides config)")
	cmd.Flags().IntVar(&o.maxGen, "max-gen", 0, "generation inclusion threshold (0 keeps the config value)")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
}

// resolve loads the config file and applies flag overrides.
func (o *options) resolve() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	if o.metadata != "" {
		cfg.MetadataPath = o.metadata
	}

	if o.source != "" {
		cfg.SourcePath = o.source
	}

	if o.output != "" {
		cfg.OutputPath = o.output
	}

	if o.maxGen != 0 {
		cfg.MaxGeneration = o.maxGen
	}

	return cfg, nil
}

// logger builds the console logger for CLI runs.
func (o *options) logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
