package main

import (
	"github.com/spf13/cobra"

	"movegen/internal/pipeline"
)

func generateCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the output table from the CSV and source header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			_, err = pipeline.Run(cfg, opts.logger())

			return err
		},
	}

	opts.bind(cmd)

	return cmd
}
