package main

import (
	"github.com/spf13/cobra"

	"movegen/internal/pipeline"
)

func checkCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Scan and cross-reference the inputs without writing output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			_, err = pipeline.Check(cfg, opts.logger())

			return err
		},
	}

	opts.bind(cmd)

	return cmd
}
