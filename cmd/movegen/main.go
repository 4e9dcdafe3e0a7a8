// Package main provides the CLI entrypoint for movegen.
//
// movegen regenerates a battle_moves.h whose entries carry a .category
// field sourced from the moves CSV metadata table:
//   - Scans the gBattleMoves array into per-move blocks
//   - Cross-references each move's slug against the CSV
//   - Keeps in-generation moves (with the category line inserted), elides the rest
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "movegen",
		Short:   "movegen - regenerate battle_moves.h with metadata-sourced categories",
		Version: version,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
