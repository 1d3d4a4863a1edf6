package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/squall321/AdvancedModeller/format"
	"github.com/squall321/AdvancedModeller/kfile"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.k>",
		Short: "Print per-family entity counts for a K-file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			result := kfile.NewParser(kfile.WithIndex(false)).ParseFile(filename)
			if len(result.Errors) > 0 {
				return fmt.Errorf("parse %s: %s", filename, result.Errors[0])
			}

			if err := format.NewTextEncoder(os.Stdout).Encode(result); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}
}
