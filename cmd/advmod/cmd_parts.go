package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/squall321/AdvancedModeller/kfile"
)

func newPartsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parts <file.k>",
		Short: "List part ids and names defined in a K-file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			parser := kfile.NewParser(
				kfile.WithNodes(false),
				kfile.WithElements(false),
				kfile.WithIndex(false),
			)
			result := parser.ParseFile(filename)
			if len(result.Errors) > 0 {
				return fmt.Errorf("parse %s: %s", filename, result.Errors[0])
			}

			names := result.PartNames()
			pids := make([]int32, 0, len(names))
			for pid := range names {
				pids = append(pids, pid)
			}
			sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

			for _, pid := range pids {
				fmt.Printf("%10d  %s\n", pid, names[pid])
			}
			return nil
		},
	}
}
