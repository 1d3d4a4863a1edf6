package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/squall321/AdvancedModeller/format"
	"github.com/squall321/AdvancedModeller/kfile"
)

var log = commonlog.GetLogger("advmod")

func newParseCmd() *cobra.Command {
	var outputFormat string
	var noIndex bool

	cmd := &cobra.Command{
		Use:   "parse <file.k>",
		Short: "Parse a K-file and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			parser := kfile.NewParser(kfile.WithIndex(!noIndex))
			result := parser.ParseFile(filename)
			if len(result.Errors) > 0 {
				return fmt.Errorf("parse %s: %s", filename, result.Errors[0])
			}
			log.Infof("parsed %s: %d lines in %s", filename, result.TotalLines, result.ParseTime)

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(result); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json or text)")
	cmd.Flags().BoolVar(&noIndex, "no-index", false, "skip building id lookup maps")

	return cmd
}
