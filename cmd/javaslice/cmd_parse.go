package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javaslice/format"
	"github.com/dhamidi/javaslice/java/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .java file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}
			tree, err := parser.Parse(data, parser.WithFile(filename))
			if err != nil {
				return fmt.Errorf("parse java file: %w", err)
			}
			defer tree.Close()

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "json":
				if err := format.NewASTJSONEncoder(out).Encode(tree.Root()); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "sexp":
				if includePositions {
					fmt.Fprintln(out, tree.Root().StringWithPositions())
				} else {
					fmt.Fprintln(out, tree.Root().String())
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			for _, e := range tree.Errors() {
				fmt.Fprintln(cmd.ErrOrStderr(), e.Error())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexp", "output format (sexp, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include node positions in sexp output")

	return cmd
}
