package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javaslice/format"
	"github.com/dhamidi/javaslice/java"
	"github.com/dhamidi/javaslice/java/parser"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the declarations and keys of a .java file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if ext := filepath.Ext(filename); ext != ".java" {
				return fmt.Errorf("unsupported file extension: %s (expected .java)", ext)
			}
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}
			unit, err := java.UnitFromSource(data, parser.WithFile(filename))
			if err != nil {
				return fmt.Errorf("parse java file: %w", err)
			}

			out := cmd.OutOrStdout()
			switch dumpFormat {
			case "json":
				if err := format.NewJSONDeclEncoder(out).Encode(unit); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "line":
				if err := format.NewLineDeclEncoder(out).Encode(unit); err != nil {
					return fmt.Errorf("encode line: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s (expected json or line)", dumpFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format (json, line)")

	return cmd
}
