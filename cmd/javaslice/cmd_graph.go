package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javaslice/format"
)

func newGraphCmd(opts *globalOptions) *cobra.Command {
	var graphFormat string

	cmd := &cobra.Command{
		Use:   "graph <Type#member>...",
		Short: "Print the dependency closure of the seeds without writing files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, res, err := sliceProject(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			if graphFormat == "" {
				graphFormat = p.Config.Output.Format
			}
			enc, err := format.NewGraphEncoder(graphFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("encode graph: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphFormat, "format", "f", "", "output format (line, json, yaml)")

	return cmd
}
