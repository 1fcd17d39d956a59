package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javaslice/format"
)

func newSliceCmd(opts *globalOptions) *cobra.Command {
	var outDir string
	var graphFormat string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "slice <Type#member>...",
		Short: "Write the declarations the seeds depend on as Java sources",
		Long: `Computes the closure of the given seeds and writes one Java file per
top-level type below the output directory. Seeds have the form Type,
Type#member, Type#member(ParamType,...) or Type#<init>.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, res, err := sliceProject(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			if graphFormat == "" {
				graphFormat = p.Config.Output.Format
			}
			if outDir == "" {
				outDir = p.OutputDir()
			}

			if !quiet {
				enc, err := format.NewGraphEncoder(graphFormat, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if err := enc.Encode(res); err != nil {
					return fmt.Errorf("encode graph: %w", err)
				}
			}

			written, err := format.WriteUnits(outDir, res)
			if err != nil {
				return err
			}
			log.Infof("wrote %d files below %s", len(written), outDir)
			for _, ref := range res.Unresolved {
				log.Debugf("unresolved: %s", ref)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from configuration)")
	cmd.Flags().StringVarP(&graphFormat, "format", "f", "", "graph format printed to stdout (line, json, yaml)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the graph")

	return cmd
}
