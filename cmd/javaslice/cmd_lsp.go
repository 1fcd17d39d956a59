package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/javaslice/format"
	"github.com/dhamidi/javaslice/java/codebase"
)

func newLSPCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Serves the workspace/executeCommand "` + codebase.SliceCommand + `" over stdio.
The command takes a seed and answers with the slice graph.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts)
			if err != nil {
				return err
			}
			slicer := func(c *codebase.Codebase, spec string) (any, error) {
				seeds, err := parseSeeds([]string{spec})
				if err != nil {
					return nil, err
				}
				res, err := closeOver(c, seeds, p.SliceOptions())
				if err != nil {
					return nil, err
				}
				return format.NewGraph(res), nil
			}
			server := codebase.NewLSPServer(version, slicer, p.CodebaseOptions()...)
			return server.RunStdio()
		},
	}
}
