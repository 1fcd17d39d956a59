package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javaslice/project"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				return writeDefaultConfig(cmd, opts.dir)
			}
			p, err := loadProject(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if p.ConfigFile != "" {
				fmt.Fprintf(out, "# %s\n", p.ConfigFile)
			} else {
				fmt.Fprintln(out, "# defaults")
			}
			fmt.Fprintf(out, "# detected roots: %v\n", p.Roots)
			return p.Config.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "write the default configuration to "+configFileName)

	return cmd
}

func writeDefaultConfig(cmd *cobra.Command, dir string) error {
	path := filepath.Join(dir, configFileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists", path)
		}
		return err
	}
	defer f.Close()
	if err := project.Default().Encode(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
