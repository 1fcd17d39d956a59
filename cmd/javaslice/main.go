package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

type globalOptions struct {
	verbose    int
	logFile    string
	configFile string
	dir        string
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:          "javaslice",
		Short:        "Extract the declarations a Java entry point depends on",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// -1 is warnings only; every -v lowers the threshold by one level.
			verbosity := opts.verbose - 1
			if opts.logFile != "" {
				commonlog.Configure(verbosity, &opts.logFile)
			} else {
				commonlog.Configure(verbosity, nil)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.StringVar(&opts.configFile, "config", "", "configuration file (default: ./"+configFileName+")")
	flags.StringVarP(&opts.dir, "dir", "C", ".", "project root")

	rootCmd.AddCommand(newSliceCmd(&opts))
	rootCmd.AddCommand(newGraphCmd(&opts))
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newLSPCmd(&opts))
	rootCmd.AddCommand(newConfigCmd(&opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
