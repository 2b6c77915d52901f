package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enigmatic-code/run/core/launcher"
)

var exitStatus int

// rootCmd represents the whole program; run has no subcommands. Flag
// parsing is disabled because the launcher's getopt grammar (attached
// optional values, options read again from the directive line) is not
// one cobra's flags can express; the raw argument list goes straight to
// the launcher.
var rootCmd = &cobra.Command{
	Use:                "run [<options>] <file> [<args>]",
	Short:              "Run a script via the interpreter named on its first line",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	Args:               cobra.ArbitraryArgs,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		exitStatus = launcher.New().Run(args)
		return nil
	},
}

// Execute runs the root command and returns the process exit status.
// This is called by main.main().
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "run:", err)
		return 1
	}
	return exitStatus
}
