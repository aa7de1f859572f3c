package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cdecl",
	Short: "cdecl translates C declarations into plain English",
	Long: `cdecl parses a single C declaration (K&R's classic exercise, extended
with C99 rules) and describes the declared entity in English:

  $ cdecl explain "char *(*f)(int, char **);"
  f: pointer to function (int, pointer to pointer to char) returning pointer to char

Run without arguments to get an interactive prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
