package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/panyam/cdecl/parser"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <declaration...>",
	Short: "Explain one C declaration and exit",
	Long: `Parses the declaration given on the command line and prints its English
description. Quote the declaration so the shell leaves it alone:

  cdecl explain "int *(*f)(int, char **);"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		line := strings.Join(args, " ")
		out, err := parser.ParseDeclaration(line)
		if err != nil {
			color.Red("%s", err)
			os.Exit(1)
		}
		fmt.Println(out)
	},
}

func init() {
	AddCommand(explainCmd)
}
