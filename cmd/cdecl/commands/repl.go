package commands

import (
	"fmt"

	"github.com/c-bata/go-prompt"
	"github.com/fatih/color"
	"github.com/panyam/cdecl/parser"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive declaration prompt",
	Long: `Reads one declaration per line and prints its English description, or
the syntax error when the declaration is not valid. An empty line quits.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func init() {
	AddCommand(replCmd)
}

// The keywords the parser understands, offered as completions.
var replSuggestions = []prompt.Suggest{
	{Text: "void", Description: "type specifier"},
	{Text: "char", Description: "type specifier"},
	{Text: "short", Description: "type specifier"},
	{Text: "int", Description: "type specifier"},
	{Text: "long", Description: "type specifier"},
	{Text: "float", Description: "type specifier"},
	{Text: "double", Description: "type specifier"},
	{Text: "signed", Description: "type specifier"},
	{Text: "unsigned", Description: "type specifier"},
	{Text: "const", Description: "type qualifier"},
	{Text: "volatile", Description: "type qualifier"},
	{Text: "restrict", Description: "pointer qualifier"},
	{Text: "auto", Description: "storage class"},
	{Text: "register", Description: "storage class"},
	{Text: "static", Description: "storage class"},
	{Text: "extern", Description: "storage class"},
	{Text: "typedef", Description: "storage class"},
}

func replCompleter(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if word == "" {
		return nil
	}
	return prompt.FilterHasPrefix(replSuggestions, word, true)
}

func runRepl() {
	fmt.Println("Type a C declaration, e.g. int *(*f)(int, char **);")
	fmt.Println("An empty line quits.")

	promptText := env.Str("CDECL_PROMPT", "cdecl> ")
	for {
		line := prompt.Input(promptText, replCompleter)
		if line == "" {
			return
		}
		out, err := parser.ParseDeclaration(line)
		if err != nil {
			color.Red("%s\n", err)
			continue
		}
		fmt.Printf("%s\n\n", out)
	}
}
