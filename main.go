/*
File    : lux/main.go
Project : Lux language interpreter

Package main is the entry point for the Lux interpreter. It provides
two modes of operation:
 1. REPL mode (default): interactive read-eval-print loop
 2. File mode: execute a .lux source file from the command line

The interpreter uses a lexer-parser-checker-evaluator pipeline to
process Lux code. Any compilation or runtime failure exits non-zero.
*/
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/samjay22/Lux/repl"
	"github.com/samjay22/Lux/script"
)

// VERSION is the current version of the Lux interpreter.
var VERSION = "v0.1.0"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "lux > "

// BANNER is the logo displayed when starting the REPL.
var BANNER = `
 ██▓     █    ██ ▒██   ██▒
▓██▒     ██  ▓██▒▒▒ █ █ ▒░
▒██░    ▓██  ▒██░░░  █   ░
▒██░    ▓▓█  ░██░ ░ █ █ ▒
░██████▒▒▒█████▓ ▒██▒ ▒██▒
░ ▒░▓  ░░▒▓▒ ▒ ▒ ▒▒ ░ ░▓ ░
`

// LINE is a separator used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var showTokens bool

// rootCmd is the lux command: run a script, dump its tokens, or start
// the REPL when no script is given.
var rootCmd = &cobra.Command{
	Use:   "lux [script]",
	Short: "The Lux language interpreter",
	Long: `Lux - a statically-typed scripting language with Lua-style tables
and spawn/await concurrency.

Running without a script starts the interactive REPL.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			repler := repl.NewRepl(BANNER, VERSION, LINE, PROMPT)
			repler.Start(os.Stdout)
			return nil
		}

		if showTokens {
			return script.ShowTokens(args[0])
		}
		return script.RunFile(args[0])
	},
}

// init wires the flags.
func init() {
	rootCmd.Flags().BoolVarP(&showTokens, "tokens", "t", false, "show tokenization output (lexer only)")
}

// main executes the root command. Errors are already rendered as
// diagnostics by the script package; the exit status is all that is
// left to map.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
