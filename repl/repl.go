/*
File    : lux/repl/repl.go
Project : Lux language interpreter

Package repl implements the Read-Eval-Print Loop for the Lux
interpreter. The REPL provides an interactive environment where users
can enter Lux code line by line, see immediate results, and navigate
command history with the arrow keys. State persists across lines: one
type checker and one evaluator live for the whole session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/eval"
	"github.com/samjay22/Lux/parser"
	"github.com/samjay22/Lux/types"
)

// Color definitions for REPL output:
// - blueColor: separator lines
// - yellowColor: version info
// - redColor: error messages
// - greenColor: banner
// - cyanColor: usage instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl encapsulates the configuration of an interactive session.
type Repl struct {
	Banner  string // banner displayed at startup
	Version string // version string of the interpreter
	Line    string // separator line for visual formatting
	Prompt  string // command prompt shown to the user
}

// NewRepl creates a REPL instance with the given visual configuration.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Lux "+r.Version+" - Language Interpreter")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. The loop reads a line, runs it
// through the pipeline against the session's persistent checker and
// evaluator, prints any error, and continues until '.exit' or EOF.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	checker := types.NewTypeChecker()
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			writer.Write([]byte("Goodbye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Goodbye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeLine(writer, line, checker, evaluator)
	}
}

// executeLine runs one input line: parse, check, evaluate. Unlike file
// execution, the REPL continues after errors so the user can correct
// and retry; successful state (bindings, functions, tasks) accumulates.
func (r *Repl) executeLine(writer io.Writer, line string, checker *types.TypeChecker, evaluator *eval.Evaluator) {
	root, err := parser.ParseSource(line, "<repl>")
	if err != nil {
		r.printError(writer, err, line)
		return
	}

	if err := checker.Check(root); err != nil {
		r.printError(writer, err, line)
		return
	}

	if err := evaluator.Interpret(root); err != nil {
		r.printError(writer, err, line)
	}
}

// printError renders a failure in red, with source context when the
// error carries a location.
func (r *Repl) printError(writer io.Writer, err error, source string) {
	if luxErr, ok := err.(*diag.LuxError); ok {
		io.WriteString(writer, diag.WithSource(luxErr, source).Format())
		return
	}
	redColor.Fprintf(writer, "%v\n", err)
}
