/*
File    : lux/script/script.go
Project : Lux language interpreter
*/

// Package script runs .lux files: it reads the source, drives the
// compile pipeline (lexer, parser, type checker, evaluator), and
// renders failures as colored diagnostics with source context. The CLI
// maps any returned error to a non-zero exit status.
package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/eval"
	"github.com/samjay22/Lux/lexer"
	"github.com/samjay22/Lux/parser"
	"github.com/samjay22/Lux/types"
)

// RunFile reads and executes a script. Failures are rendered to stderr
// with source context and returned so the caller can exit non-zero.
func RunFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Failed to read file '%s': %v", path, err)
	}

	if err := RunSource(string(source), path, os.Stdout); err != nil {
		report(err, string(source))
		return err
	}
	return nil
}

// RunSource drives the full pipeline over a source string. The filename
// is carried into every location; import paths resolve against the
// file's directory first. Output from builtins goes to w.
func RunSource(source, filename string, w io.Writer) error {
	tokens, err := lexer.NewLexer(source, filename).Tokenize()
	if err != nil {
		return err
	}

	root, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return err
	}

	dir := ""
	if filename != "" {
		dir = filepath.Dir(filename)
	}

	checker := types.NewTypeChecker()
	checker.SetSourceDir(dir)
	if err := checker.Check(root); err != nil {
		return err
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(w)
	evaluator.SetSourceDir(dir)
	return evaluator.Interpret(root)
}

// ShowTokens dumps the token stream of a script: an indexed listing of
// each token's type and lexeme, then a total count.
func ShowTokens(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Failed to read file '%s': %v", path, err)
	}

	tokens, err := lexer.NewLexer(string(source), path).Tokenize()
	if err != nil {
		report(err, string(source))
		return err
	}

	separator := ""
	for i := 0; i < 60; i++ {
		separator += "="
	}

	fmt.Printf("Tokens for '%s':\n%s\n", path, separator)
	for i, token := range tokens {
		fmt.Printf("%4d: %-20s | %q\n", i, string(token.Type), token.Lexeme)
	}
	fmt.Printf("%s\nTotal tokens: %d\n", separator, len(tokens))

	return nil
}

// report renders an error to stderr, with source context when the
// error is a LuxError carrying a location.
func report(err error, source string) {
	if luxErr, ok := err.(*diag.LuxError); ok {
		fmt.Fprint(os.Stderr, diag.WithSource(luxErr, source).Format())
		return
	}
	color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
}
