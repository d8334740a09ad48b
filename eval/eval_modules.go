/*
File    : lux/eval/eval_modules.go
Project : Lux language interpreter
*/
package eval

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/parser"
	"github.com/samjay22/Lux/std"
)

// importModule resolves an import path (source directory first, then
// lib/, tools/, and the bare path), parses the module, and executes its
// top-level statements in the importer's environment - a flat
// namespace, no qualification. Modules load once per evaluator;
// repeated imports of the same path are no-ops.
func (e *Evaluator) importModule(n *parser.ImportStatementNode) error {
	if e.loadedModules[n.Path] {
		return nil
	}

	resolved, ok := std.ResolveModule(e.sourceDir, n.Path)
	if !ok {
		return diag.NewRuntimeError(fmt.Sprintf("Module '%s' not found", n.Path), n.Location)
	}

	source, err := os.ReadFile(resolved)
	if err != nil {
		return diag.NewRuntimeError(fmt.Sprintf("Failed to read module '%s': %v", n.Path, err), n.Location)
	}

	root, err := parser.ParseSource(string(source), resolved)
	if err != nil {
		return err
	}

	// Mark before executing so mutually importing modules terminate
	e.loadedModules[n.Path] = true

	previousDir := e.sourceDir
	e.sourceDir = filepath.Dir(resolved)
	defer func() { e.sourceDir = previousDir }()

	return e.execStmts(root.Statements)
}
