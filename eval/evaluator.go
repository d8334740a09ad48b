/*
File    : lux/eval/evaluator.go
Project : Lux language interpreter
*/

// Package eval implements the tree-walking evaluator for Lux. The
// evaluator carries three pieces of state: the variable store, a
// control-flow register (none, return, break, continue), and a shared
// handle to the task executor. Statement lists run in order and
// short-circuit as soon as the register leaves the none state; the
// construct responsible for a given flow kind consumes it and resets
// the register.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/objects"
	"github.com/samjay22/Lux/parser"
	"github.com/samjay22/Lux/scope"
	"github.com/samjay22/Lux/std"
	"github.com/samjay22/Lux/tasks"
)

// flowState is the control-flow register's tag.
type flowState int

const (
	flowNone flowState = iota
	flowReturn
	flowBreak
	flowContinue
)

// Evaluator executes an AST against a variable store. REPL sessions
// keep one evaluator alive across lines; join threads construct fresh
// evaluators over store snapshots sharing the same executor handle.
type Evaluator struct {
	Scp      *scope.Scope    // current innermost scope
	Executor *tasks.Executor // shared task registry handle
	Writer   io.Writer       // output sink for builtins (default os.Stdout)
	Reader   *bufio.Reader   // input source for builtins (default os.Stdin)

	flow        flowState         // control-flow register
	returnValue objects.LuxObject // set while flow == flowReturn

	loadedModules map[string]bool // import paths already executed
	sourceDir     string          // directory of the script being run
}

// NewEvaluator creates an evaluator with a fresh global scope, a fresh
// executor, and every registered builtin bound into the global scope.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Scp:           scope.NewScope(nil),
		Executor:      tasks.NewExecutor(),
		Writer:        os.Stdout,
		Reader:        bufio.NewReader(os.Stdin),
		loadedModules: make(map[string]bool),
	}
	for _, builtin := range std.Builtins {
		ev.Scp.Bind(builtin.Name, builtin.Native())
	}
	return ev
}

// newTaskEvaluator creates the evaluator a join thread runs a task on:
// an independent snapshot of the parent's store and the parent's
// executor handle. Builtins are already present in the snapshot.
func newTaskEvaluator(snapshot *scope.Scope, executor *tasks.Executor, writer io.Writer) *Evaluator {
	return &Evaluator{
		Scp:           snapshot,
		Executor:      executor,
		Writer:        writer,
		Reader:        bufio.NewReader(os.Stdin),
		loadedModules: make(map[string]bool),
	}
}

// SetWriter redirects builtin output, e.g. to a buffer in tests.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects builtin input.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// SetSourceDir sets the directory import paths resolve against first.
func (e *Evaluator) SetSourceDir(dir string) {
	e.sourceDir = dir
}

// Interpret executes a program. A top-level return stops execution
// without error; the first failure aborts and is returned.
func (e *Evaluator) Interpret(root *parser.RootNode) error {
	for _, stmt := range root.Statements {
		if err := e.execStmt(stmt); err != nil {
			return err
		}
		if e.flow == flowReturn {
			break
		}
	}
	return nil
}

// execStmts runs a statement list in order, short-circuiting when the
// control-flow register leaves the none state.
func (e *Evaluator) execStmts(stmts []parser.StatementNode) error {
	for _, stmt := range stmts {
		if err := e.execStmt(stmt); err != nil {
			return err
		}
		if e.flow != flowNone {
			return nil
		}
	}
	return nil
}

// pushScope enters a child scope of the current one.
func (e *Evaluator) pushScope() {
	e.Scp = scope.NewScope(e.Scp)
}

// popScope returns to the enclosing scope, unwinding every binding the
// child introduced.
func (e *Evaluator) popScope() {
	if e.Scp.Parent != nil {
		e.Scp = e.Scp.Parent
	}
}

// CallFunction invokes a callable value with already-evaluated
// arguments. Native functions check arity exactly and report plain
// failures as Runtime errors at the call site; a failure that already
// is a LuxError (such as a parse error from parse_lux) is returned
// unchanged. User functions push a
// fresh scope, bind parameters positionally (excess or missing
// arguments are errors), run the body, and consume the Return register
// as the result.
func (e *Evaluator) CallFunction(fn objects.LuxObject, args []objects.LuxObject, loc diag.SourceLocation) (objects.LuxObject, error) {
	switch callee := fn.(type) {
	case *objects.NativeFunction:
		if len(args) != callee.Arity {
			return nil, diag.NewRuntimeError(fmt.Sprintf(
				"Expected %d arguments but got %d", callee.Arity, len(args)), loc)
		}
		result, err := callee.Fn(e.Writer, args)
		if err != nil {
			if luxErr, ok := err.(*diag.LuxError); ok {
				return nil, luxErr
			}
			return nil, diag.NewRuntimeError(err.Error(), loc)
		}
		return result, nil

	case *objects.Function:
		if len(args) != len(callee.Params) {
			return nil, diag.NewRuntimeError(fmt.Sprintf(
				"Expected %d arguments but got %d", len(callee.Params), len(args)), loc)
		}

		e.pushScope()
		for i, param := range callee.Params {
			e.Scp.Bind(param, args[i])
		}

		if err := e.execStmts(callee.Body); err != nil {
			e.popScope()
			return nil, err
		}

		result := objects.LuxObject(objects.NIL)
		if e.flow == flowReturn {
			result = e.returnValue
		}
		e.flow = flowNone
		e.returnValue = nil
		e.popScope()
		return result, nil
	}

	return nil, diag.NewRuntimeError(fmt.Sprintf("Cannot call %s", objects.TypeName(fn)), loc)
}
