/*
File    : lux/types/checker.go
Project : Lux language interpreter
*/

// Package types implements the static type checker for Lux. The checker
// walks the AST the same way the evaluator does, carrying a scope stack
// of name-to-type bindings, and rejects obvious type confusions while
// permitting a gradual-typing escape: the NilType term doubles as the
// "unknown" marker, so expressions whose type cannot be determined
// statically (table access, builtin returns, unannotated parameters)
// check against anything. The whole convention lives in the compatible
// helper.
package types

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/parser"
	"github.com/samjay22/Lux/std"
)

// TypeEnvironment is a stack of scopes mapping names to types. Lookup
// walks innermost-to-outermost; definitions install into the innermost
// scope.
type TypeEnvironment struct {
	scopes []map[string]parser.Type
}

// NewTypeEnvironment creates an environment with one (global) scope.
func NewTypeEnvironment() *TypeEnvironment {
	return &TypeEnvironment{scopes: []map[string]parser.Type{make(map[string]parser.Type)}}
}

// PushScope enters a nested scope.
func (env *TypeEnvironment) PushScope() {
	env.scopes = append(env.scopes, make(map[string]parser.Type))
}

// PopScope leaves the innermost scope. The global scope is never
// popped.
func (env *TypeEnvironment) PopScope() {
	if len(env.scopes) > 1 {
		env.scopes = env.scopes[:len(env.scopes)-1]
	}
}

// Define installs a binding into the innermost scope.
func (env *TypeEnvironment) Define(name string, typ parser.Type) {
	env.scopes[len(env.scopes)-1][name] = typ
}

// Get looks a name up, innermost scope first.
func (env *TypeEnvironment) Get(name string) (parser.Type, bool) {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if typ, ok := env.scopes[i][name]; ok {
			return typ, true
		}
	}
	return nil, false
}

// TypeChecker validates a program against the typing rules.
type TypeChecker struct {
	env           *TypeEnvironment
	returnType    parser.Type     // declared return type of the enclosing function, nil outside one
	loadedModules map[string]bool // import paths already checked
	sourceDir     string          // directory of the file being checked
}

// NewTypeChecker creates a checker with every registered builtin bound
// into the global scope. A builtin's type declares one Nil parameter
// per argument, so argument types stay gradual; a builtin of arity one
// thereby carries the single-Nil varargs-any sentinel and skips arity
// checking until run time.
func NewTypeChecker() *TypeChecker {
	env := NewTypeEnvironment()

	for _, builtin := range std.Builtins {
		params := make([]parser.Type, builtin.Arity)
		for i := range params {
			params[i] = parser.NilType
		}
		env.Define(builtin.Name, &parser.FunctionType{Params: params, Return: parser.NilType})
	}

	return &TypeChecker{
		env:           env,
		loadedModules: make(map[string]bool),
	}
}

// SetSourceDir sets the directory import paths resolve against first.
func (tc *TypeChecker) SetSourceDir(dir string) {
	tc.sourceDir = dir
}

// Check validates an entire program. The first violation aborts the
// walk and is returned.
func (tc *TypeChecker) Check(root *parser.RootNode) error {
	for _, stmt := range root.Statements {
		if err := tc.checkStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// checkStmts validates a statement list in the current scope.
func (tc *TypeChecker) checkStmts(stmts []parser.StatementNode) error {
	for _, stmt := range stmts {
		if err := tc.checkStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// checkStmt validates one statement.
func (tc *TypeChecker) checkStmt(stmt parser.StatementNode) error {
	switch n := stmt.(type) {
	case *parser.ImportStatementNode:
		return tc.checkImport(n)

	case *parser.VarDeclStatementNode:
		var initType parser.Type
		if n.Initializer != nil {
			var err error
			initType, err = tc.checkExpr(n.Initializer)
			if err != nil {
				return err
			}
		}

		var varType parser.Type
		switch {
		case n.TypeAnnotation != nil && initType != nil:
			if !compatible(n.TypeAnnotation, initType) {
				return diag.NewTypeError(fmt.Sprintf(
					"Type mismatch: variable '%s' declared as %s but initialized with %s",
					n.Name, n.TypeAnnotation, initType), n.Location)
			}
			varType = n.TypeAnnotation
		case n.TypeAnnotation != nil:
			varType = n.TypeAnnotation
		case initType != nil:
			varType = initType
		default:
			return diag.NewTypeError(fmt.Sprintf(
				"Variable '%s' must have either a type annotation or an initializer", n.Name), n.Location)
		}

		tc.env.Define(n.Name, varType)
		return nil

	case *parser.FunctionDeclStatementNode:
		// Bind the function type into the enclosing scope first so the
		// body can recurse. The async flag is deliberately ignored.
		funcType := &parser.FunctionType{
			Params: paramTypes(n.Params),
			Return: returnTypeOrNil(n.ReturnType),
		}
		tc.env.Define(n.Name, funcType)
		return tc.checkFunctionBody(n.Params, n.ReturnType, n.Body)

	case *parser.ExpressionStatementNode:
		_, err := tc.checkExpr(n.Expr)
		return err

	case *parser.IfStatementNode:
		// The condition may have any type (truthy/falsy semantics)
		if _, err := tc.checkExpr(n.Condition); err != nil {
			return err
		}

		tc.env.PushScope()
		if err := tc.checkStmts(n.ThenBranch); err != nil {
			tc.env.PopScope()
			return err
		}
		tc.env.PopScope()

		if n.ElseBranch != nil {
			tc.env.PushScope()
			if err := tc.checkStmts(n.ElseBranch); err != nil {
				tc.env.PopScope()
				return err
			}
			tc.env.PopScope()
		}
		return nil

	case *parser.WhileStatementNode:
		if _, err := tc.checkExpr(n.Condition); err != nil {
			return err
		}
		tc.env.PushScope()
		defer tc.env.PopScope()
		return tc.checkStmts(n.Body)

	case *parser.ForStatementNode:
		tc.env.PushScope()
		defer tc.env.PopScope()

		if n.Initializer != nil {
			if err := tc.checkStmt(n.Initializer); err != nil {
				return err
			}
		}
		if n.Condition != nil {
			if _, err := tc.checkExpr(n.Condition); err != nil {
				return err
			}
		}
		if n.Increment != nil {
			if _, err := tc.checkExpr(n.Increment); err != nil {
				return err
			}
		}
		return tc.checkStmts(n.Body)

	case *parser.ReturnStatementNode:
		returnType := parser.Type(parser.NilType)
		if n.Value != nil {
			var err error
			returnType, err = tc.checkExpr(n.Value)
			if err != nil {
				return err
			}
		}

		if tc.returnType != nil && !compatible(tc.returnType, returnType) {
			return diag.NewTypeError(fmt.Sprintf(
				"Return type mismatch: expected %s, got %s", tc.returnType, returnType), n.Location)
		}
		return nil

	case *parser.BreakStatementNode, *parser.ContinueStatementNode:
		return nil

	case *parser.BlockStatementNode:
		tc.env.PushScope()
		defer tc.env.PopScope()
		return tc.checkStmts(n.Statements)
	}

	return diag.NewInternalError(fmt.Sprintf("unhandled statement %T in checker", stmt))
}

// checkFunctionBody validates a function body in a fresh scope with the
// parameters bound, tracking the declared return type for its return
// statements.
func (tc *TypeChecker) checkFunctionBody(params []parser.Param, returnType parser.Type, body []parser.StatementNode) error {
	tc.env.PushScope()
	defer tc.env.PopScope()

	for _, param := range params {
		tc.env.Define(param.Name, param.Type)
	}

	previous := tc.returnType
	tc.returnType = returnType
	defer func() { tc.returnType = previous }()

	return tc.checkStmts(body)
}

// checkImport resolves an import path, mirrors the evaluator's search
// order, and checks the module's statements in the current environment.
// Modules are checked once per checker.
func (tc *TypeChecker) checkImport(n *parser.ImportStatementNode) error {
	if tc.loadedModules[n.Path] {
		return nil
	}

	resolved, ok := std.ResolveModule(tc.sourceDir, n.Path)
	if !ok {
		return diag.NewSemanticError(fmt.Sprintf("Module '%s' not found", n.Path), n.Location)
	}

	source, err := os.ReadFile(resolved)
	if err != nil {
		return diag.NewSemanticError(fmt.Sprintf("Failed to read module '%s': %v", n.Path, err), n.Location)
	}

	root, err := parser.ParseSource(string(source), resolved)
	if err != nil {
		return err
	}

	// Mark before checking so mutually importing modules terminate
	tc.loadedModules[n.Path] = true

	previousDir := tc.sourceDir
	tc.sourceDir = filepath.Dir(resolved)
	defer func() { tc.sourceDir = previousDir }()

	return tc.checkStmts(root.Statements)
}

// paramTypes projects the declared parameter types.
func paramTypes(params []parser.Param) []parser.Type {
	out := make([]parser.Type, 0, len(params))
	for _, p := range params {
		out = append(out, p.Type)
	}
	return out
}

// returnTypeOrNil substitutes NilType for an omitted return annotation.
func returnTypeOrNil(t parser.Type) parser.Type {
	if t == nil {
		return parser.NilType
	}
	return t
}
