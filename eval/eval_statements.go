/*
File    : lux/eval/eval_statements.go
Project : Lux language interpreter
*/
package eval

import (
	"fmt"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/objects"
	"github.com/samjay22/Lux/parser"
)

// execStmt executes one statement.
func (e *Evaluator) execStmt(stmt parser.StatementNode) error {
	switch n := stmt.(type) {
	case *parser.ImportStatementNode:
		return e.importModule(n)

	case *parser.VarDeclStatementNode:
		value := objects.LuxObject(objects.NIL)
		if n.Initializer != nil {
			var err error
			value, err = e.evalExpr(n.Initializer)
			if err != nil {
				return err
			}
		}
		e.Scp.Bind(n.Name, value)
		return nil

	case *parser.FunctionDeclStatementNode:
		function := &objects.Function{
			Name:    n.Name,
			Params:  paramNames(n.Params),
			Body:    n.Body,
			IsAsync: n.IsAsync,
		}
		e.Scp.Bind(n.Name, function)
		return nil

	case *parser.ExpressionStatementNode:
		_, err := e.evalExpr(n.Expr)
		return err

	case *parser.IfStatementNode:
		condition, err := e.evalExpr(n.Condition)
		if err != nil {
			return err
		}
		if objects.IsTruthy(condition) {
			return e.execStmts(n.ThenBranch)
		}
		if n.ElseBranch != nil {
			return e.execStmts(n.ElseBranch)
		}
		return nil

	case *parser.WhileStatementNode:
		return e.execWhile(n)

	case *parser.ForStatementNode:
		return e.execFor(n)

	case *parser.ReturnStatementNode:
		value := objects.LuxObject(objects.NIL)
		if n.Value != nil {
			var err error
			value, err = e.evalExpr(n.Value)
			if err != nil {
				return err
			}
		}
		e.flow = flowReturn
		e.returnValue = value
		return nil

	case *parser.BreakStatementNode:
		e.flow = flowBreak
		return nil

	case *parser.ContinueStatementNode:
		e.flow = flowContinue
		return nil

	case *parser.BlockStatementNode:
		e.pushScope()
		defer e.popScope()
		return e.execStmts(n.Statements)
	}

	return diag.NewInternalError(fmt.Sprintf("unhandled statement %T in evaluator", stmt))
}

// execWhile repeats {evaluate condition; run body} until the condition
// turns falsy. Break terminates the loop; continue proceeds to the next
// condition evaluation; a return propagates upward untouched.
func (e *Evaluator) execWhile(n *parser.WhileStatementNode) error {
	for {
		condition, err := e.evalExpr(n.Condition)
		if err != nil {
			return err
		}
		if !objects.IsTruthy(condition) {
			return nil
		}

		if err := e.execStmts(n.Body); err != nil {
			return err
		}

		switch e.flow {
		case flowBreak:
			e.flow = flowNone
			return nil
		case flowContinue:
			e.flow = flowNone
		case flowReturn:
			return nil
		}
	}
}

// execFor establishes a new scope, runs the initializer, then repeats
// {if the condition is present and falsy, exit; run the body; run the
// step}. The scope unwinds on every exit path.
func (e *Evaluator) execFor(n *parser.ForStatementNode) error {
	e.pushScope()
	defer e.popScope()

	if n.Initializer != nil {
		if err := e.execStmt(n.Initializer); err != nil {
			return err
		}
	}

	for {
		if n.Condition != nil {
			condition, err := e.evalExpr(n.Condition)
			if err != nil {
				return err
			}
			if !objects.IsTruthy(condition) {
				return nil
			}
		}

		if err := e.execStmts(n.Body); err != nil {
			return err
		}

		switch e.flow {
		case flowBreak:
			e.flow = flowNone
			return nil
		case flowContinue:
			e.flow = flowNone
		case flowReturn:
			return nil
		}

		if n.Increment != nil {
			if _, err := e.evalExpr(n.Increment); err != nil {
				return err
			}
		}
	}
}

// paramNames projects the declared parameter names.
func paramNames(params []parser.Param) []string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}
	return names
}
