/*
File    : lux/eval/eval_expressions.go
Project : Lux language interpreter
*/
package eval

import (
	"fmt"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/objects"
	"github.com/samjay22/Lux/parser"
)

// evalExpr evaluates one expression to a value.
func (e *Evaluator) evalExpr(expr parser.ExpressionNode) (objects.LuxObject, error) {
	switch n := expr.(type) {
	case *parser.IntegerLiteralNode:
		return &objects.Integer{Value: n.Value}, nil
	case *parser.FloatLiteralNode:
		return &objects.Float{Value: n.Value}, nil
	case *parser.StringLiteralNode:
		return &objects.String{Value: n.Value}, nil
	case *parser.BooleanLiteralNode:
		return objects.BooleanOf(n.Value), nil
	case *parser.NilLiteralNode:
		return objects.NIL, nil

	case *parser.IdentifierExpressionNode:
		value, ok := e.Scp.LookUp(n.Name)
		if !ok {
			return nil, diag.NewRuntimeError(fmt.Sprintf("Undefined variable '%s'", n.Name), n.Location)
		}
		return value, nil

	case *parser.BinaryExpressionNode:
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return evalBinary(left, n.Operator, right, n.Location)

	case *parser.UnaryExpressionNode:
		operand, err := e.evalExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		return evalUnary(n.Operator, operand, n.Location)

	case *parser.LogicalExpressionNode:
		return e.evalLogical(n)

	case *parser.AssignExpressionNode:
		return e.evalAssign(n)

	case *parser.CallExpressionNode:
		return e.evalCall(n)

	case *parser.TableExpressionNode:
		return e.evalTable(n)

	case *parser.TableAccessExpressionNode:
		return e.evalTableAccess(n)

	case *parser.FunctionExpressionNode:
		return &objects.Function{
			Name:   "<anonymous>",
			Params: paramNames(n.Params),
			Body:   n.Body,
		}, nil

	case *parser.SpawnExpressionNode:
		return e.evalSpawn(n)

	case *parser.AwaitExpressionNode:
		return e.evalAwait(n)
	}

	return nil, diag.NewInternalError(fmt.Sprintf("unhandled expression %T in evaluator", expr))
}

// evalLogical implements short-circuit and/or. The result is the last
// evaluated operand, not a coerced boolean: `a and b` yields a when a
// is falsy, else b.
func (e *Evaluator) evalLogical(n *parser.LogicalExpressionNode) (objects.LuxObject, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}

	if n.Operator == parser.AND_LOGOP {
		if !objects.IsTruthy(left) {
			return left, nil
		}
		return e.evalExpr(n.Right)
	}

	// or
	if objects.IsTruthy(left) {
		return left, nil
	}
	return e.evalExpr(n.Right)
}

// evalAssign stores a value through an assignment target. Variable
// targets mutate the innermost scope where the name is bound; table
// targets mutate the table in place; dereference targets are admitted
// by the parser but not supported at run time.
func (e *Evaluator) evalAssign(n *parser.AssignExpressionNode) (objects.LuxObject, error) {
	value, err := e.evalExpr(n.Value)
	if err != nil {
		return nil, err
	}

	switch target := n.Target.(type) {
	case *parser.IdentifierExpressionNode:
		if !e.Scp.Assign(target.Name, value) {
			return nil, diag.NewRuntimeError(fmt.Sprintf("Undefined variable '%s'", target.Name), n.Location)
		}
		return value, nil

	case *parser.TableAccessExpressionNode:
		tableValue, err := e.evalExpr(target.Table)
		if err != nil {
			return nil, err
		}
		table, ok := tableValue.(*objects.Table)
		if !ok {
			return nil, diag.NewRuntimeError("Can only index tables", target.Location)
		}
		key, err := e.evalExpr(target.Key)
		if err != nil {
			return nil, err
		}
		table.Set(key, value)
		return value, nil

	case *parser.UnaryExpressionNode:
		if target.Operator == parser.DEREF_UNOP {
			return nil, diag.NewRuntimeError("Assignment through a pointer is not supported", n.Location)
		}
	}

	return nil, diag.NewRuntimeError("Invalid assignment target", n.Location)
}

// evalCall evaluates the callee and arguments in order and dispatches
// the call.
func (e *Evaluator) evalCall(n *parser.CallExpressionNode) (objects.LuxObject, error) {
	callee, err := e.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]objects.LuxObject, 0, len(n.Arguments))
	for _, argExpr := range n.Arguments {
		arg, err := e.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return e.CallFunction(callee, args, n.Location)
}

// evalTable builds a table from a constructor: named fields into the
// field map, computed keys through Set (which routes positive integers
// into the positional array), in source order.
func (e *Evaluator) evalTable(n *parser.TableExpressionNode) (objects.LuxObject, error) {
	table := objects.NewTable()

	for _, entry := range n.Entries {
		value, err := e.evalExpr(entry.Value)
		if err != nil {
			return nil, err
		}
		if entry.FieldName != "" {
			table.SetField(entry.FieldName, value)
		} else {
			key, err := e.evalExpr(entry.KeyExpr)
			if err != nil {
				return nil, err
			}
			table.Set(key, value)
		}
	}

	return table, nil
}

// evalTableAccess reads a table slot. Missing keys yield Nil; indexing
// a non-table is an error.
func (e *Evaluator) evalTableAccess(n *parser.TableAccessExpressionNode) (objects.LuxObject, error) {
	tableValue, err := e.evalExpr(n.Table)
	if err != nil {
		return nil, err
	}

	table, ok := tableValue.(*objects.Table)
	if !ok {
		return nil, diag.NewRuntimeError("Can only index tables", n.Location)
	}

	key, err := e.evalExpr(n.Key)
	if err != nil {
		return nil, err
	}

	if value, ok := table.Get(key); ok {
		return value, nil
	}
	return objects.NIL, nil
}
