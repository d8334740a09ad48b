/*
File    : lux/types/checker_expressions.go
Project : Lux language interpreter
*/
package types

import (
	"fmt"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/parser"
)

// checkExpr validates one expression and returns its static type.
func (tc *TypeChecker) checkExpr(expr parser.ExpressionNode) (parser.Type, error) {
	switch n := expr.(type) {
	case *parser.IntegerLiteralNode:
		return parser.IntType, nil
	case *parser.FloatLiteralNode:
		return parser.FloatType, nil
	case *parser.StringLiteralNode:
		return parser.StringType, nil
	case *parser.BooleanLiteralNode:
		return parser.BoolType, nil
	case *parser.NilLiteralNode:
		return parser.NilType, nil

	case *parser.IdentifierExpressionNode:
		typ, ok := tc.env.Get(n.Name)
		if !ok {
			return nil, diag.NewTypeError(fmt.Sprintf("Undefined variable '%s'", n.Name), n.Location)
		}
		return typ, nil

	case *parser.BinaryExpressionNode:
		return tc.checkBinary(n)

	case *parser.UnaryExpressionNode:
		return tc.checkUnary(n)

	case *parser.LogicalExpressionNode:
		// Operands may have any type (truthy/falsy semantics)
		if _, err := tc.checkExpr(n.Left); err != nil {
			return nil, err
		}
		if _, err := tc.checkExpr(n.Right); err != nil {
			return nil, err
		}
		return parser.BoolType, nil

	case *parser.AssignExpressionNode:
		return tc.checkAssign(n)

	case *parser.CallExpressionNode:
		return tc.checkCall(n)

	case *parser.TableExpressionNode:
		for _, entry := range n.Entries {
			if entry.KeyExpr != nil {
				if _, err := tc.checkExpr(entry.KeyExpr); err != nil {
					return nil, err
				}
			}
			if _, err := tc.checkExpr(entry.Value); err != nil {
				return nil, err
			}
		}
		return parser.TableType, nil

	case *parser.TableAccessExpressionNode:
		tableType, err := tc.checkExpr(n.Table)
		if err != nil {
			return nil, err
		}
		if _, err := tc.checkExpr(n.Key); err != nil {
			return nil, err
		}
		if !isBasic(tableType, parser.TableType) && !isUnknown(tableType) {
			return nil, diag.NewTypeError(fmt.Sprintf("Cannot index %s", tableType), n.Location)
		}
		// Table indexing can return any type
		return parser.NilType, nil

	case *parser.FunctionExpressionNode:
		funcType := &parser.FunctionType{
			Params: paramTypes(n.Params),
			Return: returnTypeOrNil(n.ReturnType),
		}
		if err := tc.checkFunctionBody(n.Params, n.ReturnType, n.Body); err != nil {
			return nil, err
		}
		return funcType, nil

	case *parser.SpawnExpressionNode:
		// Spawn requires its operand to be a call expression
		if _, ok := n.Call.(*parser.CallExpressionNode); !ok {
			return nil, diag.NewTypeError("spawn expects a function call expression", n.Location)
		}
		if _, err := tc.checkExpr(n.Call); err != nil {
			return nil, err
		}
		return parser.IntType, nil

	case *parser.AwaitExpressionNode:
		taskType, err := tc.checkExpr(n.Task)
		if err != nil {
			return nil, err
		}
		if !isBasic(taskType, parser.IntType) && !isBasic(taskType, parser.TableType) && !isUnknown(taskType) {
			return nil, diag.NewTypeError(fmt.Sprintf(
				"await expects task ID (int) or table of task IDs, got %s", taskType), n.Location)
		}
		// The task's result type is not known statically
		return parser.NilType, nil
	}

	return nil, diag.NewInternalError(fmt.Sprintf("unhandled expression %T in checker", expr))
}

// checkBinary validates a binary operation. An unknown (Nil) operand
// infects the result as unknown, except for comparisons, which stay
// Bool.
func (tc *TypeChecker) checkBinary(n *parser.BinaryExpressionNode) (parser.Type, error) {
	leftType, err := tc.checkExpr(n.Left)
	if err != nil {
		return nil, err
	}
	rightType, err := tc.checkExpr(n.Right)
	if err != nil {
		return nil, err
	}

	if isUnknown(leftType) || isUnknown(rightType) {
		switch n.Operator {
		case parser.EQ_BINOP, parser.NE_BINOP,
			parser.LT_BINOP, parser.LE_BINOP, parser.GT_BINOP, parser.GE_BINOP:
			return parser.BoolType, nil
		default:
			return parser.NilType, nil
		}
	}

	switch n.Operator {
	case parser.ADD_BINOP:
		// + works for int+int, float+float, and string+string
		if !compatible(leftType, rightType) {
			return nil, diag.NewTypeError(fmt.Sprintf(
				"Type mismatch: cannot add %s and %s", leftType, rightType), n.Location)
		}
		if isBasic(leftType, parser.IntType) || isBasic(leftType, parser.FloatType) || isBasic(leftType, parser.StringType) {
			return leftType, nil
		}
		return nil, diag.NewTypeError(fmt.Sprintf(
			"Cannot add %s and %s", leftType, rightType), n.Location)

	case parser.SUB_BINOP, parser.MUL_BINOP, parser.DIV_BINOP, parser.MOD_BINOP:
		if !isNumeric(leftType) {
			return nil, diag.NewTypeError(fmt.Sprintf(
				"Cannot apply %s to %s", n.Operator, leftType), n.Location)
		}
		if !isNumeric(rightType) {
			return nil, diag.NewTypeError(fmt.Sprintf(
				"Cannot apply %s to %s", n.Operator, rightType), n.Location)
		}
		if !compatible(leftType, rightType) {
			return nil, diag.NewTypeError(fmt.Sprintf(
				"Type mismatch: %s and %s", leftType, rightType), n.Location)
		}
		return leftType, nil

	case parser.EQ_BINOP, parser.NE_BINOP:
		// Equality accepts any operand types
		return parser.BoolType, nil

	case parser.LT_BINOP, parser.LE_BINOP, parser.GT_BINOP, parser.GE_BINOP:
		if !isNumeric(leftType) {
			return nil, diag.NewTypeError(fmt.Sprintf("Cannot compare %s", leftType), n.Location)
		}
		if !isNumeric(rightType) {
			return nil, diag.NewTypeError(fmt.Sprintf("Cannot compare %s", rightType), n.Location)
		}
		return parser.BoolType, nil
	}

	return nil, diag.NewInternalError(fmt.Sprintf("unhandled binary operator %s", n.Operator))
}

// checkUnary validates a unary operation.
func (tc *TypeChecker) checkUnary(n *parser.UnaryExpressionNode) (parser.Type, error) {
	operandType, err := tc.checkExpr(n.Operand)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case parser.NEGATE_UNOP:
		if isNumeric(operandType) || isUnknown(operandType) {
			return operandType, nil
		}
		return nil, diag.NewTypeError(fmt.Sprintf("Cannot negate %s", operandType), n.Location)

	case parser.NOT_UNOP:
		// not accepts anything (truthy/falsy) and yields Bool
		return parser.BoolType, nil

	case parser.LENGTH_UNOP:
		if isBasic(operandType, parser.StringType) || isBasic(operandType, parser.TableType) || isUnknown(operandType) {
			return parser.IntType, nil
		}
		return nil, diag.NewTypeError(fmt.Sprintf("Cannot get length of %s", operandType), n.Location)

	case parser.ADDR_UNOP:
		return &parser.PointerType{Inner: operandType}, nil

	case parser.DEREF_UNOP:
		if pointer, ok := operandType.(*parser.PointerType); ok {
			return pointer.Inner, nil
		}
		if isUnknown(operandType) {
			return parser.NilType, nil
		}
		return nil, diag.NewTypeError(fmt.Sprintf("Cannot dereference %s", operandType), n.Location)
	}

	return nil, diag.NewInternalError(fmt.Sprintf("unhandled unary operator %s", n.Operator))
}

// checkAssign validates an assignment. Variable targets must be bound
// and the value compatible with the declared type; table-slot targets
// re-use the table-access rules; dereference targets require a pointer
// operand.
func (tc *TypeChecker) checkAssign(n *parser.AssignExpressionNode) (parser.Type, error) {
	valueType, err := tc.checkExpr(n.Value)
	if err != nil {
		return nil, err
	}

	switch target := n.Target.(type) {
	case *parser.IdentifierExpressionNode:
		varType, ok := tc.env.Get(target.Name)
		if !ok {
			return nil, diag.NewTypeError(fmt.Sprintf("Undefined variable '%s'", target.Name), target.Location)
		}
		if !compatible(varType, valueType) {
			return nil, diag.NewTypeError(fmt.Sprintf(
				"Type mismatch: cannot assign %s to variable of type %s", valueType, varType), n.Location)
		}
		return valueType, nil

	case *parser.TableAccessExpressionNode:
		if _, err := tc.checkExpr(target); err != nil {
			return nil, err
		}
		return valueType, nil

	case *parser.UnaryExpressionNode:
		// *p = v: check the pointer side; the evaluator diagnoses the form
		operandType, err := tc.checkExpr(target.Operand)
		if err != nil {
			return nil, err
		}
		if pointer, ok := operandType.(*parser.PointerType); ok {
			if !compatible(pointer.Inner, valueType) {
				return nil, diag.NewTypeError(fmt.Sprintf(
					"Type mismatch: cannot assign %s through %s", valueType, operandType), n.Location)
			}
			return valueType, nil
		}
		if isUnknown(operandType) {
			return valueType, nil
		}
		return nil, diag.NewTypeError(fmt.Sprintf("Cannot dereference %s", operandType), n.Location)
	}

	return nil, diag.NewInternalError("invalid assignment target reached the checker")
}

// checkCall validates a call. Callees of Function type are checked for
// arity (unless carrying the varargs-any sentinel) and per-argument
// compatibility; calling any other type is tolerated and yields the
// unknown type.
func (tc *TypeChecker) checkCall(n *parser.CallExpressionNode) (parser.Type, error) {
	calleeType, err := tc.checkExpr(n.Callee)
	if err != nil {
		return nil, err
	}

	funcType, ok := calleeType.(*parser.FunctionType)
	if !ok {
		// Calling a non-function type is tolerated; arguments are still
		// checked as expressions
		for _, arg := range n.Arguments {
			if _, err := tc.checkExpr(arg); err != nil {
				return nil, err
			}
		}
		return parser.NilType, nil
	}

	// A single Nil parameter is the varargs-any sentinel: accept any
	// arguments and defer arity to run time
	isVarargsAny := len(funcType.Params) == 1 && isUnknown(funcType.Params[0])

	if !isVarargsAny && len(n.Arguments) != len(funcType.Params) {
		return nil, diag.NewTypeError(fmt.Sprintf(
			"Function expects %d arguments, got %d", len(funcType.Params), len(n.Arguments)), n.Location)
	}

	if isVarargsAny {
		for _, arg := range n.Arguments {
			if _, err := tc.checkExpr(arg); err != nil {
				return nil, err
			}
		}
		return funcType.Return, nil
	}

	for i, arg := range n.Arguments {
		argType, err := tc.checkExpr(arg)
		if err != nil {
			return nil, err
		}
		if !compatible(funcType.Params[i], argType) {
			return nil, diag.NewTypeError(fmt.Sprintf(
				"Argument %d type mismatch: expected %s, got %s", i+1, funcType.Params[i], argType), n.Location)
		}
	}

	return funcType.Return, nil
}
