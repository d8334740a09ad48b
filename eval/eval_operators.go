/*
File    : lux/eval/eval_operators.go
Project : Lux language interpreter
*/
package eval

import (
	"fmt"

	"github.com/samjay22/Lux/diag"
	"github.com/samjay22/Lux/objects"
	"github.com/samjay22/Lux/parser"
)

// evalBinary applies a binary operator to two values. Arithmetic
// between two values of the same numeric tag uses that tag's native
// semantics: integer division by zero is an error, float division by
// zero follows IEEE semantics and produces an infinity or NaN. String
// + concatenates. Equality across differing tags is false, inequality
// true; any other cross-tag operation is an error.
func evalBinary(left objects.LuxObject, op parser.BinaryOp, right objects.LuxObject, loc diag.SourceLocation) (objects.LuxObject, error) {
	if a, ok := left.(*objects.Integer); ok {
		if b, ok := right.(*objects.Integer); ok {
			return evalIntBinary(a.Value, op, b.Value, loc)
		}
	}
	if a, ok := left.(*objects.Float); ok {
		if b, ok := right.(*objects.Float); ok {
			return evalFloatBinary(a.Value, op, b.Value), nil
		}
	}
	if a, ok := left.(*objects.String); ok {
		if b, ok := right.(*objects.String); ok {
			return evalStringBinary(a.Value, op, b.Value, loc)
		}
	}

	// Cross-tag: only equality and inequality are defined
	switch op {
	case parser.EQ_BINOP:
		return objects.BooleanOf(objects.Equals(left, right)), nil
	case parser.NE_BINOP:
		return objects.BooleanOf(!objects.Equals(left, right)), nil
	}

	return nil, diag.NewRuntimeError(fmt.Sprintf(
		"Type mismatch: cannot apply %s to %s and %s",
		op, objects.TypeName(left), objects.TypeName(right)), loc)
}

// evalIntBinary applies an operator to two integers.
func evalIntBinary(a int64, op parser.BinaryOp, b int64, loc diag.SourceLocation) (objects.LuxObject, error) {
	switch op {
	case parser.ADD_BINOP:
		return &objects.Integer{Value: a + b}, nil
	case parser.SUB_BINOP:
		return &objects.Integer{Value: a - b}, nil
	case parser.MUL_BINOP:
		return &objects.Integer{Value: a * b}, nil
	case parser.DIV_BINOP:
		if b == 0 {
			return nil, diag.NewRuntimeError("Division by zero", loc)
		}
		return &objects.Integer{Value: a / b}, nil
	case parser.MOD_BINOP:
		if b == 0 {
			return nil, diag.NewRuntimeError("Modulo by zero", loc)
		}
		return &objects.Integer{Value: a % b}, nil
	case parser.EQ_BINOP:
		return objects.BooleanOf(a == b), nil
	case parser.NE_BINOP:
		return objects.BooleanOf(a != b), nil
	case parser.LT_BINOP:
		return objects.BooleanOf(a < b), nil
	case parser.LE_BINOP:
		return objects.BooleanOf(a <= b), nil
	case parser.GT_BINOP:
		return objects.BooleanOf(a > b), nil
	case parser.GE_BINOP:
		return objects.BooleanOf(a >= b), nil
	}
	return nil, diag.NewInternalError(fmt.Sprintf("unhandled binary operator %s", op))
}

// evalFloatBinary applies an operator to two floats. Division follows
// the platform's floating semantics; no zero check.
func evalFloatBinary(a float64, op parser.BinaryOp, b float64) objects.LuxObject {
	switch op {
	case parser.ADD_BINOP:
		return &objects.Float{Value: a + b}
	case parser.SUB_BINOP:
		return &objects.Float{Value: a - b}
	case parser.MUL_BINOP:
		return &objects.Float{Value: a * b}
	case parser.DIV_BINOP:
		return &objects.Float{Value: a / b}
	case parser.MOD_BINOP:
		return &objects.Float{Value: floatMod(a, b)}
	case parser.EQ_BINOP:
		return objects.BooleanOf(a == b)
	case parser.NE_BINOP:
		return objects.BooleanOf(a != b)
	case parser.LT_BINOP:
		return objects.BooleanOf(a < b)
	case parser.LE_BINOP:
		return objects.BooleanOf(a <= b)
	case parser.GT_BINOP:
		return objects.BooleanOf(a > b)
	}
	return objects.BooleanOf(a >= b)
}

// floatMod is the truncated remainder, carrying the dividend's sign.
func floatMod(a, b float64) float64 {
	return a - b*float64(int64(a/b))
}

// evalStringBinary applies an operator to two strings: + concatenates,
// equality and ordering compare lexicographically.
func evalStringBinary(a string, op parser.BinaryOp, b string, loc diag.SourceLocation) (objects.LuxObject, error) {
	switch op {
	case parser.ADD_BINOP:
		return &objects.String{Value: a + b}, nil
	case parser.EQ_BINOP:
		return objects.BooleanOf(a == b), nil
	case parser.NE_BINOP:
		return objects.BooleanOf(a != b), nil
	}
	return nil, diag.NewRuntimeError(fmt.Sprintf("Unsupported operation %s for strings", op), loc)
}

// evalUnary applies a unary operator. Negate requires a number; not
// inverts truthiness; # yields the length of a string or table;
// & captures a snapshot of the operand in a fresh pointer cell;
// * reads a snapshot out of a pointer cell.
func evalUnary(op parser.UnaryOp, operand objects.LuxObject, loc diag.SourceLocation) (objects.LuxObject, error) {
	switch op {
	case parser.NEGATE_UNOP:
		switch v := operand.(type) {
		case *objects.Integer:
			return &objects.Integer{Value: -v.Value}, nil
		case *objects.Float:
			return &objects.Float{Value: -v.Value}, nil
		}
		return nil, diag.NewRuntimeError(fmt.Sprintf("Cannot negate %s", objects.TypeName(operand)), loc)

	case parser.NOT_UNOP:
		return objects.BooleanOf(!objects.IsTruthy(operand)), nil

	case parser.LENGTH_UNOP:
		switch v := operand.(type) {
		case *objects.Table:
			return &objects.Integer{Value: int64(v.Len())}, nil
		case *objects.String:
			return &objects.Integer{Value: int64(len(v.Value))}, nil
		}
		return nil, diag.NewRuntimeError(fmt.Sprintf("Cannot get length of %s", objects.TypeName(operand)), loc)

	case parser.ADDR_UNOP:
		return objects.NewPointer(operand), nil

	case parser.DEREF_UNOP:
		if pointer, ok := operand.(*objects.Pointer); ok {
			return pointer.Load(), nil
		}
		return nil, diag.NewRuntimeError(fmt.Sprintf(
			"Cannot dereference non-pointer type %s", objects.TypeName(operand)), loc)
	}

	return nil, diag.NewInternalError(fmt.Sprintf("unhandled unary operator %s", op))
}
