/*
File    : lux/std/math.go
Project : Lux language interpreter
*/

// Package std - math.go
// Numeric builtins: roots, powers, absolute value, rounding, extrema.
package std

import (
	"io"
	"math"

	"github.com/samjay22/Lux/objects"
)

var mathMethods = []*Builtin{
	{Name: "sqrt", Arity: 1, Fn: sqrt},    // Returns the square root as a float
	{Name: "pow", Arity: 2, Fn: pow},      // Raises base to exp, as a float
	{Name: "abs", Arity: 1, Fn: abs},      // Absolute value, preserving the numeric tag
	{Name: "floor", Arity: 1, Fn: floor},  // Largest integer not above the argument
	{Name: "ceil", Arity: 1, Fn: ceil},    // Smallest integer not below the argument
	{Name: "min", Arity: 2, Fn: minFn},    // Smaller of two numbers
	{Name: "max", Arity: 2, Fn: maxFn},    // Larger of two numbers
}

// init registers the math builtins.
func init() {
	Register(mathMethods...)
}

// asFloat widens an Int or Float argument to float64.
func asFloat(arg objects.LuxObject) (float64, bool) {
	switch v := arg.(type) {
	case *objects.Integer:
		return float64(v.Value), true
	case *objects.Float:
		return v.Value, true
	}
	return 0, false
}

// sqrt returns the square root of a number as a float.
//
// Syntax: sqrt(x)
func sqrt(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	num, ok := asFloat(args[0])
	if !ok {
		return nil, errorf("sqrt expects a number")
	}
	return &objects.Float{Value: math.Sqrt(num)}, nil
}

// pow raises base to exp as a float.
//
// Syntax: pow(base, exp)
func pow(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	base, ok := asFloat(args[0])
	if !ok {
		return nil, errorf("pow expects numbers")
	}
	exp, ok := asFloat(args[1])
	if !ok {
		return nil, errorf("pow expects numbers")
	}
	return &objects.Float{Value: math.Pow(base, exp)}, nil
}

// abs returns the absolute value, preserving the numeric tag.
//
// Syntax: abs(x)
func abs(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	switch v := args[0].(type) {
	case *objects.Integer:
		value := v.Value
		if value < 0 {
			value = -value
		}
		return &objects.Integer{Value: value}, nil
	case *objects.Float:
		return &objects.Float{Value: math.Abs(v.Value)}, nil
	}
	return nil, errorf("abs expects a number")
}

// floor returns the largest integer not above the argument. Integers
// pass through unchanged.
//
// Syntax: floor(x)
func floor(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	switch v := args[0].(type) {
	case *objects.Integer:
		return v, nil
	case *objects.Float:
		return &objects.Integer{Value: int64(math.Floor(v.Value))}, nil
	}
	return nil, errorf("floor expects a number")
}

// ceil returns the smallest integer not below the argument. Integers
// pass through unchanged.
//
// Syntax: ceil(x)
func ceil(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	switch v := args[0].(type) {
	case *objects.Integer:
		return v, nil
	case *objects.Float:
		return &objects.Integer{Value: int64(math.Ceil(v.Value))}, nil
	}
	return nil, errorf("ceil expects a number")
}

// minFn returns the smaller of two numbers. Mixed Int/Float arguments
// widen to Float.
//
// Syntax: min(a, b)
func minFn(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	if a, ok := args[0].(*objects.Integer); ok {
		if b, ok := args[1].(*objects.Integer); ok {
			if a.Value < b.Value {
				return a, nil
			}
			return b, nil
		}
	}
	a, okA := asFloat(args[0])
	b, okB := asFloat(args[1])
	if !okA || !okB {
		return nil, errorf("min expects two numbers")
	}
	return &objects.Float{Value: math.Min(a, b)}, nil
}

// maxFn returns the larger of two numbers. Mixed Int/Float arguments
// widen to Float.
//
// Syntax: max(a, b)
func maxFn(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	if a, ok := args[0].(*objects.Integer); ok {
		if b, ok := args[1].(*objects.Integer); ok {
			if a.Value > b.Value {
				return a, nil
			}
			return b, nil
		}
	}
	a, okA := asFloat(args[0])
	b, okB := asFloat(args[1])
	if !okA || !okB {
		return nil, errorf("max expects two numbers")
	}
	return &objects.Float{Value: math.Max(a, b)}, nil
}
