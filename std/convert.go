/*
File    : lux/std/convert.go
Project : Lux language interpreter
*/

// Package std - convert.go
// Type inspection and conversion builtins.
package std

import (
	"io"
	"strconv"

	"github.com/samjay22/Lux/objects"
)

var convertMethods = []*Builtin{
	{Name: "type_of", Arity: 1, Fn: typeOf},      // Returns the type name of a value
	{Name: "to_string", Arity: 1, Fn: toString},  // Converts a value to its display string
	{Name: "to_int", Arity: 1, Fn: toInt},        // Converts a value to an integer
	{Name: "to_float", Arity: 1, Fn: toFloat},    // Converts a value to a float
}

// init registers the conversion builtins.
func init() {
	Register(convertMethods...)
}

// typeOf returns the type name of a value as a string.
//
// Syntax: type_of(value)
func typeOf(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	return &objects.String{Value: objects.TypeName(args[0])}, nil
}

// toString converts a value to its display string.
//
// Syntax: to_string(value)
func toString(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	switch v := args[0].(type) {
	case *objects.Integer, *objects.Float, *objects.String, *objects.Boolean, *objects.Nil:
		return &objects.String{Value: v.ToString()}, nil
	default:
		return &objects.String{Value: v.ToObject()}, nil
	}
}

// toInt converts an Int, Float, numeric String or Bool to an integer.
//
// Syntax: to_int(value)
func toInt(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	switch v := args[0].(type) {
	case *objects.Integer:
		return v, nil
	case *objects.Float:
		return &objects.Integer{Value: int64(v.Value)}, nil
	case *objects.String:
		parsed, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, errorf("Cannot convert '%s' to int", v.Value)
		}
		return &objects.Integer{Value: parsed}, nil
	case *objects.Boolean:
		if v.Value {
			return &objects.Integer{Value: 1}, nil
		}
		return &objects.Integer{Value: 0}, nil
	}
	return nil, errorf("Cannot convert to int")
}

// toFloat converts an Int, Float or numeric String to a float.
//
// Syntax: to_float(value)
func toFloat(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	switch v := args[0].(type) {
	case *objects.Integer:
		return &objects.Float{Value: float64(v.Value)}, nil
	case *objects.Float:
		return v, nil
	case *objects.String:
		parsed, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, errorf("Cannot convert '%s' to float", v.Value)
		}
		return &objects.Float{Value: parsed}, nil
	}
	return nil, errorf("Cannot convert to float")
}
