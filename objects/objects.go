/*
File    : lux/objects/objects.go
Project : Lux language interpreter
*/

// Package objects defines the runtime value types of the Lux language.
// It provides implementations for the primitive types (integers, floats,
// strings, booleans, nil), the table value with its metatable slot, user
// and native function values, and the mutex-guarded pointer cell. All
// types implement the LuxObject interface, which allows type checking,
// display conversion, and object inspection.
package objects

import (
	"fmt"
	"strconv"
)

// LuxType represents the runtime type tag of a Lux object as a string
// constant. These tags are the names user code sees through type_of.
type LuxType string

const (
	// IntegerType represents 64-bit integer values
	IntegerType LuxType = "int"
	// FloatType represents 64-bit floating-point values
	FloatType LuxType = "float"
	// StringType represents string values
	StringType LuxType = "string"
	// BooleanType represents boolean values
	BooleanType LuxType = "bool"
	// NilType represents the absence of a value
	NilType LuxType = "nil"
	// TableType represents table values
	TableType LuxType = "table"
	// FunctionType represents user-defined function values
	FunctionType LuxType = "function"
	// NativeFunctionType also displays as "function" through type_of;
	// the distinct tag exists for dispatch inside the evaluator
	NativeFunctionType LuxType = "native function"
	// PointerType represents pointer cells created by the & operator
	PointerType LuxType = "pointer"
)

// LuxObject is the core interface every Lux runtime value implements.
type LuxObject interface {
	// GetType returns the runtime type tag, used for dispatch
	GetType() LuxType
	// ToString returns the display form used by print
	ToString() string
	// ToObject returns a detailed representation including type
	// information, useful for debugging and inspection
	ToObject() string
}

// TypeName returns the name user code sees for a value's type. Native
// functions report "function" like user functions do.
func TypeName(obj LuxObject) string {
	if obj.GetType() == NativeFunctionType {
		return string(FunctionType)
	}
	return string(obj.GetType())
}

// IsTruthy reports the truthiness of a value: only Nil and false are
// falsy; everything else (including 0, 0.0 and "") is truthy.
func IsTruthy(obj LuxObject) bool {
	switch v := obj.(type) {
	case *Nil:
		return false
	case *Boolean:
		return v.Value
	default:
		return true
	}
}

// Equals compares two values. Values of differing type tags are never
// equal; tables, functions and pointers never compare equal to
// anything.
func Equals(a, b LuxObject) bool {
	switch left := a.(type) {
	case *Integer:
		if right, ok := b.(*Integer); ok {
			return left.Value == right.Value
		}
	case *Float:
		if right, ok := b.(*Float); ok {
			return left.Value == right.Value
		}
	case *String:
		if right, ok := b.(*String); ok {
			return left.Value == right.Value
		}
	case *Boolean:
		if right, ok := b.(*Boolean); ok {
			return left.Value == right.Value
		}
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	}
	return false
}

// Integer represents a 64-bit signed integer value.
type Integer struct {
	Value int64
}

// GetType returns the type of the Integer object
func (i *Integer) GetType() LuxType { return IntegerType }

// ToString returns the decimal representation (e.g., "42")
func (i *Integer) ToString() string { return strconv.FormatInt(i.Value, 10) }

// ToObject returns a detailed representation (e.g., "<int(42)>")
func (i *Integer) ToObject() string { return fmt.Sprintf("<int(%d)>", i.Value) }

// Float represents a 64-bit floating-point value.
type Float struct {
	Value float64
}

// GetType returns the type of the Float object
func (f *Float) GetType() LuxType { return FloatType }

// ToString returns the shortest representation that round-trips
// (e.g., "3.14")
func (f *Float) ToString() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// ToObject returns a detailed representation (e.g., "<float(3.14)>")
func (f *Float) ToObject() string { return fmt.Sprintf("<float(%s)>", f.ToString()) }

// String represents a string value.
type String struct {
	Value string
}

// GetType returns the type of the String object
func (s *String) GetType() LuxType { return StringType }

// ToString returns the string value itself
func (s *String) ToString() string { return s.Value }

// ToObject returns a detailed representation (e.g., "<string(hi)>")
func (s *String) ToObject() string { return fmt.Sprintf("<string(%s)>", s.Value) }

// Boolean represents a boolean value.
type Boolean struct {
	Value bool
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() LuxType { return BooleanType }

// ToString returns "true" or "false"
func (b *Boolean) ToString() string { return strconv.FormatBool(b.Value) }

// ToObject returns a detailed representation (e.g., "<bool(true)>")
func (b *Boolean) ToObject() string { return fmt.Sprintf("<bool(%t)>", b.Value) }

// Nil represents the absence of a value.
type Nil struct{}

// GetType returns the type of the Nil object
func (n *Nil) GetType() LuxType { return NilType }

// ToString returns "nil"
func (n *Nil) ToString() string { return "nil" }

// ToObject returns a detailed representation
func (n *Nil) ToObject() string { return "<nil>" }

// NIL is the shared nil instance. Nil carries no state, so a single
// value serves every use.
var NIL = &Nil{}

// TRUE and FALSE are the shared boolean instances.
var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

// BooleanOf returns the shared boolean instance for b.
func BooleanOf(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}
