/*
File    : lux/std/builtins.go
Project : Lux language interpreter
*/

// Package std provides the native-procedure registry and the fixed set
// of builtin procedures the interpreter registers at startup. A builtin
// is a name bound to a fixed-arity procedure that takes a value slice
// and returns either a value or an error. Arity is checked by the
// evaluator at call time.
//
// Builtins register themselves by appending to the global Builtins
// slice from init functions, one file per family (io, strings, math,
// tables, conversions, metatables, files, reflection).
package std

import (
	"fmt"

	"github.com/samjay22/Lux/objects"
)

// Builtin represents a builtin procedure with a name, a fixed arity and
// its implementation.
type Builtin struct {
	Name  string            // The name of the builtin (e.g., "print")
	Arity int               // Exact number of arguments the procedure takes
	Fn    objects.NativeFn  // The procedure implementing the builtin
}

// Native wraps the builtin as a runtime function value.
func (b *Builtin) Native() *objects.NativeFunction {
	return &objects.NativeFunction{Name: b.Name, Arity: b.Arity, Fn: b.Fn}
}

// Builtins is the global registry of builtin procedures. Files in this
// package append to it during package initialization; the evaluator and
// the type checker both read it at startup.
var Builtins = make([]*Builtin, 0)

// Register appends builtins to the registry. Exposed so hosts can bind
// additional procedures before constructing an evaluator.
func Register(builtins ...*Builtin) {
	Builtins = append(Builtins, builtins...)
}

// errorf builds a builtin failure. The evaluator wraps the message into
// a Runtime error carrying the call site's location.
func errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}
