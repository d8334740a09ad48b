/*
File    : lux/objects/function.go
Project : Lux language interpreter
*/
package objects

import (
	"io"

	"github.com/samjay22/Lux/parser"
)

// Function is a user-defined function value. It captures the function
// structurally: name, parameter names, body statements, and the async
// flag. There is no definition-site scope snapshot; a function
// expression returned from a function does not see its outer locals at
// call time.
type Function struct {
	Name    string                 // declared name, or "<anonymous>"
	Params  []string               // parameter names in order
	Body    []parser.StatementNode // body statement list
	IsAsync bool                   // declared with the async keyword
}

// GetType returns the type of the Function object
func (f *Function) GetType() LuxType { return FunctionType }

// ToString returns "<fn name>"
func (f *Function) ToString() string { return "<fn " + f.Name + ">" }

// ToObject returns a detailed representation
func (f *Function) ToObject() string { return f.ToString() }

// NativeFn is the procedure signature of a host-provided builtin. It
// receives the evaluator's output writer and the argument slice, and
// returns a value or an error. Arity is checked by the caller before
// invocation.
type NativeFn func(w io.Writer, args []LuxObject) (LuxObject, error)

// NativeFunction is a host-provided builtin procedure with a fixed
// arity.
type NativeFunction struct {
	Name  string
	Arity int
	Fn    NativeFn
}

// GetType returns the type of the NativeFunction object
func (f *NativeFunction) GetType() LuxType { return NativeFunctionType }

// ToString returns "<native fn name>"
func (f *NativeFunction) ToString() string { return "<native fn " + f.Name + ">" }

// ToObject returns a detailed representation
func (f *NativeFunction) ToObject() string { return f.ToString() }
