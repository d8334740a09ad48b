/*
File    : lux/std/io.go
Project : Lux language interpreter
*/

// Package std - io.go
// Output builtins. print writes the display form of its argument and a
// newline to the evaluator's writer.
package std

import (
	"fmt"
	"io"

	"github.com/samjay22/Lux/objects"
)

var ioMethods = []*Builtin{
	{Name: "print", Arity: 1, Fn: printFn}, // Prints a value followed by a newline
}

// init registers the io builtins.
func init() {
	Register(ioMethods...)
}

// printFn prints the display form of its single argument.
//
// Syntax: print(value)
func printFn(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	fmt.Fprintln(w, args[0].ToString())
	return objects.NIL, nil
}
