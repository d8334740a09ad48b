/*
File    : lux/std/tables.go
Project : Lux language interpreter
*/

// Package std - tables.go
// Table builtins operating on the positional array.
package std

import (
	"io"

	"github.com/samjay22/Lux/objects"
)

var tableMethods = []*Builtin{
	{Name: "table_length", Arity: 1, Fn: tableLength}, // Length of the positional array
	{Name: "table_push", Arity: 2, Fn: tablePush},     // Appends a value to the positional array
}

// init registers the table builtins.
func init() {
	Register(tableMethods...)
}

// tableLength returns the length of a table's positional array. Named
// fields do not contribute.
//
// Syntax: table_length(table)
func tableLength(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	table, ok := args[0].(*objects.Table)
	if !ok {
		return nil, errorf("table_length expects a table")
	}
	return &objects.Integer{Value: int64(table.Len())}, nil
}

// tablePush appends a value to a table's positional array and returns
// the table.
//
// Syntax: table_push(table, value)
func tablePush(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	table, ok := args[0].(*objects.Table)
	if !ok {
		return nil, errorf("table_push expects a table as first argument")
	}
	table.Array = append(table.Array, args[1])
	return table, nil
}
