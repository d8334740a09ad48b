/*
File    : lux/std/meta.go
Project : Lux language interpreter
*/

// Package std - meta.go
// Metatable builtins. The core evaluator never consults metatables
// implicitly; these two procedures are the only access.
package std

import (
	"io"

	"github.com/samjay22/Lux/objects"
)

var metaMethods = []*Builtin{
	{Name: "setmetatable", Arity: 2, Fn: setmetatable}, // Attaches a metatable to a table
	{Name: "getmetatable", Arity: 1, Fn: getmetatable}, // Returns a table's metatable or nil
}

// init registers the metatable builtins.
func init() {
	Register(metaMethods...)
}

// setmetatable attaches meta as the metatable of table and returns the
// table.
//
// Syntax: setmetatable(table, metatable)
func setmetatable(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	table, ok := args[0].(*objects.Table)
	if !ok {
		return nil, errorf("setmetatable expects two tables")
	}
	meta, ok := args[1].(*objects.Table)
	if !ok {
		return nil, errorf("setmetatable expects two tables")
	}
	table.Metatable = meta
	return table, nil
}

// getmetatable returns the metatable of a table, or nil when none is
// attached.
//
// Syntax: getmetatable(table)
func getmetatable(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	table, ok := args[0].(*objects.Table)
	if !ok {
		return nil, errorf("getmetatable expects a table")
	}
	if table.Metatable == nil {
		return objects.NIL, nil
	}
	return table.Metatable, nil
}
