/*
File    : lux/std/files.go
Project : Lux language interpreter
*/

// Package std - files.go
// Whole-file I/O builtins.
package std

import (
	"io"
	"os"

	"github.com/samjay22/Lux/objects"
)

var fileMethods = []*Builtin{
	{Name: "read_file", Arity: 1, Fn: readFile},   // Reads a whole file into a string
	{Name: "write_file", Arity: 2, Fn: writeFile}, // Writes a string to a file
}

// init registers the file builtins.
func init() {
	Register(fileMethods...)
}

// readFile reads the file at the given path and returns its contents.
//
// Syntax: read_file(path)
func readFile(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, errorf("read_file expects a string path")
	}
	content, err := os.ReadFile(path.Value)
	if err != nil {
		return nil, errorf("Failed to read file '%s': %v", path.Value, err)
	}
	return &objects.String{Value: string(content)}, nil
}

// writeFile writes content to the file at the given path.
//
// Syntax: write_file(path, content)
func writeFile(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, errorf("write_file expects two strings (path, content)")
	}
	content, ok := args[1].(*objects.String)
	if !ok {
		return nil, errorf("write_file expects two strings (path, content)")
	}
	if err := os.WriteFile(path.Value, []byte(content.Value), 0644); err != nil {
		return nil, errorf("Failed to write file '%s': %v", path.Value, err)
	}
	return objects.NIL, nil
}
