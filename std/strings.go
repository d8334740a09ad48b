/*
File    : lux/std/strings.go
Project : Lux language interpreter
*/

// Package std - strings.go
// String manipulation builtins.
package std

import (
	"io"
	"strings"

	"github.com/samjay22/Lux/objects"
)

var stringMethods = []*Builtin{
	{Name: "string_split", Arity: 2, Fn: stringSplit},            // Splits text into a table of parts
	{Name: "string_contains", Arity: 2, Fn: stringContains},      // Checks if text contains a pattern
	{Name: "string_starts_with", Arity: 2, Fn: stringStartsWith}, // Checks for a prefix
	{Name: "string_ends_with", Arity: 2, Fn: stringEndsWith},     // Checks for a suffix
	{Name: "string_trim", Arity: 1, Fn: stringTrim},              // Trims surrounding whitespace
	{Name: "string_length", Arity: 1, Fn: stringLength},          // Returns the byte length
	{Name: "string_replace", Arity: 3, Fn: stringReplace},        // Replaces every occurrence
	{Name: "string_upper", Arity: 1, Fn: stringUpper},            // Uppercases the text
	{Name: "string_lower", Arity: 1, Fn: stringLower},            // Lowercases the text
	{Name: "substring", Arity: 3, Fn: substring},                 // Extracts length chars from start
}

// init registers the string builtins.
func init() {
	Register(stringMethods...)
}

// twoStrings extracts two string arguments or fails with the given
// message.
func twoStrings(args []objects.LuxObject, msg string) (string, string, error) {
	a, ok := args[0].(*objects.String)
	if !ok {
		return "", "", errorf("%s", msg)
	}
	b, ok := args[1].(*objects.String)
	if !ok {
		return "", "", errorf("%s", msg)
	}
	return a.Value, b.Value, nil
}

// stringSplit splits text by a delimiter into a table of parts.
//
// Syntax: string_split(text, delimiter)
func stringSplit(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, delimiter, err := twoStrings(args, "string_split expects two strings (text, delimiter)")
	if err != nil {
		return nil, err
	}
	table := objects.NewTable()
	for _, part := range strings.Split(text, delimiter) {
		table.Array = append(table.Array, &objects.String{Value: part})
	}
	return table, nil
}

// stringContains reports whether text contains pattern.
//
// Syntax: string_contains(text, pattern)
func stringContains(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, pattern, err := twoStrings(args, "string_contains expects two strings (text, pattern)")
	if err != nil {
		return nil, err
	}
	return objects.BooleanOf(strings.Contains(text, pattern)), nil
}

// stringStartsWith reports whether text starts with prefix.
//
// Syntax: string_starts_with(text, prefix)
func stringStartsWith(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, prefix, err := twoStrings(args, "string_starts_with expects two strings (text, prefix)")
	if err != nil {
		return nil, err
	}
	return objects.BooleanOf(strings.HasPrefix(text, prefix)), nil
}

// stringEndsWith reports whether text ends with suffix.
//
// Syntax: string_ends_with(text, suffix)
func stringEndsWith(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, suffix, err := twoStrings(args, "string_ends_with expects (string, string)")
	if err != nil {
		return nil, err
	}
	return objects.BooleanOf(strings.HasSuffix(text, suffix)), nil
}

// stringTrim trims surrounding whitespace from text.
//
// Syntax: string_trim(text)
func stringTrim(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, ok := args[0].(*objects.String)
	if !ok {
		return nil, errorf("string_trim expects a string")
	}
	return &objects.String{Value: strings.TrimSpace(text.Value)}, nil
}

// stringLength returns the byte length of text.
//
// Syntax: string_length(text)
func stringLength(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, ok := args[0].(*objects.String)
	if !ok {
		return nil, errorf("string_length expects a string")
	}
	return &objects.Integer{Value: int64(len(text.Value))}, nil
}

// stringReplace replaces every occurrence of from with to.
//
// Syntax: string_replace(text, from, to)
func stringReplace(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, ok := args[0].(*objects.String)
	if !ok {
		return nil, errorf("string_replace expects (string, string, string)")
	}
	from, ok := args[1].(*objects.String)
	if !ok {
		return nil, errorf("string_replace expects (string, string, string)")
	}
	to, ok := args[2].(*objects.String)
	if !ok {
		return nil, errorf("string_replace expects (string, string, string)")
	}
	return &objects.String{Value: strings.ReplaceAll(text.Value, from.Value, to.Value)}, nil
}

// stringUpper uppercases text.
//
// Syntax: string_upper(text)
func stringUpper(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, ok := args[0].(*objects.String)
	if !ok {
		return nil, errorf("string_upper expects a string")
	}
	return &objects.String{Value: strings.ToUpper(text.Value)}, nil
}

// stringLower lowercases text.
//
// Syntax: string_lower(text)
func stringLower(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, ok := args[0].(*objects.String)
	if !ok {
		return nil, errorf("string_lower expects a string")
	}
	return &objects.String{Value: strings.ToLower(text.Value)}, nil
}

// substring extracts up to length characters of text beginning at
// start (0-based). A start past the end yields the empty string.
//
// Syntax: substring(text, start, length)
func substring(w io.Writer, args []objects.LuxObject) (objects.LuxObject, error) {
	text, ok := args[0].(*objects.String)
	if !ok {
		return nil, errorf("substring expects (string, int, int)")
	}
	start, ok := args[1].(*objects.Integer)
	if !ok {
		return nil, errorf("substring expects (string, int, int)")
	}
	length, ok := args[2].(*objects.Integer)
	if !ok {
		return nil, errorf("substring expects (string, int, int)")
	}

	chars := []rune(text.Value)
	from := int(start.Value)
	if from < 0 || from >= len(chars) {
		return &objects.String{Value: ""}, nil
	}
	to := from + int(length.Value)
	if to > len(chars) {
		to = len(chars)
	}
	if to < from {
		to = from
	}
	return &objects.String{Value: string(chars[from:to])}, nil
}
