/*
File    : lux/types/compatible.go
Project : Lux language interpreter
*/
package types

import "github.com/samjay22/Lux/parser"

// compatible decides whether an actual type satisfies an expected type.
// This is the single home of the gradual-typing convention: NilType on
// either side matches anything. Beyond that, compatibility is nominal
// on primitives, reflexive on pointers with recursive inner-type
// compatibility, and permissive on functions (every function type
// matches every function type).
func compatible(expected, actual parser.Type) bool {
	if isUnknown(expected) || isUnknown(actual) {
		return true
	}

	switch exp := expected.(type) {
	case parser.BasicType:
		act, ok := actual.(parser.BasicType)
		return ok && exp == act

	case *parser.PointerType:
		act, ok := actual.(*parser.PointerType)
		return ok && compatible(exp.Inner, act.Inner)

	case *parser.FunctionType:
		_, ok := actual.(*parser.FunctionType)
		return ok
	}

	return false
}

// isUnknown reports whether a type is the gradual "unknown" marker.
func isUnknown(t parser.Type) bool {
	basic, ok := t.(parser.BasicType)
	return ok && basic == parser.NilType
}

// isBasic reports whether a type is the given primitive.
func isBasic(t parser.Type, want parser.BasicType) bool {
	basic, ok := t.(parser.BasicType)
	return ok && basic == want
}

// isNumeric reports whether a type is Int or Float.
func isNumeric(t parser.Type) bool {
	return isBasic(t, parser.IntType) || isBasic(t, parser.FloatType)
}
