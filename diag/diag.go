/*
File    : lux/diag/diag.go
Project : Lux language interpreter
*/

// Package diag defines the error taxonomy and diagnostic rendering for the
// Lux interpreter. Every stage of the pipeline (lexer, parser, checker,
// evaluator) reports failures as *LuxError values carrying a kind, a
// human-readable message, and - where one is known - the source location
// of the offending construct. Errors are values, never panics: the first
// error aborts its stage and is returned to the caller.
package diag

import "fmt"

// Kind identifies which stage of the pipeline produced an error.
// The set is closed: exactly these six kinds exist.
type Kind string

const (
	// LexerError is produced during tokenization (bad character, bad escape,
	// unterminated string or comment).
	LexerError Kind = "Lexer Error"
	// ParseError is produced while building the AST.
	ParseError Kind = "Parse Error"
	// TypeError is produced by the static type checker.
	TypeError Kind = "Type Error"
	// SemanticError is produced by semantic validation outside the type rules.
	SemanticError Kind = "Semantic Error"
	// RuntimeError is produced during evaluation. Its location is optional.
	RuntimeError Kind = "Runtime Error"
	// InternalError marks a bug in the interpreter itself. It never carries
	// a location.
	InternalError Kind = "Internal Error"
)

// SourceLocation is a position in a source file. Line and Column are
// 1-based. Filename is empty for anonymous sources such as the REPL.
type SourceLocation struct {
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Filename string // Optional filename
}

// NewLocation creates a location with a filename.
func NewLocation(line, column int, filename string) SourceLocation {
	return SourceLocation{Line: line, Column: column, Filename: filename}
}

// At creates a location without a filename.
func At(line, column int) SourceLocation {
	return SourceLocation{Line: line, Column: column}
}

// String renders the location as "file:line:col" or "line:col".
func (loc SourceLocation) String() string {
	if loc.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", loc.Filename, loc.Line, loc.Column)
	}
	return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
}

// LuxError is the error type for every stage of the interpreter.
// HasLocation distinguishes "no location" from a genuine position at 0:0,
// because runtime and internal errors may legitimately carry none.
type LuxError struct {
	Kind        Kind
	Message     string
	Location    SourceLocation
	HasLocation bool
}

// Error implements the error interface: "<kind>: <message> at
// <location>" when a location is known.
func (e *LuxError) Error() string {
	if e.HasLocation {
		return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, e.Location)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewLexerError creates a lexer error at the given location.
func NewLexerError(message string, loc SourceLocation) *LuxError {
	return &LuxError{Kind: LexerError, Message: message, Location: loc, HasLocation: true}
}

// NewParseError creates a parse error at the given location.
func NewParseError(message string, loc SourceLocation) *LuxError {
	return &LuxError{Kind: ParseError, Message: message, Location: loc, HasLocation: true}
}

// NewTypeError creates a type error at the given location.
func NewTypeError(message string, loc SourceLocation) *LuxError {
	return &LuxError{Kind: TypeError, Message: message, Location: loc, HasLocation: true}
}

// NewSemanticError creates a semantic error at the given location.
func NewSemanticError(message string, loc SourceLocation) *LuxError {
	return &LuxError{Kind: SemanticError, Message: message, Location: loc, HasLocation: true}
}

// NewRuntimeError creates a runtime error at the given location.
func NewRuntimeError(message string, loc SourceLocation) *LuxError {
	return &LuxError{Kind: RuntimeError, Message: message, Location: loc, HasLocation: true}
}

// NewRuntimeErrorNoLoc creates a runtime error without a source location.
func NewRuntimeErrorNoLoc(message string) *LuxError {
	return &LuxError{Kind: RuntimeError, Message: message}
}

// NewInternalError creates an internal error. Internal errors carry no
// location.
func NewInternalError(message string) *LuxError {
	return &LuxError{Kind: InternalError, Message: message}
}
