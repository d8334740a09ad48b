/*
File    : lux/diag/diag_test.go
Project : Lux language interpreter
*/
package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocation_String(t *testing.T) {
	assert.Equal(t, "10:5", At(10, 5).String())
	assert.Equal(t, "test.lux:10:5", NewLocation(10, 5, "test.lux").String())
}

func TestError_Creation(t *testing.T) {
	loc := At(1, 1)
	err := NewLexerError("unexpected character", loc)

	assert.Equal(t, LexerError, err.Kind)
	assert.Equal(t, "unexpected character", err.Message)
	assert.True(t, err.HasLocation)
	assert.Equal(t, loc, err.Location)
}

func TestError_Display(t *testing.T) {
	err := NewParseError("expected ')'", At(5, 10))
	assert.Equal(t, "Parse Error: expected ')' at 5:10", err.Error())
}

func TestError_WithoutLocation(t *testing.T) {
	runtime := NewRuntimeErrorNoLoc("boom")
	assert.Equal(t, "Runtime Error: boom", runtime.Error())
	assert.False(t, runtime.HasLocation)

	internal := NewInternalError("bug")
	assert.Equal(t, "Internal Error: bug", internal.Error())
	assert.False(t, internal.HasLocation)
}

func TestError_Kinds(t *testing.T) {
	loc := At(1, 1)
	assert.Equal(t, TypeError, NewTypeError("m", loc).Kind)
	assert.Equal(t, SemanticError, NewSemanticError("m", loc).Kind)
	assert.Equal(t, RuntimeError, NewRuntimeError("m", loc).Kind)
}

func TestDiagnostic_WithoutSource(t *testing.T) {
	err := NewLexerError("unexpected character", At(1, 1))
	formatted := NewDiagnostic(err).Format()

	assert.Contains(t, formatted, "Lexer Error")
	assert.Contains(t, formatted, "unexpected character")
	assert.Contains(t, formatted, "1:1")
}

func TestDiagnostic_WithSource(t *testing.T) {
	source := "local x = 42\nlocal y = @\nlocal z = 10"
	err := NewLexerError("Unexpected character '@'", At(2, 11))
	formatted := WithSource(err, source).Format()

	// The surrounding lines and the caret line are all present
	assert.Contains(t, formatted, "local x = 42")
	assert.Contains(t, formatted, "local y = @")
	assert.Contains(t, formatted, "local z = 10")
	assert.Contains(t, formatted, "^")
}

func TestDiagnostic_LocationPastSource(t *testing.T) {
	err := NewParseError("at the very end", At(99, 1))
	formatted := WithSource(err, "one line").Format()
	require.Contains(t, formatted, "Parse Error")
}
