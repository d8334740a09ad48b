/*
File    : lux/diag/diagnostic.go
Project : Lux language interpreter
*/
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color definitions for diagnostic output. The kind is highlighted in
// red, location arrows and line numbers in blue, the caret in red.
var (
	kindColor   = color.New(color.FgRed, color.Bold)
	arrowColor  = color.New(color.FgBlue, color.Bold)
	gutterColor = color.New(color.FgBlue)
	gutterBold  = color.New(color.FgBlue, color.Bold)
	caretColor  = color.New(color.FgRed, color.Bold)
)

// Diagnostic renders a LuxError for the user, optionally with the
// surrounding source text so the offending line can be shown with a
// caret under the column.
type Diagnostic struct {
	Err    *LuxError
	Source string // Full source text, or "" when unavailable
}

// NewDiagnostic creates a diagnostic without source context.
func NewDiagnostic(err *LuxError) *Diagnostic {
	return &Diagnostic{Err: err}
}

// WithSource creates a diagnostic that can show the source lines around
// the error location.
func WithSource(err *LuxError, source string) *Diagnostic {
	return &Diagnostic{Err: err, Source: source}
}

// Format renders the diagnostic. The first line carries the kind and
// message; when a location is attached and source text is available, the
// previous line, the offending line, and the next line follow, with a
// caret under the offending column.
func (d *Diagnostic) Format() string {
	var out strings.Builder

	out.WriteString(kindColor.Sprint(string(d.Err.Kind)))
	out.WriteString(": ")
	out.WriteString(d.Err.Message)
	out.WriteString("\n")

	if d.Err.HasLocation {
		out.WriteString(fmt.Sprintf("  %s %s\n", arrowColor.Sprint("-->"), d.Err.Location))
		if d.Source != "" {
			out.WriteString(d.formatSourceContext())
		}
	}

	return out.String()
}

// formatSourceContext renders up to three source lines around the error
// with a caret marking the column.
func (d *Diagnostic) formatSourceContext() string {
	var out strings.Builder
	lines := strings.Split(d.Source, "\n")
	loc := d.Err.Location

	if loc.Line == 0 || loc.Line > len(lines) {
		return ""
	}

	lineIdx := loc.Line - 1
	width := len(fmt.Sprintf("%d", loc.Line))

	if lineIdx > 0 {
		out.WriteString(fmt.Sprintf("  %s %s\n",
			gutterColor.Sprintf("%*d", width, lineIdx), lines[lineIdx-1]))
	}

	out.WriteString(fmt.Sprintf("  %s %s\n",
		gutterBold.Sprintf("%*d", width, loc.Line), lines[lineIdx]))

	padding := strings.Repeat(" ", width+3+loc.Column-1)
	out.WriteString(fmt.Sprintf("%s%s\n", padding, caretColor.Sprint("^")))

	if lineIdx+1 < len(lines) {
		out.WriteString(fmt.Sprintf("  %s %s\n",
			gutterColor.Sprintf("%*d", width, lineIdx+2), lines[lineIdx+1]))
	}

	return out.String()
}

// String implements fmt.Stringer.
func (d *Diagnostic) String() string {
	return d.Format()
}
