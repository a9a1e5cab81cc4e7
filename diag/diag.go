// Package diag renders tokenizer and parser errors as human-readable
// diagnostics with source context.
package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cinderlang/cinder/parser"
	"github.com/cinderlang/cinder/source"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

var severityNames = [...]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityNote:    "note",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

// Diagnostic is one reportable finding tied to a source position.
type Diagnostic struct {
	Severity Severity
	Pos      parser.Position
	Message  string
}

// FromLexical converts a tokenizer error.
func FromLexical(err *parser.LexicalError) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Pos:      err.Pos,
		Message:  err.Kind.String(),
	}
}

// FromParse converts a single parser error.
func FromParse(err parser.ParseError) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Pos:      err.Pos,
		Message:  err.Kind.String(),
	}
}

// FromParseErrors converts a recorded error list, sorted by position.
func FromParseErrors(errs []parser.ParseError) []Diagnostic {
	if len(errs) == 0 {
		return nil
	}
	diags := make([]Diagnostic, len(errs))
	for i, err := range errs {
		diags[i] = FromParse(err)
	}
	Sort(diags)
	return diags
}

// Sort orders diagnostics by file offset.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Pos.Offset < diags[j].Pos.Offset
	})
}

// String renders the one-line form: file:line:col: severity: message.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// Render writes the one-line form followed by the offending source line
// and a caret under the reported column.
func Render(w io.Writer, d Diagnostic, f *source.File) {
	fmt.Fprintln(w, d.String())
	if f == nil {
		return
	}
	line := f.Line(d.Pos.Line)
	if line == "" && d.Pos.Line > f.LineCount() {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	var pad strings.Builder
	for i := 0; i < d.Pos.Column-1 && i < len(line); i++ {
		// Keep tabs so the caret lines up with tab-indented code.
		if line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	fmt.Fprintf(w, "    %s^\n", pad.String())
}

// RenderAll renders every diagnostic in order.
func RenderAll(w io.Writer, diags []Diagnostic, f *source.File) {
	for _, d := range diags {
		Render(w, d, f)
	}
}
