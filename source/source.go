// Package source tracks file contents and maps byte offsets to line and
// column numbers for diagnostics and editor tooling.
package source

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// File is an immutable snapshot of one source file plus a line index.
type File struct {
	Name    string
	Content []byte

	lines []int // byte offset of each line start
}

// NewFile builds a File over content. The content is not copied; the
// caller must not mutate it afterwards.
func NewFile(name string, content []byte) *File {
	f := &File{Name: name, Content: content}
	f.lines = append(f.lines, 0)
	for i, b := range content {
		if b == '\n' {
			f.lines = append(f.lines, i+1)
		}
	}
	return f
}

// Load reads name from disk.
func Load(name string) (*File, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return NewFile(name, content), nil
}

// LineCount returns the number of lines. Every file has at least one
// line, even when empty.
func (f *File) LineCount() int { return len(f.lines) }

// Line returns the 1-based line n without its trailing newline. Out of
// range lines come back empty.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	start := f.lines[n-1]
	end := len(f.Content)
	if n < len(f.lines) {
		end = f.lines[n] - 1
	}
	return strings.TrimSuffix(string(f.Content[start:end]), "\r")
}

// Position maps a byte offset to 1-based line and column. Offsets are
// clamped to the file.
func (f *File) Position(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Content) {
		offset = len(f.Content)
	}
	// Index of the last line start at or before offset.
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	return i + 1, offset - f.lines[i] + 1
}

// Offset maps a 1-based line and column back to a byte offset, clamped
// to the file.
func (f *File) Offset(line, col int) int {
	if line < 1 {
		return 0
	}
	if line > len(f.lines) {
		return len(f.Content)
	}
	off := f.lines[line-1] + col - 1
	if off < 0 {
		off = 0
	}
	if off > len(f.Content) {
		off = len(f.Content)
	}
	return off
}
