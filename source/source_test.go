package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIndex(t *testing.T) {
	f := NewFile("x.cn", []byte("first\nsecond\n\nfourth"))

	assert.Equal(t, 4, f.LineCount())
	assert.Equal(t, "first", f.Line(1))
	assert.Equal(t, "second", f.Line(2))
	assert.Equal(t, "", f.Line(3))
	assert.Equal(t, "fourth", f.Line(4))
	assert.Equal(t, "", f.Line(0))
	assert.Equal(t, "", f.Line(5))
}

func TestEmptyFile(t *testing.T) {
	f := NewFile("empty.cn", nil)
	assert.Equal(t, 1, f.LineCount())
	assert.Equal(t, "", f.Line(1))

	line, col := f.Position(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}

func TestCarriageReturnStripped(t *testing.T) {
	f := NewFile("dos.cn", []byte("one\r\ntwo\r\n"))
	assert.Equal(t, "one", f.Line(1))
	assert.Equal(t, "two", f.Line(2))
}

func TestPositionRoundTrip(t *testing.T) {
	content := []byte("ab\ncde\n\nf")
	f := NewFile("x.cn", content)

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
	}

	for _, tt := range tests {
		line, col := f.Position(tt.offset)
		assert.Equal(t, tt.line, line, "line for offset %d", tt.offset)
		assert.Equal(t, tt.col, col, "column for offset %d", tt.offset)
		assert.Equal(t, tt.offset, f.Offset(line, col), "round trip for offset %d", tt.offset)
	}

	// Clamping.
	line, col := f.Position(-5)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
	line, _ = f.Position(1000)
	assert.Equal(t, 4, line)
	assert.Equal(t, len(content), f.Offset(99, 1))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cn")
	require.NoError(t, os.WriteFile(path, []byte("fn main() {}\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Name)
	assert.Equal(t, "fn main() {}", f.Line(1))

	_, err = Load(filepath.Join(dir, "missing.cn"))
	assert.Error(t, err)
}
