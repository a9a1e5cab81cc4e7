package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinderlang/cinder/diag"
	"github.com/cinderlang/cinder/parser"
	"github.com/cinderlang/cinder/source"
)

func TestAnalyzeCleanFile(t *testing.T) {
	f := source.NewFile("main.cn", []byte("fn main() { let x = 1; }"))
	assert.Empty(t, Analyze(f))
}

func TestAnalyzeParseErrors(t *testing.T) {
	f := source.NewFile("main.cn", []byte("fn f() { let = 1; }\nfn g( {}"))
	diags := Analyze(f)
	require.Len(t, diags, 2)
	assert.Equal(t, "expected identifier", diags[0].Message)
	assert.Equal(t, 1, diags[0].Pos.Line)
	assert.Equal(t, 2, diags[1].Pos.Line)
}

func TestAnalyzeLexicalError(t *testing.T) {
	f := source.NewFile("main.cn", []byte(`fn f() { "unterminated }`))
	diags := Analyze(f)
	require.Len(t, diags, 1)
	assert.Equal(t, "unterminated string literal", diags[0].Message)
}

func TestToProtocolZeroBasedPositions(t *testing.T) {
	diags := []diag.Diagnostic{{
		Severity: diag.SeverityError,
		Pos:      parser.Position{File: "main.cn", Line: 3, Column: 7},
		Message:  "expected expression",
	}}

	out := toProtocol(diags)
	require.Len(t, out, 1)
	assert.EqualValues(t, 2, out[0].Range.Start.Line)
	assert.EqualValues(t, 6, out[0].Range.Start.Character)
	assert.Equal(t, "expected expression", out[0].Message)
	require.NotNil(t, out[0].Source)
	assert.Equal(t, "cinder", *out[0].Source)
}

func TestDocumentTracking(t *testing.T) {
	s := NewServer("test")

	_, ok := s.Document("file:///x.cn")
	assert.False(t, ok)

	f := source.NewFile("x.cn", []byte("fn main() {}"))
	s.mu.Lock()
	s.documents["file:///x.cn"] = f
	s.mu.Unlock()

	got, ok := s.Document("file:///x.cn")
	require.True(t, ok)
	assert.Same(t, f, got)
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///home/dev/main.cn")
	require.NoError(t, err)
	assert.Equal(t, "/home/dev/main.cn", path)

	path, err = uriToPath("main.cn")
	require.NoError(t, err)
	assert.Equal(t, "main.cn", path)
}
