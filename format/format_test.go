package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cinderlang/cinder/parser"
)

func parse(t *testing.T, src string) *parser.Program {
	t.Helper()
	stream, err := parser.Tokenize([]byte(src), "test.cn")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	prog, errs := parser.ParseProgram(stream)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	return prog
}

func TestASTJSONEncoder(t *testing.T) {
	prog := parse(t, "fn inc(n: i32) -> i32 { n + 1 }")

	var buf strings.Builder
	if err := NewASTJSONEncoder(&buf).Encode(prog); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var root struct {
		Kind     string `json:"kind"`
		Children []struct {
			Kind     string `json:"kind"`
			Name     string `json:"name"`
			Children []struct {
				Kind string `json:"kind"`
				Name string `json:"name"`
			} `json:"children"`
		} `json:"children"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if root.Kind != "Program" {
		t.Errorf("root kind = %q, want %q", root.Kind, "Program")
	}
	if len(root.Children) != 1 {
		t.Fatalf("got %d root children, want 1", len(root.Children))
	}
	fn := root.Children[0]
	if fn.Kind != "FuncDecl" || fn.Name != "inc" {
		t.Errorf("declaration = %s %q, want FuncDecl inc", fn.Kind, fn.Name)
	}
	// Param, result type, body.
	if len(fn.Children) != 3 {
		t.Fatalf("got %d function children, want 3", len(fn.Children))
	}
	if fn.Children[0].Kind != "Param" || fn.Children[0].Name != "n" {
		t.Errorf("first child = %s %q, want Param n", fn.Children[0].Kind, fn.Children[0].Name)
	}
	if fn.Children[2].Kind != "BlockStmt" {
		t.Errorf("last child = %s, want BlockStmt", fn.Children[2].Kind)
	}
}

func TestASTJSONEncoderOperators(t *testing.T) {
	stream, err := parser.Tokenize([]byte("1 + 2 * 3"), "test.cn")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	x, errs := parser.ParseExpression(stream)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	var buf strings.Builder
	if err := NewASTJSONEncoder(&buf).Encode(x); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"op": "+"`, `"op": "*"`, `"value": "3"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestTokenTextEncoder(t *testing.T) {
	stream, err := parser.Tokenize([]byte("let x = 42;"), "test.cn")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var buf strings.Builder
	if err := NewTokenTextEncoder(&buf).Encode(stream); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// let x = 42 ; EOF
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "test.cn:1:1\tlet") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[3], "IntLiteral(42)") {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestTokenJSONEncoder(t *testing.T) {
	stream, err := parser.Tokenize([]byte(`f("hi")`), "test.cn")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var buf strings.Builder
	if err := NewTokenJSONEncoder(&buf).Encode(stream); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var toks []tokenJSON
	if err := json.Unmarshal([]byte(buf.String()), &toks); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5", len(toks))
	}
	if toks[0].Kind != "Identifier" || toks[0].Text != "f" {
		t.Errorf("token 0 = %+v", toks[0])
	}
	if toks[2].Kind != "StringLiteral" || toks[2].Text != "hi" {
		t.Errorf("token 2 = %+v", toks[2])
	}
	if toks[4].Kind != "EOF" {
		t.Errorf("token 4 = %+v", toks[4])
	}
}
