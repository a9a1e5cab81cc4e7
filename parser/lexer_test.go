package parser

import (
	"testing"
)

func mustTokenize(t *testing.T, src string) *TokenStream {
	t.Helper()
	stream, err := Tokenize([]byte(src), "test.cn")
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}
	return stream
}

func tokenKinds(stream *TokenStream) []TokenKind {
	var kinds []TokenKind
	for _, tok := range stream.Tokens() {
		if tok.Kind == TokenEOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestTokenizeBasics(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"", nil},
		{"   \t\n  ", nil},
		{"x", []TokenKind{TokenIdent}},
		{"fn main() {}", []TokenKind{TokenFn, TokenIdent, TokenLParen, TokenRParen, TokenLBrace, TokenRBrace}},
		{"let mut x = 5;", []TokenKind{TokenLet, TokenMut, TokenIdent, TokenAssign, TokenIntLiteral, TokenSemicolon}},
		{"x + y * z", []TokenKind{TokenIdent, TokenPlus, TokenIdent, TokenStar, TokenIdent}},
		{"a == b != c", []TokenKind{TokenIdent, TokenEq, TokenIdent, TokenNotEq, TokenIdent}},
		{"true false", []TokenKind{TokenBoolLiteral, TokenBoolLiteral}},
		{`"hello"`, []TokenKind{TokenStringLiteral}},
		{"'a'", []TokenKind{TokenCharLiteral}},
	}

	for _, tt := range tests {
		stream := mustTokenize(t, tt.input)
		got := tokenKinds(stream)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTokenizeStreamEndsWithEOF(t *testing.T) {
	for _, src := range []string{"", "x", "fn main() {}"} {
		stream := mustTokenize(t, src)
		toks := stream.Tokens()
		if len(toks) == 0 {
			t.Fatalf("Tokenize(%q) produced no tokens", src)
		}
		if last := toks[len(toks)-1]; last.Kind != TokenEOF {
			t.Errorf("Tokenize(%q) last token = %v, want EOF", src, last.Kind)
		}
		for i, tok := range toks[:len(toks)-1] {
			if tok.Kind == TokenEOF {
				t.Errorf("Tokenize(%q) token %d is a premature EOF", src, i)
			}
		}
	}
}

func TestTokenizeIntLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"42", 42},
		{"9223372036854775807", 9223372036854775807},
		{"0xAB", 171},
		{"0Xff", 255},
		{"0b1010", 10},
		{"0o17", 15},
	}

	for _, tt := range tests {
		stream := mustTokenize(t, tt.input)
		tok := stream.Current()
		if tok.Kind != TokenIntLiteral {
			t.Errorf("Tokenize(%q) kind = %v, want IntLiteral", tt.input, tok.Kind)
			continue
		}
		if tok.Int != tt.want {
			t.Errorf("Tokenize(%q) Int = %d, want %d", tt.input, tok.Int, tt.want)
		}
	}
}

func TestTokenizeFloatLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"3.14", 3.14},
		{"0.5", 0.5},
		{"1e3", 1000},
		{"2.5e-2", 0.025},
		{"1E+2", 100},
	}

	for _, tt := range tests {
		stream := mustTokenize(t, tt.input)
		tok := stream.Current()
		if tok.Kind != TokenFloatLiteral {
			t.Errorf("Tokenize(%q) kind = %v, want FloatLiteral", tt.input, tok.Kind)
			continue
		}
		if tok.Float != tt.want {
			t.Errorf("Tokenize(%q) Float = %g, want %g", tt.input, tok.Float, tt.want)
		}
	}
}

func TestTokenizeBoolLiterals(t *testing.T) {
	stream := mustTokenize(t, "true false")
	if tok := stream.At(0); tok.Kind != TokenBoolLiteral || !tok.Bool {
		t.Errorf("first token = %v Bool=%t, want BoolLiteral true", tok.Kind, tok.Bool)
	}
	if tok := stream.At(1); tok.Kind != TokenBoolLiteral || tok.Bool {
		t.Errorf("second token = %v Bool=%t, want BoolLiteral false", tok.Kind, tok.Bool)
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"quote: \""`, `quote: "`},
		{`"back\\slash"`, `back\slash`},
		{`"nul\0"`, "nul\x00"},
	}

	for _, tt := range tests {
		stream := mustTokenize(t, tt.input)
		tok := stream.Current()
		if tok.Kind != TokenStringLiteral {
			t.Errorf("Tokenize(%q) kind = %v, want StringLiteral", tt.input, tok.Kind)
			continue
		}
		if tok.Text != tt.want {
			t.Errorf("Tokenize(%q) Text = %q, want %q", tt.input, tok.Text, tt.want)
		}
	}
}

func TestTokenizeCharLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"'a'", "a"},
		{`'\n'`, "\n"},
		{`'\''`, "'"},
		{`'\\'`, `\`},
		{"'é'", "é"},
	}

	for _, tt := range tests {
		stream := mustTokenize(t, tt.input)
		tok := stream.Current()
		if tok.Kind != TokenCharLiteral {
			t.Errorf("Tokenize(%q) kind = %v, want CharLiteral", tt.input, tok.Kind)
			continue
		}
		if tok.Text != tt.want {
			t.Errorf("Tokenize(%q) Text = %q, want %q", tt.input, tok.Text, tt.want)
		}
	}
}

func TestTokenizeOperatorsMaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"<<=", []TokenKind{TokenShlAssign}},
		{">>=", []TokenKind{TokenShrAssign}},
		{"<=>", []TokenKind{TokenSpaceship}},
		{"<= >", []TokenKind{TokenLe, TokenGt}},
		{"..=", []TokenKind{TokenDotDotEq}},
		{".. .", []TokenKind{TokenDotDot, TokenDot}},
		{"::", []TokenKind{TokenColonColon}},
		{"->", []TokenKind{TokenArrow}},
		{"=>", []TokenKind{TokenFatArrow}},
		{"**", []TokenKind{TokenPower}},
		{"* *", []TokenKind{TokenStar, TokenStar}},
		{"&& &= &", []TokenKind{TokenAndAnd, TokenAmpAssign, TokenAmp}},
		{"|| |= |", []TokenKind{TokenOrOr, TokenPipeAssign, TokenPipe}},
		{"+= -= *= /= %= ^=", []TokenKind{
			TokenPlusAssign, TokenMinusAssign, TokenStarAssign,
			TokenSlashAssign, TokenPercentAssign, TokenCaretAssign,
		}},
	}

	for _, tt := range tests {
		got := tokenKinds(mustTokenize(t, tt.input))
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTokenizeKeywordsVersusIdentifiers(t *testing.T) {
	stream := mustTokenize(t, "fn fnord return returns")
	want := []TokenKind{TokenFn, TokenIdent, TokenReturn, TokenIdent}
	got := tokenKinds(stream)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if tok := stream.At(1); tok.Text != "fnord" {
		t.Errorf("At(1).Text = %q, want %q", tok.Text, "fnord")
	}
}

// Differing whitespace and comments between the same significant tokens
// must not change the token sequence.
func TestTokenizeWhitespaceInsensitive(t *testing.T) {
	variants := []string{
		"a b",
		"a  b",
		"a\tb",
		"a\n\nb",
		"a /* gap */ b",
		"a // trailing\nb",
	}

	base := tokenKinds(mustTokenize(t, variants[0]))
	for _, src := range variants[1:] {
		got := tokenKinds(mustTokenize(t, src))
		if len(got) != len(base) {
			t.Errorf("Tokenize(%q) = %v, want %v", src, got, base)
			continue
		}
		for i := range got {
			if got[i] != base[i] {
				t.Errorf("Tokenize(%q)[%d] = %v, want %v", src, i, got[i], base[i])
			}
		}
	}
}

func TestTokenizePreservedTrivia(t *testing.T) {
	stream, err := TokenizeWith([]byte("a /*x*/ b // end"), "test.cn", IDEOptions(), nil)
	if err != nil {
		t.Fatalf("TokenizeWith failed: %v", err)
	}
	want := []TokenKind{
		TokenIdent, TokenWhitespace, TokenBlockComment, TokenWhitespace,
		TokenIdent, TokenWhitespace, TokenLineComment,
	}
	got := tokenKinds(stream)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if tok := stream.At(2); tok.Text != "/*x*/" {
		t.Errorf("block comment text = %q, want %q", tok.Text, "/*x*/")
	}
	if tok := stream.At(6); tok.Text != "// end" {
		t.Errorf("line comment text = %q, want %q", tok.Text, "// end")
	}
}

func TestTokenizePositions(t *testing.T) {
	stream := mustTokenize(t, "ab\ncd")

	first := stream.At(0)
	if first.Span.Start.Line != 1 || first.Span.Start.Column != 1 {
		t.Errorf("first token at %d:%d, want 1:1", first.Span.Start.Line, first.Span.Start.Column)
	}
	second := stream.At(1)
	if second.Span.Start.Line != 2 || second.Span.Start.Column != 1 {
		t.Errorf("second token at %d:%d, want 2:1", second.Span.Start.Line, second.Span.Start.Column)
	}
	if second.Span.Start.Offset != 3 {
		t.Errorf("second token offset = %d, want 3", second.Span.Start.Offset)
	}
	if got := second.Span.Start.String(); got != "test.cn:2:1" {
		t.Errorf("Position.String() = %q, want %q", got, "test.cn:2:1")
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  LexErrorKind
	}{
		{"`", LexInvalidCharacter},
		{`"unterminated`, LexUnterminatedString},
		{`"bad\q"`, LexInvalidEscape},
		{"'a", LexUnterminatedChar},
		{"'ab'", LexUnterminatedChar},
		{"''", LexInvalidCharacter},
		{"123abc", LexInvalidNumber},
		{"0xFF_INVALID", LexInvalidNumber},
		{"0x", LexInvalidNumber},
		{"0b102", LexInvalidNumber},
		{"1.5e", LexInvalidFloat},
		{"3.14xyz", LexInvalidFloat},
		{"99999999999999999999", LexNumberTooLarge},
		{"/* never closed", LexUnexpectedEOF},
	}

	for _, tt := range tests {
		_, err := Tokenize([]byte(tt.input), "test.cn")
		if err == nil {
			t.Errorf("Tokenize(%q) succeeded, want %v", tt.input, tt.want)
			continue
		}
		lexErr, ok := err.(*LexicalError)
		if !ok {
			t.Errorf("Tokenize(%q) error type = %T, want *LexicalError", tt.input, err)
			continue
		}
		if lexErr.Kind != tt.want {
			t.Errorf("Tokenize(%q) error kind = %v, want %v", tt.input, lexErr.Kind, tt.want)
		}
	}
}

// The permissive preset skips unclassifiable bytes instead of failing.
func TestTokenizePermissiveSkipsInvalid(t *testing.T) {
	stream, err := TokenizeWith([]byte("a ` b"), "test.cn", TestingOptions(), nil)
	if err != nil {
		t.Fatalf("TokenizeWith failed: %v", err)
	}
	want := []TokenKind{TokenIdent, TokenIdent}
	got := tokenKinds(stream)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeUnicodeIdentifiers(t *testing.T) {
	stream := mustTokenize(t, "naïve δ x1 _private")
	want := []string{"naïve", "δ", "x1", "_private"}
	for i, name := range want {
		tok := stream.At(i)
		if tok.Kind != TokenIdent {
			t.Errorf("token %d kind = %v, want Identifier", i, tok.Kind)
			continue
		}
		if tok.Text != name {
			t.Errorf("token %d text = %q, want %q", i, tok.Text, name)
		}
	}
}

func TestLexerErrorMessage(t *testing.T) {
	_, err := Tokenize([]byte("\n  `"), "bad.cn")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "bad.cn:2:3: invalid character"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
