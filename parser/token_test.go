package parser

import (
	"testing"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenKind
	}{
		{"fn", TokenFn},
		{"let", TokenLet},
		{"mut", TokenMut},
		{"Self", TokenSelfType},
		{"self", TokenSelf},
		{"true", TokenBoolLiteral},
		{"false", TokenBoolLiteral},
		{"foo", TokenIdent},
		{"Fn", TokenIdent},
		{"", TokenIdent},
	}

	for _, tt := range tests {
		if got := LookupKeyword(tt.ident); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestTokenKindPredicates(t *testing.T) {
	t.Run("keywords", func(t *testing.T) {
		for _, k := range []TokenKind{TokenFn, TokenLet, TokenSizeof} {
			if !k.IsKeyword() {
				t.Errorf("IsKeyword(%v) = false", k)
			}
		}
		for _, k := range []TokenKind{TokenIdent, TokenPlus, TokenEOF, TokenBoolLiteral} {
			if k.IsKeyword() {
				t.Errorf("IsKeyword(%v) = true", k)
			}
		}
	})

	t.Run("literals", func(t *testing.T) {
		for _, k := range []TokenKind{TokenIntLiteral, TokenFloatLiteral, TokenStringLiteral, TokenCharLiteral, TokenBoolLiteral} {
			if !k.IsLiteral() {
				t.Errorf("IsLiteral(%v) = false", k)
			}
		}
		if TokenIdent.IsLiteral() {
			t.Error("IsLiteral(Identifier) = true")
		}
	})

	t.Run("trivia", func(t *testing.T) {
		for _, k := range []TokenKind{TokenWhitespace, TokenLineComment, TokenBlockComment} {
			if !k.IsTrivia() {
				t.Errorf("IsTrivia(%v) = false", k)
			}
		}
		if TokenEOF.IsTrivia() {
			t.Error("IsTrivia(EOF) = true")
		}
	})

	t.Run("assignment", func(t *testing.T) {
		for _, k := range []TokenKind{TokenAssign, TokenPlusAssign, TokenShrAssign} {
			if !k.IsAssignOp() {
				t.Errorf("IsAssignOp(%v) = false", k)
			}
		}
		if TokenEq.IsAssignOp() {
			t.Error("IsAssignOp(==) = true")
		}
	})

	t.Run("unary", func(t *testing.T) {
		for _, k := range []TokenKind{TokenPlus, TokenMinus, TokenNot, TokenTilde, TokenAmp, TokenStar} {
			if !k.IsUnaryOp() {
				t.Errorf("IsUnaryOp(%v) = false", k)
			}
		}
		if TokenSlash.IsUnaryOp() {
			t.Error("IsUnaryOp(/) = true")
		}
	})
}

func TestPrecedenceOrdering(t *testing.T) {
	// Each operator binds tighter than the one before it.
	ladder := []TokenKind{
		TokenAssign, TokenDotDot, TokenOrOr, TokenAndAnd, TokenEq,
		TokenLt, TokenPipe, TokenCaret, TokenAmp, TokenShl,
		TokenPlus, TokenStar, TokenPower,
	}
	for i := 1; i < len(ladder); i++ {
		lo, hi := ladder[i-1], ladder[i]
		if lo.Precedence() >= hi.Precedence() {
			t.Errorf("Precedence(%v)=%d not below Precedence(%v)=%d",
				lo, lo.Precedence(), hi, hi.Precedence())
		}
	}

	for _, k := range []TokenKind{TokenIdent, TokenEOF, TokenLParen, TokenNot, TokenTilde} {
		if k.Precedence() != 0 {
			t.Errorf("Precedence(%v) = %d, want 0", k, k.Precedence())
		}
	}
}

func TestAssociativity(t *testing.T) {
	for _, k := range []TokenKind{TokenAssign, TokenPlusAssign, TokenShlAssign, TokenPower} {
		if !k.RightAssociative() {
			t.Errorf("RightAssociative(%v) = false", k)
		}
	}
	for _, k := range []TokenKind{TokenPlus, TokenStar, TokenEq, TokenOrOr, TokenDotDot} {
		if k.RightAssociative() {
			t.Errorf("RightAssociative(%v) = true", k)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: TokenIdent, Text: "x"}, "Identifier(x)"},
		{Token{Kind: TokenIntLiteral, Int: 42}, "IntLiteral(42)"},
		{Token{Kind: TokenFloatLiteral, Float: 2.5}, "FloatLiteral(2.5)"},
		{Token{Kind: TokenBoolLiteral, Bool: true}, "BoolLiteral(true)"},
		{Token{Kind: TokenStringLiteral, Text: "hi"}, "StringLiteral(hi)"},
		{Token{Kind: TokenFn}, "fn"},
		{Token{Kind: TokenShlAssign}, "<<="},
		{Token{Kind: TokenEOF}, "EOF"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
