package parser

// TokenStream is a random-access cursor over a finite token sequence.
// The sequence always ends with exactly one EOF token; reads past the
// end keep returning it. The stream never mutates token contents.
type TokenStream struct {
	tokens []Token
	cur    int
}

// NewTokenStream wraps tokens in a stream. A trailing EOF token is
// appended if the sequence lacks one.
func NewTokenStream(tokens []Token) *TokenStream {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != TokenEOF {
		var end Span
		if n > 0 {
			end = Span{Start: tokens[n-1].Span.End, End: tokens[n-1].Span.End}
		}
		tokens = append(tokens, Token{Kind: TokenEOF, Span: end})
	}
	return &TokenStream{tokens: tokens}
}

// Len returns the number of tokens, including the trailing EOF.
func (s *TokenStream) Len() int { return len(s.tokens) }

// Tokens returns the underlying sequence. Callers must not modify it.
func (s *TokenStream) Tokens() []Token { return s.tokens }

// At returns the token at index i, clamped to the trailing EOF.
func (s *TokenStream) At(i int) Token {
	if i < 0 {
		i = 0
	}
	if i >= len(s.tokens) {
		i = len(s.tokens) - 1
	}
	return s.tokens[i]
}

// Pos returns the cursor position.
func (s *TokenStream) Pos() int { return s.cur }

// Seek moves the cursor to index i, clamped to the valid range.
func (s *TokenStream) Seek(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(s.tokens) {
		i = len(s.tokens) - 1
	}
	s.cur = i
}

// Current returns the token under the cursor without consuming it.
func (s *TokenStream) Current() Token { return s.At(s.cur) }

// Peek returns the token n positions ahead of the cursor without
// consuming anything.
func (s *TokenStream) Peek(n int) Token { return s.At(s.cur + n) }

// Advance returns the token under the cursor and moves past it. The
// cursor never moves past the trailing EOF.
func (s *TokenStream) Advance() Token {
	tok := s.Current()
	if s.cur < len(s.tokens)-1 {
		s.cur++
	}
	return tok
}

// Expect consumes and returns the current token if it has the given
// kind; otherwise it leaves the cursor alone and reports failure.
func (s *TokenStream) Expect(kind TokenKind) (Token, bool) {
	if tok := s.Current(); tok.Kind == kind {
		return s.Advance(), true
	}
	return Token{}, false
}

// AtEOF reports whether the cursor rests on the trailing EOF token.
func (s *TokenStream) AtEOF() bool { return s.Current().Kind == TokenEOF }
