package parser

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/cinderlang/cinder/arena"
)

// Options controls tokenizer behavior. The zero value is a permissive
// configuration suitable for tests; use the preset constructors for
// anything else.
type Options struct {
	// PreserveWhitespace emits whitespace runs as tokens instead of
	// discarding them. Newlines do not get a token kind of their own.
	PreserveWhitespace bool

	// PreserveComments emits line and block comments as tokens.
	PreserveComments bool

	// Strict makes unclassifiable bytes a lexical error. When false
	// they are silently skipped.
	Strict bool

	// InternIdentifiers deduplicates identifier payload strings, which
	// pays off on large inputs where the same names repeat.
	InternIdentifiers bool

	// Streaming is reserved for a chunked push interface; the current
	// tokenizer always scans a complete buffer.
	Streaming bool
}

// StandardOptions is the compiler-facing preset: strict, no trivia.
func StandardOptions() Options {
	return Options{Strict: true, InternIdentifiers: true}
}

// IDEOptions keeps whitespace and comments in the stream for editor
// tooling that needs to reconstruct the exact source layout.
func IDEOptions() Options {
	return Options{
		PreserveWhitespace: true,
		PreserveComments:   true,
		InternIdentifiers:  true,
	}
}

// TestingOptions is the permissive preset: invalid bytes are skipped
// rather than reported.
func TestingOptions() Options {
	return Options{}
}

// Lexer scans a byte buffer into tokens. It carries a mutable cursor and
// is not safe for concurrent use; distinct lexers over distinct inputs
// are fully independent.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
	opts   Options
	arena  *arena.Arena
	names  map[string]string // identifier intern table
}

// NewLexer returns a Lexer over input. De-escaped string and char
// literal content is copied into a, which must stay alive as long as the
// produced tokens are in use; pass nil to let the lexer own a private
// arena.
func NewLexer(input []byte, filename string, opts Options, a *arena.Arena) *Lexer {
	if a == nil {
		a = arena.New(0)
	}
	l := &Lexer{
		input:  input,
		file:   filename,
		line:   1,
		column: 1,
		opts:   opts,
		arena:  a,
	}
	if opts.InternIdentifiers {
		l.names = make(map[string]string)
	}
	return l
}

// Tokenize scans content with StandardOptions and returns the complete
// token stream, terminated by exactly one EOF token. The first lexical
// error aborts the pass.
func Tokenize(content []byte, filename string) (*TokenStream, error) {
	return TokenizeWith(content, filename, StandardOptions(), nil)
}

// TokenizeWith is Tokenize with explicit options and arena.
func TokenizeWith(content []byte, filename string, opts Options, a *arena.Arena) (*TokenStream, error) {
	return NewLexer(content, filename, opts, a).Tokenize()
}

// Tokenize runs the scan to completion.
func (l *Lexer) Tokenize() (*TokenStream, error) {
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return NewTokenStream(tokens), nil
		}
	}
}

// Position returns the lexer's current source position.
func (l *Lexer) Position() Position {
	return Position{File: l.file, Offset: l.pos, Line: l.line, Column: l.column}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) errorAt(kind LexErrorKind, pos Position) *LexicalError {
	return &LexicalError{Kind: kind, Pos: pos}
}

// next scans the next token, discarding trivia unless the corresponding
// preserve option is set.
func (l *Lexer) next() (Token, error) {
	for {
		start := l.Position()

		if l.pos >= len(l.input) {
			return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}, nil
		}

		ch := l.peek()

		if ch == '/' && l.peekN(1) == '/' {
			tok := l.scanLineComment(start)
			if l.opts.PreserveComments {
				return tok, nil
			}
			continue
		}
		if ch == '/' && l.peekN(1) == '*' {
			tok, err := l.scanBlockComment(start)
			if err != nil {
				return Token{}, err
			}
			if l.opts.PreserveComments {
				return tok, nil
			}
			continue
		}

		switch classOf(ch) {
		case classWhitespace, classNewline:
			tok := l.scanWhitespace(start)
			if l.opts.PreserveWhitespace {
				return tok, nil
			}
			continue

		case classLetter:
			return l.scanIdentOrKeyword(start)

		case classDigit:
			return l.scanNumber(start)

		case classQuote:
			return l.scanCharLiteral(start)

		case classDoubleQuote:
			return l.scanStringLiteral(start)

		case classOperator:
			return l.scanOperator(start)

		default:
			if !l.opts.Strict {
				l.advance()
				continue
			}
			return Token{}, l.errorAt(LexInvalidCharacter, start)
		}
	}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for {
		c := classOf(l.peek())
		if (c != classWhitespace && c != classNewline) || l.pos >= len(l.input) {
			break
		}
		l.advance()
	}
	return l.span(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
	tok := l.span(TokenLineComment, start)
	tok.Text = string(l.input[start.Offset:l.pos])
	return tok
}

func (l *Lexer) scanBlockComment(start Position) (Token, error) {
	l.advanceN(2)
	for {
		if l.pos >= len(l.input) {
			return Token{}, l.errorAt(LexUnexpectedEOF, start)
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			break
		}
		l.advance()
	}
	tok := l.span(TokenBlockComment, start)
	tok.Text = string(l.input[start.Offset:l.pos])
	return tok, nil
}

func (l *Lexer) scanIdentOrKeyword(start Position) (Token, error) {
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch < utf8.RuneSelf {
			if !isIdentChar(ch) {
				break
			}
			l.advance()
			continue
		}
		r, size := utf8.DecodeRune(l.input[l.pos:])
		if r == utf8.RuneError && size == 1 {
			if !l.opts.Strict {
				break
			}
			return Token{}, l.errorAt(LexInvalidCharacter, l.Position())
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.advanceN(size)
	}

	text := string(l.input[start.Offset:l.pos])
	tok := l.span(LookupKeyword(text), start)

	switch tok.Kind {
	case TokenIdent:
		tok.Text = l.intern(text)
	case TokenBoolLiteral:
		tok.Bool = text == "true"
	}
	return tok, nil
}

func (l *Lexer) intern(name string) string {
	if l.names == nil {
		return name
	}
	if interned, ok := l.names[name]; ok {
		return interned
	}
	l.names[name] = name
	return name
}

func (l *Lexer) scanNumber(start Position) (Token, error) {
	if l.peek() == '0' {
		switch lower(l.peekN(1)) {
		case 'x':
			return l.scanRadixNumber(start, 16, isHexDigit)
		case 'b':
			return l.scanRadixNumber(start, 2, isBinaryDigit)
		case 'o':
			return l.scanRadixNumber(start, 8, isOctalDigit)
		}
	}

	for isDigit(l.peek()) {
		l.advance()
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if !isDigit(l.peek()) {
			return Token{}, l.errorAt(LexInvalidFloat, start)
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// A digit run flowing straight into identifier characters is
	// malformed, not two tokens.
	if isIdentChar(l.peek()) {
		if isFloat {
			return Token{}, l.errorAt(LexInvalidFloat, start)
		}
		return Token{}, l.errorAt(LexInvalidNumber, start)
	}

	text := string(l.input[start.Offset:l.pos])
	if isFloat {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, l.errorAt(LexInvalidFloat, start)
		}
		tok := l.span(TokenFloatLiteral, start)
		tok.Float = value
		return tok, nil
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, l.errorAt(LexNumberTooLarge, start)
		}
		return Token{}, l.errorAt(LexInvalidNumber, start)
	}
	tok := l.span(TokenIntLiteral, start)
	tok.Int = value
	return tok, nil
}

// scanRadixNumber scans 0x / 0b / 0o integer literals. The prefix is
// stripped before conversion.
func (l *Lexer) scanRadixNumber(start Position, base int, valid func(byte) bool) (Token, error) {
	l.advanceN(2)
	digitsStart := l.pos
	for valid(l.peek()) {
		l.advance()
	}
	if l.pos == digitsStart || isIdentChar(l.peek()) {
		return Token{}, l.errorAt(LexInvalidNumber, start)
	}

	digits := string(l.input[digitsStart:l.pos])
	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, l.errorAt(LexNumberTooLarge, start)
		}
		return Token{}, l.errorAt(LexInvalidNumber, start)
	}
	tok := l.span(TokenIntLiteral, start)
	tok.Int = value
	return tok, nil
}

// unescape translates the character following a backslash. Only the
// fixed escape set is accepted.
func unescape(ch byte) (byte, bool) {
	switch ch {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	}
	return 0, false
}

func (l *Lexer) scanStringLiteral(start Position) (Token, error) {
	l.advance() // opening quote
	var buf []byte
	for {
		if l.pos >= len(l.input) {
			return Token{}, l.errorAt(LexUnterminatedString, start)
		}
		ch := l.peek()
		if ch == '"' {
			l.advance()
			break
		}
		if ch == '\\' {
			escPos := l.Position()
			l.advance()
			if l.pos >= len(l.input) {
				return Token{}, l.errorAt(LexUnterminatedString, start)
			}
			b, ok := unescape(l.peek())
			if !ok {
				return Token{}, l.errorAt(LexInvalidEscape, escPos)
			}
			buf = append(buf, b)
			l.advance()
			continue
		}
		buf = append(buf, ch)
		l.advance()
	}

	tok := l.span(TokenStringLiteral, start)
	// The de-escaped content lives in the arena, not the source buffer.
	tok.Text = l.arena.CopyString(buf)
	return tok, nil
}

func (l *Lexer) scanCharLiteral(start Position) (Token, error) {
	l.advance() // opening quote
	if l.pos >= len(l.input) {
		return Token{}, l.errorAt(LexUnterminatedChar, start)
	}

	var buf []byte
	ch := l.peek()
	switch {
	case ch == '\'':
		// Empty char literal.
		return Token{}, l.errorAt(LexInvalidCharacter, l.Position())
	case ch == '\\':
		escPos := l.Position()
		l.advance()
		if l.pos >= len(l.input) {
			return Token{}, l.errorAt(LexUnterminatedChar, start)
		}
		b, ok := unescape(l.peek())
		if !ok {
			return Token{}, l.errorAt(LexInvalidEscape, escPos)
		}
		buf = append(buf, b)
		l.advance()
	case ch < utf8.RuneSelf:
		buf = append(buf, ch)
		l.advance()
	default:
		r, size := utf8.DecodeRune(l.input[l.pos:])
		if r == utf8.RuneError && size == 1 {
			return Token{}, l.errorAt(LexInvalidCharacter, l.Position())
		}
		buf = append(buf, l.input[l.pos:l.pos+size]...)
		l.advanceN(size)
	}

	if l.pos >= len(l.input) || l.peek() != '\'' {
		return Token{}, l.errorAt(LexUnterminatedChar, start)
	}
	l.advance() // closing quote

	tok := l.span(TokenCharLiteral, start)
	tok.Text = l.arena.CopyString(buf)
	return tok, nil
}

func (l *Lexer) scanOperator(start Position) (Token, error) {
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return l.span(TokenLParen, start), nil
	case ')':
		l.advance()
		return l.span(TokenRParen, start), nil
	case '{':
		l.advance()
		return l.span(TokenLBrace, start), nil
	case '}':
		l.advance()
		return l.span(TokenRBrace, start), nil
	case '[':
		l.advance()
		return l.span(TokenLBracket, start), nil
	case ']':
		l.advance()
		return l.span(TokenRBracket, start), nil
	case ',':
		l.advance()
		return l.span(TokenComma, start), nil
	case ';':
		l.advance()
		return l.span(TokenSemicolon, start), nil
	case '@':
		l.advance()
		return l.span(TokenAt, start), nil
	case '#':
		l.advance()
		return l.span(TokenHash, start), nil
	case '$':
		l.advance()
		return l.span(TokenDollar, start), nil
	case '~':
		l.advance()
		return l.span(TokenTilde, start), nil

	case ':':
		if l.peekN(1) == ':' {
			l.advanceN(2)
			return l.span(TokenColonColon, start), nil
		}
		l.advance()
		return l.span(TokenColon, start), nil

	case '.':
		if l.peekN(1) == '.' {
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.span(TokenDotDotEq, start), nil
			}
			l.advanceN(2)
			return l.span(TokenDotDot, start), nil
		}
		l.advance()
		return l.span(TokenDot, start), nil

	case '=':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenEq, start), nil
		}
		if l.peekN(1) == '>' {
			l.advanceN(2)
			return l.span(TokenFatArrow, start), nil
		}
		l.advance()
		return l.span(TokenAssign, start), nil

	case '!':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenNotEq, start), nil
		}
		l.advance()
		return l.span(TokenNot, start), nil

	case '<':
		if l.peekN(1) == '=' {
			if l.peekN(2) == '>' {
				l.advanceN(3)
				return l.span(TokenSpaceship, start), nil
			}
			l.advanceN(2)
			return l.span(TokenLe, start), nil
		}
		if l.peekN(1) == '<' {
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.span(TokenShlAssign, start), nil
			}
			l.advanceN(2)
			return l.span(TokenShl, start), nil
		}
		l.advance()
		return l.span(TokenLt, start), nil

	case '>':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenGe, start), nil
		}
		if l.peekN(1) == '>' {
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.span(TokenShrAssign, start), nil
			}
			l.advanceN(2)
			return l.span(TokenShr, start), nil
		}
		l.advance()
		return l.span(TokenGt, start), nil

	case '+':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenPlusAssign, start), nil
		}
		l.advance()
		return l.span(TokenPlus, start), nil

	case '-':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenMinusAssign, start), nil
		}
		if l.peekN(1) == '>' {
			l.advanceN(2)
			return l.span(TokenArrow, start), nil
		}
		l.advance()
		return l.span(TokenMinus, start), nil

	case '*':
		if l.peekN(1) == '*' {
			l.advanceN(2)
			return l.span(TokenPower, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenStarAssign, start), nil
		}
		l.advance()
		return l.span(TokenStar, start), nil

	case '/':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenSlashAssign, start), nil
		}
		l.advance()
		return l.span(TokenSlash, start), nil

	case '%':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenPercentAssign, start), nil
		}
		l.advance()
		return l.span(TokenPercent, start), nil

	case '&':
		if l.peekN(1) == '&' {
			l.advanceN(2)
			return l.span(TokenAndAnd, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenAmpAssign, start), nil
		}
		l.advance()
		return l.span(TokenAmp, start), nil

	case '|':
		if l.peekN(1) == '|' {
			l.advanceN(2)
			return l.span(TokenOrOr, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenPipeAssign, start), nil
		}
		l.advance()
		return l.span(TokenPipe, start), nil

	case '^':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.span(TokenCaretAssign, start), nil
		}
		l.advance()
		return l.span(TokenCaret, start), nil
	}

	// Unreachable: every classOperator byte is handled above.
	return Token{}, l.errorAt(LexInvalidCharacter, start)
}

func (l *Lexer) span(kind TokenKind, start Position) Token {
	return Token{Kind: kind, Span: Span{Start: start, End: l.Position()}}
}
