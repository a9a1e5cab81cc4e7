package parser

import "fmt"

// Position identifies a location in a source file.
// Line and Column are 1-based; Offset is a 0-based byte offset.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers a half-open range of source text [Start, End).
type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Trivia (only emitted when the corresponding preserve option is set)
	TokenWhitespace
	TokenLineComment
	TokenBlockComment

	// Identifiers and literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenStringLiteral
	TokenCharLiteral
	TokenBoolLiteral

	// Keywords
	TokenFn
	TokenLet
	TokenMut
	TokenConst
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenLoop
	TokenIn
	TokenMatch
	TokenReturn
	TokenBreak
	TokenContinue
	TokenStruct
	TokenEnum
	TokenTrait
	TokenImpl
	TokenType
	TokenWhere
	TokenPub
	TokenUse
	TokenMod
	TokenAs
	TokenSelf
	TokenSelfType
	TokenStatic
	TokenRef
	TokenMove
	TokenUnsafe
	TokenExtern
	TokenCrate
	TokenSuper
	TokenDyn
	TokenAsync
	TokenAwait
	TokenYield
	TokenBox
	TokenDo
	TokenMacro
	TokenPriv
	TokenTypeof
	TokenUnion
	TokenVirtual
	TokenAbstract
	TokenFinal
	TokenOverride
	TokenBecome
	TokenTry
	TokenSizeof

	// Delimiters and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenSemicolon
	TokenColon
	TokenColonColon
	TokenAt
	TokenHash
	TokenDollar
	TokenDot
	TokenDotDot
	TokenDotDotEq
	TokenArrow
	TokenFatArrow

	// Operators
	TokenAssign
	TokenEq
	TokenNotEq
	TokenLt
	TokenLe
	TokenSpaceship
	TokenGt
	TokenGe
	TokenShl
	TokenShr
	TokenPlus
	TokenMinus
	TokenStar
	TokenPower
	TokenSlash
	TokenPercent
	TokenAmp
	TokenPipe
	TokenCaret
	TokenNot
	TokenTilde
	TokenAndAnd
	TokenOrOr
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenAmpAssign
	TokenPipeAssign
	TokenCaretAssign
	TokenShlAssign
	TokenShrAssign
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenWhitespace:    "Whitespace",
	TokenLineComment:   "LineComment",
	TokenBlockComment:  "BlockComment",
	TokenIdent:         "Identifier",
	TokenIntLiteral:    "IntLiteral",
	TokenFloatLiteral:  "FloatLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenCharLiteral:   "CharLiteral",
	TokenBoolLiteral:   "BoolLiteral",
	TokenFn:            "fn",
	TokenLet:           "let",
	TokenMut:           "mut",
	TokenConst:         "const",
	TokenIf:            "if",
	TokenElse:          "else",
	TokenWhile:         "while",
	TokenFor:           "for",
	TokenLoop:          "loop",
	TokenIn:            "in",
	TokenMatch:         "match",
	TokenReturn:        "return",
	TokenBreak:         "break",
	TokenContinue:      "continue",
	TokenStruct:        "struct",
	TokenEnum:          "enum",
	TokenTrait:         "trait",
	TokenImpl:          "impl",
	TokenType:          "type",
	TokenWhere:         "where",
	TokenPub:           "pub",
	TokenUse:           "use",
	TokenMod:           "mod",
	TokenAs:            "as",
	TokenSelf:          "self",
	TokenSelfType:      "Self",
	TokenStatic:        "static",
	TokenRef:           "ref",
	TokenMove:          "move",
	TokenUnsafe:        "unsafe",
	TokenExtern:        "extern",
	TokenCrate:         "crate",
	TokenSuper:         "super",
	TokenDyn:           "dyn",
	TokenAsync:         "async",
	TokenAwait:         "await",
	TokenYield:         "yield",
	TokenBox:           "box",
	TokenDo:            "do",
	TokenMacro:         "macro",
	TokenPriv:          "priv",
	TokenTypeof:        "typeof",
	TokenUnion:         "union",
	TokenVirtual:       "virtual",
	TokenAbstract:      "abstract",
	TokenFinal:         "final",
	TokenOverride:      "override",
	TokenBecome:        "become",
	TokenTry:           "try",
	TokenSizeof:        "sizeof",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenComma:         ",",
	TokenSemicolon:     ";",
	TokenColon:         ":",
	TokenColonColon:    "::",
	TokenAt:            "@",
	TokenHash:          "#",
	TokenDollar:        "$",
	TokenDot:           ".",
	TokenDotDot:        "..",
	TokenDotDotEq:      "..=",
	TokenArrow:         "->",
	TokenFatArrow:      "=>",
	TokenAssign:        "=",
	TokenEq:            "==",
	TokenNotEq:         "!=",
	TokenLt:            "<",
	TokenLe:            "<=",
	TokenSpaceship:     "<=>",
	TokenGt:            ">",
	TokenGe:            ">=",
	TokenShl:           "<<",
	TokenShr:           ">>",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenPower:         "**",
	TokenSlash:         "/",
	TokenPercent:       "%",
	TokenAmp:           "&",
	TokenPipe:          "|",
	TokenCaret:         "^",
	TokenNot:           "!",
	TokenTilde:         "~",
	TokenAndAnd:        "&&",
	TokenOrOr:          "||",
	TokenPlusAssign:    "+=",
	TokenMinusAssign:   "-=",
	TokenStarAssign:    "*=",
	TokenSlashAssign:   "/=",
	TokenPercentAssign: "%=",
	TokenAmpAssign:     "&=",
	TokenPipeAssign:    "|=",
	TokenCaretAssign:   "^=",
	TokenShlAssign:     "<<=",
	TokenShrAssign:     ">>=",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsKeyword reports whether k is a reserved-word token.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenFn && k <= TokenSizeof
}

// IsLiteral reports whether k is a literal token.
func (k TokenKind) IsLiteral() bool {
	return k >= TokenIntLiteral && k <= TokenBoolLiteral
}

// IsTrivia reports whether k is a whitespace or comment token.
// Trivia tokens only appear in streams produced with the corresponding
// preserve options enabled; the parser skips them.
func (k TokenKind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenLineComment || k == TokenBlockComment
}

// IsAssignOp reports whether k is an assignment operator (simple or compound).
func (k TokenKind) IsAssignOp() bool {
	return k == TokenAssign || (k >= TokenPlusAssign && k <= TokenShrAssign)
}

// Binary operator precedence levels, lowest to highest.
// Zero means "not a binary operator".
const (
	precNone           = 0
	precAssign         = 1  // = += -= *= /= %= &= |= ^= <<= >>=
	precRange          = 2  // .. ..=
	precOr             = 3  // ||
	precAnd            = 4  // &&
	precEquality       = 5  // == != <=>
	precRelational     = 6  // < > <= >=
	precBitOr          = 7  // |
	precBitXor         = 8  // ^
	precBitAnd         = 9  // &
	precShift          = 10 // << >>
	precAdditive       = 11 // + -
	precMultiplicative = 12 // * / %
	precPower          = 13 // **
)

// Precedence returns the binary operator precedence of k, or 0 when k
// cannot appear as a binary operator.
func (k TokenKind) Precedence() int {
	switch k {
	case TokenAssign, TokenPlusAssign, TokenMinusAssign, TokenStarAssign,
		TokenSlashAssign, TokenPercentAssign, TokenAmpAssign, TokenPipeAssign,
		TokenCaretAssign, TokenShlAssign, TokenShrAssign:
		return precAssign
	case TokenDotDot, TokenDotDotEq:
		return precRange
	case TokenOrOr:
		return precOr
	case TokenAndAnd:
		return precAnd
	case TokenEq, TokenNotEq, TokenSpaceship:
		return precEquality
	case TokenLt, TokenGt, TokenLe, TokenGe:
		return precRelational
	case TokenPipe:
		return precBitOr
	case TokenCaret:
		return precBitXor
	case TokenAmp:
		return precBitAnd
	case TokenShl, TokenShr:
		return precShift
	case TokenPlus, TokenMinus:
		return precAdditive
	case TokenStar, TokenSlash, TokenPercent:
		return precMultiplicative
	case TokenPower:
		return precPower
	}
	return precNone
}

// RightAssociative reports whether k groups right-to-left.
// Assignment forms and ** are right-associative; all other binary
// operators are left-associative.
func (k TokenKind) RightAssociative() bool {
	return k.IsAssignOp() || k == TokenPower
}

// IsUnaryOp reports whether k can appear as a prefix operator.
func (k TokenKind) IsUnaryOp() bool {
	switch k {
	case TokenPlus, TokenMinus, TokenNot, TokenTilde, TokenAmp, TokenStar:
		return true
	}
	return false
}

// Token is an immutable lexical unit. At most one of the payload fields
// (Text, Int, Float, Bool) is meaningful, selected by Kind: identifiers
// and string/char literals carry Text, integer literals carry Int, float
// literals carry Float, bool literals carry Bool. Keywords, operators,
// and delimiters carry no payload.
type Token struct {
	Kind  TokenKind
	Span  Span
	Text  string
	Int   int64
	Float float64
	Bool  bool
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdent, TokenStringLiteral, TokenCharLiteral:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	case TokenIntLiteral:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Int)
	case TokenFloatLiteral:
		return fmt.Sprintf("%s(%g)", t.Kind, t.Float)
	case TokenBoolLiteral:
		return fmt.Sprintf("%s(%t)", t.Kind, t.Bool)
	}
	return t.Kind.String()
}

var keywords = map[string]TokenKind{
	"fn":       TokenFn,
	"let":      TokenLet,
	"mut":      TokenMut,
	"const":    TokenConst,
	"if":       TokenIf,
	"else":     TokenElse,
	"while":    TokenWhile,
	"for":      TokenFor,
	"loop":     TokenLoop,
	"in":       TokenIn,
	"match":    TokenMatch,
	"return":   TokenReturn,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"struct":   TokenStruct,
	"enum":     TokenEnum,
	"trait":    TokenTrait,
	"impl":     TokenImpl,
	"type":     TokenType,
	"where":    TokenWhere,
	"pub":      TokenPub,
	"use":      TokenUse,
	"mod":      TokenMod,
	"as":       TokenAs,
	"self":     TokenSelf,
	"Self":     TokenSelfType,
	"static":   TokenStatic,
	"ref":      TokenRef,
	"move":     TokenMove,
	"unsafe":   TokenUnsafe,
	"extern":   TokenExtern,
	"crate":    TokenCrate,
	"super":    TokenSuper,
	"dyn":      TokenDyn,
	"async":    TokenAsync,
	"await":    TokenAwait,
	"yield":    TokenYield,
	"box":      TokenBox,
	"do":       TokenDo,
	"macro":    TokenMacro,
	"priv":     TokenPriv,
	"typeof":   TokenTypeof,
	"union":    TokenUnion,
	"virtual":  TokenVirtual,
	"abstract": TokenAbstract,
	"final":    TokenFinal,
	"override": TokenOverride,
	"become":   TokenBecome,
	"try":      TokenTry,
	"sizeof":   TokenSizeof,

	// true and false lex as bool-literal tokens, not keywords
	"true":  TokenBoolLiteral,
	"false": TokenBoolLiteral,
}

// LookupKeyword returns the keyword token kind for ident, or TokenIdent
// when ident is not reserved. The keyword table is built once and never
// mutated, so concurrent lookups are safe.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
