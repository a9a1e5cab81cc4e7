package parser

// The tokenizer and parser report coarse error kinds plus positions.
// Composing human-readable messages (source context, coloring) is the
// diag package's job; nothing here carries message arguments.

type LexErrorKind int

const (
	LexInvalidCharacter LexErrorKind = iota
	LexUnterminatedString
	LexUnterminatedChar
	LexInvalidEscape
	LexInvalidNumber
	LexInvalidFloat
	LexNumberTooLarge
	LexUnexpectedEOF
)

var lexErrorKindNames = [...]string{
	LexInvalidCharacter:   "invalid character",
	LexUnterminatedString: "unterminated string literal",
	LexUnterminatedChar:   "unterminated character literal",
	LexInvalidEscape:      "invalid escape sequence",
	LexInvalidNumber:      "invalid number literal",
	LexInvalidFloat:       "invalid float literal",
	LexNumberTooLarge:     "number literal out of range",
	LexUnexpectedEOF:      "unexpected end of input",
}

func (k LexErrorKind) String() string {
	if int(k) < len(lexErrorKindNames) {
		return lexErrorKindNames[k]
	}
	return "unknown lexical error"
}

// LexicalError is the tokenizer's failure value. The first lexical error
// aborts the whole pass.
type LexicalError struct {
	Kind LexErrorKind
	Pos  Position
}

func (e *LexicalError) Error() string {
	return e.Pos.String() + ": " + e.Kind.String()
}

type ParseErrorKind int

const (
	ParseUnexpectedToken ParseErrorKind = iota
	ParseUnexpectedEOF
	ParseExpectedExpression
	ParseExpectedStatement
	ParseExpectedDeclaration
	ParseExpectedIdentifier
	ParseExpectedType
	ParseExpectedOperator
	ParseInvalidSyntax
	ParseMissingDelimiter
	ParseInvalidLiteral
	ParseNestedTooDeep
	ParseInvalidAssignment
	ParseDuplicateParameter
	ParseInvalidReturnType
	ParseMissingFunctionBody
)

var parseErrorKindNames = [...]string{
	ParseUnexpectedToken:     "unexpected token",
	ParseUnexpectedEOF:       "unexpected end of input",
	ParseExpectedExpression:  "expected expression",
	ParseExpectedStatement:   "expected statement",
	ParseExpectedDeclaration: "expected declaration",
	ParseExpectedIdentifier:  "expected identifier",
	ParseExpectedType:        "expected type",
	ParseExpectedOperator:    "expected operator",
	ParseInvalidSyntax:       "invalid syntax",
	ParseMissingDelimiter:    "missing delimiter",
	ParseInvalidLiteral:      "invalid literal",
	ParseNestedTooDeep:       "expression nested too deeply",
	ParseInvalidAssignment:   "invalid assignment target",
	ParseDuplicateParameter:  "duplicate parameter name",
	ParseInvalidReturnType:   "invalid return type",
	ParseMissingFunctionBody: "missing function body",
}

func (k ParseErrorKind) String() string {
	if int(k) < len(parseErrorKindNames) {
		return parseErrorKindNames[k]
	}
	return "unknown parse error"
}

// ParseError is a single structural error recorded by the parser.
type ParseError struct {
	Kind ParseErrorKind
	Pos  Position
}

func (e *ParseError) Error() string {
	return e.Pos.String() + ": " + e.Kind.String()
}
