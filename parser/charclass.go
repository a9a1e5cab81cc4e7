package parser

// charClass is a coarse lexical class used to dispatch the scanner.
type charClass uint8

const (
	classInvalid charClass = iota
	classWhitespace
	classNewline
	classLetter
	classDigit
	classQuote       // '
	classDoubleQuote // "
	classOperator    // byte that can start an operator or delimiter
)

// classTable maps every possible input byte to its class. It is filled
// once at init and never written again, so unsynchronized concurrent
// reads are safe.
var classTable [256]charClass

func init() {
	for i := 0; i < 256; i++ {
		ch := byte(i)
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			classTable[i] = classWhitespace
		case ch == '\n':
			classTable[i] = classNewline
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '_':
			classTable[i] = classLetter
		case ch >= '0' && ch <= '9':
			classTable[i] = classDigit
		case ch == '\'':
			classTable[i] = classQuote
		case ch == '"':
			classTable[i] = classDoubleQuote
		case ch >= 0x80:
			// Non-ASCII bytes may only appear inside identifiers;
			// the scanner validates the UTF-8 sequence.
			classTable[i] = classLetter
		default:
			classTable[i] = classInvalid
		}
	}

	for _, ch := range []byte("()[]{},;:@#$.=<>+-*/%&|^!~") {
		classTable[ch] = classOperator
	}
}

func classOf(ch byte) charClass { return classTable[ch] }

func isDigit(ch byte) bool { return classOf(ch) == classDigit }

func isLetter(ch byte) bool { return classOf(ch) == classLetter }

func isIdentChar(ch byte) bool {
	c := classOf(ch)
	return c == classLetter || c == classDigit
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isBinaryDigit(ch byte) bool { return ch == '0' || ch == '1' }

func isOctalDigit(ch byte) bool { return ch >= '0' && ch <= '7' }

func lower(ch byte) byte { return ch | ('a' - 'A') }
