package parser

// DefaultMaxDepth bounds nested expression descent. The guard turns
// adversarial inputs (thousands of nested parentheses) into a reported
// error instead of unbounded stack growth.
const DefaultMaxDepth = 1000

// ParserOptions controls error recovery and the recursion-depth guard.
type ParserOptions struct {
	// Recover makes the declaration-list and statement-list loops
	// record an error and resynchronize instead of aborting. A failed
	// expression parse always propagates regardless of this setting.
	Recover bool

	// MaxDepth is the nested-expression limit; non-positive values
	// fall back to DefaultMaxDepth.
	MaxDepth int
}

// DefaultParserOptions enables recovery with the default depth limit.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{Recover: true, MaxDepth: DefaultMaxDepth}
}

// syncKinds are the tokens considered safe to resume parsing from after
// a recorded error.
var syncKinds = map[TokenKind]bool{
	TokenFn:        true,
	TokenLet:       true,
	TokenConst:     true,
	TokenLBrace:    true,
	TokenRBrace:    true,
	TokenSemicolon: true,
}

// Parser builds a syntax tree from a token stream: recursive descent
// for declarations and statements, precedence climbing for expressions.
// Construction takes ownership of the stream; a Parser is single-use
// and not safe for concurrent use.
type Parser struct {
	stream *TokenStream
	opts   ParserOptions
	errors []ParseError
	depth  int
}

// NewParser returns a Parser with DefaultParserOptions.
func NewParser(stream *TokenStream) *Parser {
	return NewParserWith(stream, DefaultParserOptions())
}

// NewParserWith returns a Parser with explicit options.
func NewParserWith(stream *TokenStream, opts ParserOptions) *Parser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Parser{stream: stream, opts: opts}
}

// ParseProgram parses the whole stream as a sequence of top-level
// declarations. It is a convenience wrapper over the Parser method.
func ParseProgram(stream *TokenStream) (*Program, []ParseError) {
	return NewParser(stream).ParseProgram()
}

// ParseExpression parses the stream as a single expression followed by
// end of input. Intended for tooling and REPL use.
func ParseExpression(stream *TokenStream) (Expr, []ParseError) {
	return NewParser(stream).ParseExpression()
}

// ParseStatement parses the stream as a single statement followed by
// end of input. Intended for tooling and REPL use.
func ParseStatement(stream *TokenStream) (Stmt, []ParseError) {
	return NewParser(stream).ParseStatement()
}

// ----------------------------------------------------------------------------
// Token navigation

// skipTrivia advances past whitespace and comment tokens, which only
// appear in streams produced with the preserve options.
func (p *Parser) skipTrivia() {
	for p.stream.Current().Kind.IsTrivia() {
		p.stream.Advance()
	}
}

// tok returns the current significant token without consuming it.
func (p *Parser) tok() Token {
	p.skipTrivia()
	return p.stream.Current()
}

// next consumes and returns the current significant token.
func (p *Parser) next() Token {
	p.skipTrivia()
	return p.stream.Advance()
}

// got consumes the current token if it has the given kind.
func (p *Parser) got(kind TokenKind) bool {
	if p.tok().Kind == kind {
		p.stream.Advance()
		return true
	}
	return false
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) errAt(kind ParseErrorKind, pos Position) *ParseError {
	return &ParseError{Kind: kind, Pos: pos}
}

func (p *Parser) record(err *ParseError) {
	p.errors = append(p.errors, *err)
}

// sync discards tokens until a synchronization point or end of input.
// It always consumes at least one token so the enclosing loop makes
// progress.
func (p *Parser) sync() {
	if !p.stream.AtEOF() {
		p.next()
	}
	for {
		t := p.tok()
		if t.Kind == TokenEOF || syncKinds[t.Kind] {
			return
		}
		p.stream.Advance()
	}
}

// skipOrphanBlock consumes a balanced brace group left behind by a
// failed declaration, so its body is not misread as new declarations.
func (p *Parser) skipOrphanBlock() {
	if p.tok().Kind != TokenLBrace {
		return
	}
	depth := 0
	for {
		t := p.tok()
		switch t.Kind {
		case TokenLBrace:
			depth++
		case TokenRBrace:
			depth--
		case TokenEOF:
			return
		}
		p.stream.Advance()
		if depth == 0 {
			return
		}
	}
}

// ----------------------------------------------------------------------------
// Entry points

// ParseProgram parses declarations until end of input or a closing
// brace. The returned error list is nil on success; with recovery
// enabled the returned Program holds everything that parsed cleanly.
func (p *Parser) ParseProgram() (*Program, []ParseError) {
	prog := &Program{}
	prog.span.Start = p.tok().Span.Start

	for {
		t := p.tok()
		if t.Kind == TokenEOF || t.Kind == TokenRBrace {
			break
		}
		if t.Kind == TokenSemicolon {
			p.next()
			continue
		}

		d, err := p.decl()
		if err != nil {
			p.record(err)
			if !p.opts.Recover {
				break
			}
			p.sync()
			p.skipOrphanBlock()
			continue
		}
		prog.Decls = append(prog.Decls, d)
	}

	prog.span.End = p.tok().Span.End
	return prog, p.errors
}

// ParseExpression parses one expression followed by end of input.
func (p *Parser) ParseExpression() (Expr, []ParseError) {
	x, err := p.expr()
	if err != nil {
		p.record(err)
		return nil, p.errors
	}
	if t := p.tok(); t.Kind != TokenEOF {
		p.record(p.errAt(ParseUnexpectedToken, t.Span.Start))
		return x, p.errors
	}
	return x, nil
}

// ParseStatement parses one statement followed by end of input.
func (p *Parser) ParseStatement() (Stmt, []ParseError) {
	for p.tok().Kind == TokenSemicolon {
		p.next()
	}
	s, err := p.stmt()
	if err != nil {
		p.record(err)
		return nil, p.errors
	}
	for p.tok().Kind == TokenSemicolon {
		p.next()
	}
	if t := p.tok(); t.Kind != TokenEOF {
		p.record(p.errAt(ParseUnexpectedToken, t.Span.Start))
		return s, p.errors
	}
	return s, nil
}

// ----------------------------------------------------------------------------
// Declarations

func (p *Parser) decl() (Decl, *ParseError) {
	t := p.tok()
	switch t.Kind {
	case TokenFn:
		return p.funcDecl()
	case TokenEOF:
		return nil, p.errAt(ParseUnexpectedEOF, t.Span.Start)
	default:
		return nil, p.errAt(ParseExpectedDeclaration, t.Span.Start)
	}
}

// funcDecl parses: fn IDENT ( params ) [-> type] block
func (p *Parser) funcDecl() (*FuncDecl, *ParseError) {
	fnTok := p.next() // fn

	nameTok := p.tok()
	if nameTok.Kind != TokenIdent {
		return nil, p.errAt(ParseExpectedIdentifier, nameTok.Span.Start)
	}
	p.next()
	name := &Ident{Name: nameTok.Text}
	name.span = nameTok.Span

	if !p.got(TokenLParen) {
		return nil, p.errAt(ParseMissingDelimiter, p.tok().Span.Start)
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}

	var result Expr
	if p.got(TokenArrow) {
		result, err = p.typeExpr()
		if err != nil {
			return nil, p.errAt(ParseInvalidReturnType, err.Pos)
		}
	}

	if p.tok().Kind != TokenLBrace {
		return nil, p.errAt(ParseMissingFunctionBody, p.tok().Span.Start)
	}
	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}

	d := &FuncDecl{Name: name, Params: params, Result: result, Body: body}
	d.span = Span{Start: fnTok.Span.Start, End: body.Span().End}
	return d, nil
}

// paramList parses IDENT : type pairs up to the closing parenthesis.
// No trailing comma is permitted.
func (p *Parser) paramList() ([]*Param, *ParseError) {
	var params []*Param
	if p.got(TokenRParen) {
		return params, nil
	}

	seen := make(map[string]bool)
	for {
		nameTok := p.tok()
		if nameTok.Kind != TokenIdent {
			if nameTok.Kind == TokenEOF {
				return nil, p.errAt(ParseUnexpectedEOF, nameTok.Span.Start)
			}
			return nil, p.errAt(ParseExpectedIdentifier, nameTok.Span.Start)
		}
		p.next()
		name := &Ident{Name: nameTok.Text}
		name.span = nameTok.Span

		if !p.got(TokenColon) {
			return nil, p.errAt(ParseExpectedType, p.tok().Span.Start)
		}
		typ, err := p.typeExpr()
		if err != nil {
			return nil, err
		}

		if seen[name.Name] {
			dup := p.errAt(ParseDuplicateParameter, name.span.Start)
			if !p.opts.Recover {
				return nil, dup
			}
			p.record(dup)
		}
		seen[name.Name] = true

		param := &Param{Name: name, Type: typ}
		param.span = Span{Start: name.span.Start, End: typ.Span().End}
		params = append(params, param)

		switch t := p.tok(); t.Kind {
		case TokenComma:
			p.next()
			if p.tok().Kind == TokenRParen {
				return nil, p.errAt(ParseUnexpectedToken, p.tok().Span.Start)
			}
		case TokenRParen:
			p.next()
			return params, nil
		case TokenEOF:
			return nil, p.errAt(ParseUnexpectedEOF, t.Span.Start)
		default:
			return nil, p.errAt(ParseMissingDelimiter, t.Span.Start)
		}
	}
}

// typeExpr parses a type expression: an identifier, optionally behind
// pointer or reference prefixes. Types share the expression node
// representation; the reserved type node range stays unused until the
// grammar grows dedicated type forms.
func (p *Parser) typeExpr() (Expr, *ParseError) {
	t := p.tok()
	switch t.Kind {
	case TokenStar, TokenAmp:
		p.next()
		base, err := p.typeExpr()
		if err != nil {
			return nil, err
		}
		u := &UnaryExpr{Op: t.Kind, X: base}
		u.span = Span{Start: t.Span.Start, End: base.Span().End}
		return u, nil
	case TokenIdent:
		p.next()
		n := &Ident{Name: t.Text}
		n.span = t.Span
		return n, nil
	case TokenEOF:
		return nil, p.errAt(ParseUnexpectedEOF, t.Span.Start)
	default:
		return nil, p.errAt(ParseExpectedType, t.Span.Start)
	}
}

// ----------------------------------------------------------------------------
// Statements

func (p *Parser) stmt() (Stmt, *ParseError) {
	t := p.tok()
	switch t.Kind {
	case TokenLet:
		return p.letStmt()
	case TokenLBrace:
		return p.blockStmt()
	case TokenEOF:
		return nil, p.errAt(ParseUnexpectedEOF, t.Span.Start)
	default:
		if t.Kind.IsKeyword() {
			return nil, p.errAt(ParseExpectedStatement, t.Span.Start)
		}
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		s := &ExprStmt{X: x}
		s.span = x.Span()
		return s, nil
	}
}

// letStmt parses: let [mut] IDENT [: type] [= expr]
func (p *Parser) letStmt() (Stmt, *ParseError) {
	letTok := p.next() // let
	mut := p.got(TokenMut)

	nameTok := p.tok()
	if nameTok.Kind != TokenIdent {
		return nil, p.errAt(ParseExpectedIdentifier, nameTok.Span.Start)
	}
	p.next()
	name := &Ident{Name: nameTok.Text}
	name.span = nameTok.Span

	s := &LetStmt{Mut: mut, Name: name}
	end := nameTok.Span.End

	if p.got(TokenColon) {
		typ, err := p.typeExpr()
		if err != nil {
			return nil, err
		}
		s.Type = typ
		end = typ.Span().End
	}
	if p.got(TokenAssign) {
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		s.Value = value
		end = value.Span().End
	}

	s.span = Span{Start: letTok.Span.Start, End: end}
	return s, nil
}

// blockStmt parses: { stmt* }  — stray semicolons between statements
// are separators, not statements.
func (p *Parser) blockStmt() (*BlockStmt, *ParseError) {
	lbrace := p.tok()
	if lbrace.Kind != TokenLBrace {
		return nil, p.errAt(ParseMissingDelimiter, lbrace.Span.Start)
	}
	p.next()

	b := &BlockStmt{}
	b.span.Start = lbrace.Span.Start

	for {
		t := p.tok()
		if t.Kind == TokenRBrace {
			break
		}
		if t.Kind == TokenEOF {
			return nil, p.errAt(ParseUnexpectedEOF, t.Span.Start)
		}
		if t.Kind == TokenSemicolon {
			p.next()
			continue
		}

		s, err := p.stmt()
		if err != nil {
			if !p.opts.Recover {
				return nil, err
			}
			p.record(err)
			p.sync()
			continue
		}
		b.Stmts = append(b.Stmts, s)
	}

	rbrace := p.next() // }
	b.span.End = rbrace.Span.End
	return b, nil
}

// ----------------------------------------------------------------------------
// Expressions — precedence climbing

func (p *Parser) expr() (Expr, *ParseError) {
	return p.binaryExpr(precAssign)
}

// binaryExpr parses one unary operand, then folds in binary operators
// whose precedence is at least min. Left-associative operators restart
// the right-hand parse one level tighter; right-associative operators
// restart at the same level.
func (p *Parser) binaryExpr(min int) (Expr, *ParseError) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	x, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		opTok := p.tok()
		prec := opTok.Kind.Precedence()
		if prec == precNone || prec < min {
			return x, nil
		}
		p.next()

		nextMin := prec + 1
		if opTok.Kind.RightAssociative() {
			nextMin = prec
		}

		y, err := p.binaryExpr(nextMin)
		if err != nil {
			return nil, err
		}

		if opTok.Kind.IsAssignOp() {
			if _, ok := x.(*Ident); !ok {
				return nil, p.errAt(ParseInvalidAssignment, opTok.Span.Start)
			}
		}

		bin := &BinaryExpr{Op: opTok.Kind, X: x, Y: y}
		bin.span = Span{Start: x.Span().Start, End: y.Span().End}
		x = bin
	}
}

func (p *Parser) unaryExpr() (Expr, *ParseError) {
	t := p.tok()
	if !t.Kind.IsUnaryOp() {
		return p.postfixExpr()
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.next()
	x, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}
	u := &UnaryExpr{Op: t.Kind, X: x}
	u.span = Span{Start: t.Span.Start, End: x.Span().End}
	return u, nil
}

// postfixExpr parses a primary expression followed by call chains:
// f(a, b)(c). Call arguments are comma-separated with no trailing
// comma.
func (p *Parser) postfixExpr() (Expr, *ParseError) {
	x, err := p.primaryExpr()
	if err != nil {
		return nil, err
	}

	for p.tok().Kind == TokenLParen {
		p.next()

		var args []Expr
		if p.tok().Kind != TokenRParen {
			for {
				arg, err := p.expr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.got(TokenComma) {
					break
				}
				if p.tok().Kind == TokenRParen {
					return nil, p.errAt(ParseUnexpectedToken, p.tok().Span.Start)
				}
			}
		}

		closeTok := p.tok()
		if closeTok.Kind != TokenRParen {
			if closeTok.Kind == TokenEOF {
				return nil, p.errAt(ParseUnexpectedEOF, closeTok.Span.Start)
			}
			return nil, p.errAt(ParseMissingDelimiter, closeTok.Span.Start)
		}
		p.next()

		call := &CallExpr{Fun: x, Args: args}
		call.span = Span{Start: x.Span().Start, End: closeTok.Span.End}
		x = call
	}
	return x, nil
}

func (p *Parser) primaryExpr() (Expr, *ParseError) {
	t := p.tok()
	switch t.Kind {
	case TokenIdent:
		p.next()
		n := &Ident{Name: t.Text}
		n.span = t.Span
		return n, nil

	case TokenIntLiteral:
		p.next()
		n := &IntLit{Value: t.Int}
		n.span = t.Span
		return n, nil

	case TokenFloatLiteral:
		p.next()
		n := &FloatLit{Value: t.Float}
		n.span = t.Span
		return n, nil

	case TokenBoolLiteral:
		p.next()
		n := &BoolLit{Value: t.Bool}
		n.span = t.Span
		return n, nil

	case TokenStringLiteral:
		p.next()
		n := &StringLit{Value: t.Text}
		n.span = t.Span
		return n, nil

	case TokenCharLiteral:
		p.next()
		n := &CharLit{Value: t.Text}
		n.span = t.Span
		return n, nil

	case TokenLParen:
		p.next()
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.tok().Kind != TokenRParen {
			return nil, p.errAt(ParseMissingDelimiter, p.tok().Span.Start)
		}
		p.next()
		return x, nil

	case TokenEOF:
		return nil, p.errAt(ParseUnexpectedEOF, t.Span.Start)

	default:
		return nil, p.errAt(ParseExpectedExpression, t.Span.Start)
	}
}

// ----------------------------------------------------------------------------
// Recursion-depth guard

func (p *Parser) enter() *ParseError {
	if p.depth >= p.opts.MaxDepth {
		return p.errAt(ParseNestedTooDeep, p.tok().Span.Start)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
