package parser

import (
	"strconv"
	"strings"
)

// NodeKind discriminates AST node variants. Kinds are partitioned into
// disjoint numeric ranges by family so range membership doubles as the
// family test backing safe downcasts:
//
//	[100,200) expressions
//	[200,300) statements
//	[300,400) declarations
//	[400,500) types    (reserved, unused by the current grammar)
//	[500,600) patterns (reserved, unused by the current grammar)
//	600       program root
//
// Every concrete node's Kind must stay inside its family's range; the
// family predicates below and the visitor dispatch both rely on it.
type NodeKind int

const (
	exprKindBase    NodeKind = 100
	stmtKindBase    NodeKind = 200
	declKindBase    NodeKind = 300
	typeKindBase    NodeKind = 400
	patternKindBase NodeKind = 500
)

const (
	KindIdent NodeKind = exprKindBase + iota
	KindIntLit
	KindFloatLit
	KindBoolLit
	KindStringLit
	KindCharLit
	KindUnaryExpr
	KindBinaryExpr
	KindCallExpr
)

const (
	KindLetStmt NodeKind = stmtKindBase + iota
	KindExprStmt
	KindBlockStmt
)

const (
	KindFuncDecl NodeKind = declKindBase + iota
	KindParam
)

const KindProgram NodeKind = 600

var nodeKindNames = map[NodeKind]string{
	KindIdent:      "Ident",
	KindIntLit:     "IntLit",
	KindFloatLit:   "FloatLit",
	KindBoolLit:    "BoolLit",
	KindStringLit:  "StringLit",
	KindCharLit:    "CharLit",
	KindUnaryExpr:  "UnaryExpr",
	KindBinaryExpr: "BinaryExpr",
	KindCallExpr:   "CallExpr",
	KindLetStmt:    "LetStmt",
	KindExprStmt:   "ExprStmt",
	KindBlockStmt:  "BlockStmt",
	KindFuncDecl:   "FuncDecl",
	KindParam:      "Param",
	KindProgram:    "Program",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsExprKind reports whether k lies in the expression range.
func IsExprKind(k NodeKind) bool { return k >= exprKindBase && k < stmtKindBase }

// IsStmtKind reports whether k lies in the statement range.
func IsStmtKind(k NodeKind) bool { return k >= stmtKindBase && k < declKindBase }

// IsDeclKind reports whether k lies in the declaration range.
func IsDeclKind(k NodeKind) bool { return k >= declKindBase && k < typeKindBase }

// Node is implemented by all AST nodes. Nodes exclusively own their
// children: the structure is a tree with no sharing and no cycles.
// String renders the canonical fully-parenthesized form, meant for
// structural assertions rather than re-parsing.
type Node interface {
	Kind() NodeKind
	Span() Span
	String() string
	Accept(v Visitor)
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// node is the base struct embedded in all AST nodes.
type node struct {
	span Span
}

func (n *node) Span() Span { return n.span }

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Expressions

// Ident is an identifier reference.
type Ident struct {
	expr
	Name string
}

func (*Ident) Kind() NodeKind     { return KindIdent }
func (n *Ident) String() string   { return n.Name }
func (n *Ident) Accept(v Visitor) { v.VisitIdent(n) }

// IntLit is an integer literal. Value holds the parsed 64-bit value
// regardless of the source radix.
type IntLit struct {
	expr
	Value int64
}

func (*IntLit) Kind() NodeKind     { return KindIntLit }
func (n *IntLit) String() string   { return strconv.FormatInt(n.Value, 10) }
func (n *IntLit) Accept(v Visitor) { v.VisitIntLit(n) }

// FloatLit is a floating-point literal.
type FloatLit struct {
	expr
	Value float64
}

func (*FloatLit) Kind() NodeKind     { return KindFloatLit }
func (n *FloatLit) String() string   { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *FloatLit) Accept(v Visitor) { v.VisitFloatLit(n) }

// BoolLit is a true/false literal.
type BoolLit struct {
	expr
	Value bool
}

func (*BoolLit) Kind() NodeKind     { return KindBoolLit }
func (n *BoolLit) String() string   { return strconv.FormatBool(n.Value) }
func (n *BoolLit) Accept(v Visitor) { v.VisitBoolLit(n) }

// StringLit is a string literal. Value is the de-escaped content.
type StringLit struct {
	expr
	Value string
}

func (*StringLit) Kind() NodeKind     { return KindStringLit }
func (n *StringLit) String() string   { return strconv.Quote(n.Value) }
func (n *StringLit) Accept(v Visitor) { v.VisitStringLit(n) }

// CharLit is a character literal. Value is the de-escaped content.
type CharLit struct {
	expr
	Value string
}

func (*CharLit) Kind() NodeKind     { return KindCharLit }
func (n *CharLit) String() string   { return "'" + n.Value + "'" }
func (n *CharLit) Accept(v Visitor) { v.VisitCharLit(n) }

// UnaryExpr is a prefix operation: Op X.
type UnaryExpr struct {
	expr
	Op TokenKind
	X  Expr
}

func (*UnaryExpr) Kind() NodeKind     { return KindUnaryExpr }
func (n *UnaryExpr) String() string   { return "(" + n.Op.String() + n.X.String() + ")" }
func (n *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(n) }

// BinaryExpr is an infix operation: X Op Y. Assignment forms are
// represented here as well; the parser guarantees their target is an
// identifier.
type BinaryExpr struct {
	expr
	Op TokenKind
	X  Expr
	Y  Expr
}

func (*BinaryExpr) Kind() NodeKind { return KindBinaryExpr }
func (n *BinaryExpr) String() string {
	return "(" + n.X.String() + " " + n.Op.String() + " " + n.Y.String() + ")"
}
func (n *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(n) }

// CallExpr is a call: Fun(Args...). Chained calls nest through Fun.
type CallExpr struct {
	expr
	Fun  Expr
	Args []Expr
}

func (*CallExpr) Kind() NodeKind { return KindCallExpr }
func (n *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(n.Fun.String())
	b.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}
func (n *CallExpr) Accept(v Visitor) { v.VisitCallExpr(n) }

// ----------------------------------------------------------------------------
// Statements

// LetStmt is a binding: let [mut] Name [: Type] [= Value].
// Type and Value may each be nil.
type LetStmt struct {
	stmt
	Mut   bool
	Name  *Ident
	Type  Expr
	Value Expr
}

func (*LetStmt) Kind() NodeKind { return KindLetStmt }
func (n *LetStmt) String() string {
	var b strings.Builder
	b.WriteString("let ")
	if n.Mut {
		b.WriteString("mut ")
	}
	b.WriteString(n.Name.String())
	if n.Type != nil {
		b.WriteString(": ")
		b.WriteString(n.Type.String())
	}
	if n.Value != nil {
		b.WriteString(" = ")
		b.WriteString(n.Value.String())
	}
	return b.String()
}
func (n *LetStmt) Accept(v Visitor) { v.VisitLetStmt(n) }

// ExprStmt is a bare expression in statement position.
type ExprStmt struct {
	stmt
	X Expr
}

func (*ExprStmt) Kind() NodeKind     { return KindExprStmt }
func (n *ExprStmt) String() string   { return n.X.String() }
func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }

// BlockStmt is a braced statement list.
type BlockStmt struct {
	stmt
	Stmts []Stmt
}

func (*BlockStmt) Kind() NodeKind { return KindBlockStmt }
func (n *BlockStmt) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, s := range n.Stmts {
		b.WriteString(s.String())
		b.WriteString("; ")
	}
	b.WriteByte('}')
	return b.String()
}
func (n *BlockStmt) Accept(v Visitor) { v.VisitBlockStmt(n) }

// ----------------------------------------------------------------------------
// Declarations

// Param is a single function parameter: Name: Type.
type Param struct {
	decl
	Name *Ident
	Type Expr
}

func (*Param) Kind() NodeKind     { return KindParam }
func (n *Param) String() string   { return n.Name.String() + ": " + n.Type.String() }
func (n *Param) Accept(v Visitor) { v.VisitParam(n) }

// FuncDecl is a function declaration:
// fn Name(Params...) [-> Result] Body.
type FuncDecl struct {
	decl
	Name   *Ident
	Params []*Param
	Result Expr // nil when no return type is declared
	Body   *BlockStmt
}

func (*FuncDecl) Kind() NodeKind { return KindFuncDecl }
func (n *FuncDecl) String() string {
	var b strings.Builder
	b.WriteString("fn ")
	b.WriteString(n.Name.String())
	b.WriteByte('(')
	for i, p := range n.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	if n.Result != nil {
		b.WriteString(" -> ")
		b.WriteString(n.Result.String())
	}
	if n.Body != nil {
		b.WriteByte(' ')
		b.WriteString(n.Body.String())
	}
	return b.String()
}
func (n *FuncDecl) Accept(v Visitor) { v.VisitFuncDecl(n) }

// ----------------------------------------------------------------------------
// Program

// Program is the unique tree root, owning the top-level declarations.
type Program struct {
	node
	Decls []Decl
}

func (*Program) Kind() NodeKind { return KindProgram }
func (n *Program) String() string {
	var b strings.Builder
	for i, d := range n.Decls {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.String())
	}
	return b.String()
}
func (n *Program) Accept(v Visitor) { v.VisitProgram(n) }
