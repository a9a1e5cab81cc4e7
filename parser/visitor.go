package parser

// Visitor is the double-dispatch consumer contract: each node's Accept
// calls exactly one method below. The node-variant set is closed, so
// adding a variant means widening this interface and updating every
// implementation; that trade-off is deliberate for a stable grammar.
type Visitor interface {
	VisitProgram(n *Program)
	VisitFuncDecl(n *FuncDecl)
	VisitParam(n *Param)
	VisitBlockStmt(n *BlockStmt)
	VisitLetStmt(n *LetStmt)
	VisitExprStmt(n *ExprStmt)
	VisitIdent(n *Ident)
	VisitIntLit(n *IntLit)
	VisitFloatLit(n *FloatLit)
	VisitBoolLit(n *BoolLit)
	VisitStringLit(n *StringLit)
	VisitCharLit(n *CharLit)
	VisitUnaryExpr(n *UnaryExpr)
	VisitBinaryExpr(n *BinaryExpr)
	VisitCallExpr(n *CallExpr)
}

// BaseVisitor is a no-op Visitor for embedding, so a visitor only has
// to override the methods it cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program)       {}
func (BaseVisitor) VisitFuncDecl(*FuncDecl)     {}
func (BaseVisitor) VisitParam(*Param)           {}
func (BaseVisitor) VisitBlockStmt(*BlockStmt)   {}
func (BaseVisitor) VisitLetStmt(*LetStmt)       {}
func (BaseVisitor) VisitExprStmt(*ExprStmt)     {}
func (BaseVisitor) VisitIdent(*Ident)           {}
func (BaseVisitor) VisitIntLit(*IntLit)         {}
func (BaseVisitor) VisitFloatLit(*FloatLit)     {}
func (BaseVisitor) VisitBoolLit(*BoolLit)       {}
func (BaseVisitor) VisitStringLit(*StringLit)   {}
func (BaseVisitor) VisitCharLit(*CharLit)       {}
func (BaseVisitor) VisitUnaryExpr(*UnaryExpr)   {}
func (BaseVisitor) VisitBinaryExpr(*BinaryExpr) {}
func (BaseVisitor) VisitCallExpr(*CallExpr)     {}

// Walk traverses the tree rooted at n in depth-first pre-order, calling
// f for each node. If f returns false, the node's children are skipped.
func Walk(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		for _, d := range n.Decls {
			Walk(d, f)
		}
	case *FuncDecl:
		Walk(n.Name, f)
		for _, p := range n.Params {
			Walk(p, f)
		}
		if n.Result != nil {
			Walk(n.Result, f)
		}
		if n.Body != nil {
			Walk(n.Body, f)
		}
	case *Param:
		Walk(n.Name, f)
		Walk(n.Type, f)
	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, f)
		}
	case *LetStmt:
		Walk(n.Name, f)
		if n.Type != nil {
			Walk(n.Type, f)
		}
		if n.Value != nil {
			Walk(n.Value, f)
		}
	case *ExprStmt:
		Walk(n.X, f)
	case *UnaryExpr:
		Walk(n.X, f)
	case *BinaryExpr:
		Walk(n.X, f)
		Walk(n.Y, f)
	case *CallExpr:
		Walk(n.Fun, f)
		for _, a := range n.Args {
			Walk(a, f)
		}
	case *Ident, *IntLit, *FloatLit, *BoolLit, *StringLit, *CharLit:
		// leaves
	}
}
