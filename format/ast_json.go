package format

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/cinderlang/cinder/parser"
)

// ASTJSONEncoder renders a syntax tree as indented JSON.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node parser.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(node parser.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Span     *astJSONSpan   `json:"span,omitempty"`
	Name     string         `json:"name,omitempty"`
	Value    string         `json:"value,omitempty"`
	Op       string         `json:"op,omitempty"`
	Mut      bool           `json:"mut,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func nodeToJSON(n parser.Node) *astJSONNode {
	if n == nil {
		return nil
	}

	jn := &astJSONNode{Kind: n.Kind().String()}

	span := n.Span()
	if span.Start.Line != 0 || span.End.Line != 0 {
		jn.Span = &astJSONSpan{
			Start: astJSONPosition{Line: span.Start.Line, Column: span.Start.Column},
			End:   astJSONPosition{Line: span.End.Line, Column: span.End.Column},
		}
	}

	switch n := n.(type) {
	case *parser.Program:
		for _, d := range n.Decls {
			jn.Children = append(jn.Children, nodeToJSON(d))
		}
	case *parser.FuncDecl:
		jn.Name = n.Name.Name
		for _, p := range n.Params {
			jn.Children = append(jn.Children, nodeToJSON(p))
		}
		if n.Result != nil {
			jn.Children = append(jn.Children, nodeToJSON(n.Result))
		}
		if n.Body != nil {
			jn.Children = append(jn.Children, nodeToJSON(n.Body))
		}
	case *parser.Param:
		jn.Name = n.Name.Name
		jn.Children = append(jn.Children, nodeToJSON(n.Type))
	case *parser.BlockStmt:
		for _, s := range n.Stmts {
			jn.Children = append(jn.Children, nodeToJSON(s))
		}
	case *parser.LetStmt:
		jn.Name = n.Name.Name
		jn.Mut = n.Mut
		if n.Type != nil {
			jn.Children = append(jn.Children, nodeToJSON(n.Type))
		}
		if n.Value != nil {
			jn.Children = append(jn.Children, nodeToJSON(n.Value))
		}
	case *parser.ExprStmt:
		jn.Children = append(jn.Children, nodeToJSON(n.X))
	case *parser.UnaryExpr:
		jn.Op = n.Op.String()
		jn.Children = append(jn.Children, nodeToJSON(n.X))
	case *parser.BinaryExpr:
		jn.Op = n.Op.String()
		jn.Children = append(jn.Children, nodeToJSON(n.X), nodeToJSON(n.Y))
	case *parser.CallExpr:
		jn.Children = append(jn.Children, nodeToJSON(n.Fun))
		for _, a := range n.Args {
			jn.Children = append(jn.Children, nodeToJSON(a))
		}
	case *parser.Ident:
		jn.Name = n.Name
	case *parser.IntLit:
		jn.Value = strconv.FormatInt(n.Value, 10)
	case *parser.FloatLit:
		jn.Value = strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *parser.BoolLit:
		jn.Value = strconv.FormatBool(n.Value)
	case *parser.StringLit:
		jn.Value = n.Value
	case *parser.CharLit:
		jn.Value = n.Value
	}

	return jn
}
