// Package format renders token streams and syntax trees for the CLI.
package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cinderlang/cinder/parser"
)

// TokenTextEncoder writes one token per line: position, kind, payload.
type TokenTextEncoder struct {
	w io.Writer
}

func NewTokenTextEncoder(w io.Writer) *TokenTextEncoder {
	return &TokenTextEncoder{w: w}
}

func (e *TokenTextEncoder) Encode(stream *parser.TokenStream) error {
	for _, tok := range stream.Tokens() {
		if _, err := fmt.Fprintf(e.w, "%s\t%s\n", tok.Span.Start, tok); err != nil {
			return err
		}
	}
	return nil
}

// TokenJSONEncoder writes the stream as a JSON array.
type TokenJSONEncoder struct {
	w io.Writer
}

func NewTokenJSONEncoder(w io.Writer) *TokenJSONEncoder {
	return &TokenJSONEncoder{w: w}
}

type tokenJSON struct {
	Kind  string `json:"kind"`
	Line  int    `json:"line"`
	Col   int    `json:"col"`
	Text  string `json:"text,omitempty"`
	Int   int64  `json:"int,omitempty"`
	Float string `json:"float,omitempty"`
	Bool  bool   `json:"bool,omitempty"`
}

func (e *TokenJSONEncoder) Encode(stream *parser.TokenStream) error {
	out := make([]tokenJSON, 0, stream.Len())
	for _, tok := range stream.Tokens() {
		jt := tokenJSON{
			Kind: tok.Kind.String(),
			Line: tok.Span.Start.Line,
			Col:  tok.Span.Start.Column,
		}
		switch tok.Kind {
		case parser.TokenIdent, parser.TokenStringLiteral, parser.TokenCharLiteral,
			parser.TokenLineComment, parser.TokenBlockComment:
			jt.Text = tok.Text
		case parser.TokenIntLiteral:
			jt.Int = tok.Int
		case parser.TokenFloatLiteral:
			jt.Float = fmt.Sprintf("%g", tok.Float)
		case parser.TokenBoolLiteral:
			jt.Bool = tok.Bool
		}
		out = append(out, jt)
	}

	text, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.w)
	return err
}
