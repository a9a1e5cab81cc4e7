// Package lsp serves Cinder diagnostics over the Language Server
// Protocol with full-document synchronization.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/cinderlang/cinder/diag"
	"github.com/cinderlang/cinder/parser"
	"github.com/cinderlang/cinder/source"
)

const lsName = "cinder"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.Mutex
	documents map[string]*source.File // keyed by URI
}

func NewServer(version string) *Server {
	s := &Server{
		version:   version,
		documents: make(map[string]*source.File),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

// Document returns the tracked snapshot for uri, if the client has it
// open.
func (s *Server) Document(uri string) (*source.File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.documents[uri]
	return f, ok
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.updateDocument(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.updateDocument(ctx, params.TextDocument.URI, []byte(whole.Text))
	}
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.updateDocument(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()

	// Clear any published diagnostics for the closed document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// updateDocument replaces the tracked content for uri, reanalyzes it,
// and publishes the resulting diagnostics.
func (s *Server) updateDocument(ctx *glsp.Context, uri string, content []byte) {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}
	file := source.NewFile(path, content)

	s.mu.Lock()
	s.documents[uri] = file
	s.mu.Unlock()

	diags := Analyze(file)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: toProtocol(diags),
	})
}

// Analyze tokenizes and parses file, returning its diagnostics. A
// lexical error stops the analysis; parse errors accumulate through
// recovery.
func Analyze(file *source.File) []diag.Diagnostic {
	stream, err := parser.Tokenize(file.Content, file.Name)
	if err != nil {
		if lexErr, ok := err.(*parser.LexicalError); ok {
			return []diag.Diagnostic{diag.FromLexical(lexErr)}
		}
		return []diag.Diagnostic{{Pos: parser.Position{File: file.Name, Line: 1, Column: 1}, Message: err.Error()}}
	}

	_, errs := parser.ParseProgram(stream)
	return diag.FromParseErrors(errs)
}

func toProtocol(diags []diag.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	src := lsName
	for _, d := range diags {
		severity := protocol.DiagnosticSeverityError
		switch d.Severity {
		case diag.SeverityWarning:
			severity = protocol.DiagnosticSeverityWarning
		case diag.SeverityNote:
			severity = protocol.DiagnosticSeverityInformation
		}

		pos := protocol.Position{
			Line:      protocol.UInteger(d.Pos.Line - 1),
			Character: protocol.UInteger(d.Pos.Column - 1),
		}
		out = append(out, protocol.Diagnostic{
			Range:    protocol.Range{Start: pos, End: protocol.Position{Line: pos.Line, Character: pos.Character + 1}},
			Severity: &severity,
			Source:   &src,
			Message:  d.Message,
		})
	}
	return out
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
