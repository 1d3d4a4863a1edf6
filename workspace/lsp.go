package workspace

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/squall321/AdvancedModeller/kfile"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "advmod"

// LSPServer serves document symbols and parse diagnostics for open
// K-files over stdio.
type LSPServer struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		workspace: New(),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	doc := ls.workspace.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			doc := ls.workspace.UpdateFile(path, []byte(textChange.Text))
			ls.publishDiagnostics(ctx, params.TextDocument.URI, doc)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.Remove(path)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	var doc *Document
	if params.Text != nil {
		doc = ls.workspace.UpdateFile(path, []byte(*params.Text))
	} else {
		doc = ls.workspace.ScanFile(path)
	}
	if doc != nil {
		ls.publishDiagnostics(ctx, params.TextDocument.URI, doc)
	}
	return nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	doc := ls.workspace.Document(path)
	if doc == nil {
		return nil, nil
	}

	var symbols []protocol.DocumentSymbol
	for _, block := range doc.Outline() {
		kind := symbolKindFor(block.Kind)
		r := protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(block.Line - 1)},
			End:   protocol.Position{Line: protocol.UInteger(block.EndLine - 1)},
		}
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           block.Keyword,
			Kind:           kind,
			Range:          r,
			SelectionRange: protocol.Range{Start: r.Start, End: r.Start},
		})
	}
	return symbols, nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, doc *Document) {
	severity := protocol.DiagnosticSeverityWarning
	source := lsName

	diagnostics := []protocol.Diagnostic{}
	for _, d := range doc.Diagnostics() {
		line := 0
		if d.Line > 0 {
			line = d.Line - 1
		}
		r := protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line)},
			End:   protocol.Position{Line: protocol.UInteger(line)},
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    r,
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func symbolKindFor(kind kfile.KeywordKind) protocol.SymbolKind {
	switch kind {
	case kfile.KwNode:
		return protocol.SymbolKindArray
	case kfile.KwPart:
		return protocol.SymbolKindClass
	case kfile.KwElementShell, kfile.KwElementSolid, kfile.KwElementBeam:
		return protocol.SymbolKindArray
	case kfile.KwMaterial:
		return protocol.SymbolKindStruct
	case kfile.KwSetNodeList, kfile.KwSetPartList, kfile.KwSetSegment, kfile.KwSetShell, kfile.KwSetSolid:
		return protocol.SymbolKindNamespace
	case kfile.KwDefineCurve:
		return protocol.SymbolKindFunction
	case kfile.KwContact:
		return protocol.SymbolKindInterface
	case kfile.KwUnknown:
		return protocol.SymbolKindNull
	}
	return protocol.SymbolKindObject
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

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *protocol.TextDocumentSyncKind {
	kind := protocol.TextDocumentSyncKind(i)
	return &kind
}
