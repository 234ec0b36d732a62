package lsp

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"csslex/internal/lexer"
	"csslex/token"
)

// Name identifier for the language server
const Name = "csslex"

// Version is reported to clients in the initialize response
var Version = "0.1.0"

// document is the last lexed state of one open text document
type document struct {
	text        string
	events      []token.Event
	diagnostics []lexer.Diagnostic
	err         error
}

// CSSHandler implements the LSP server handlers for the CSS dialect
type CSSHandler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
	log       commonlog.Logger
}

// NewCSSHandler creates and returns a new CSSHandler instance
func NewCSSHandler() *CSSHandler {
	return &CSSHandler{
		documents: make(map[protocol.DocumentUri]*document),
		log:       commonlog.GetLogger("csslex.lsp"),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *CSSHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &Version,
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *CSSHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("csslex LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *CSSHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("csslex LSP Shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *CSSHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen lexes the opened document and publishes its diagnostics
func (h *CSSHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Infof("Opened file: %s", params.TextDocument.URI)

	doc := h.update(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, convertDocument(doc))
	return nil
}

// TextDocumentDidChange relexes the document. Only full synchronization is
// advertised, so the last whole-text change wins.
func (h *CSSHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.log.Debugf("Changed file: %s", params.TextDocument.URI)

	text, ok := h.text(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text, ok = c.Text, true
			}
		}
	}
	if !ok {
		return nil
	}

	doc := h.update(params.TextDocument.URI, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, convertDocument(doc))
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *CSSHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Infof("Closed file: %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers property names: the common ones plus every
// property already declared in an open document. When the cursor follows a
// partial name, only fuzzy matches are offered, closest first.
func (h *CSSHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	seen := make(map[string]string)
	for _, name := range commonProperties {
		seen[name] = "CSS property"
	}

	h.mu.RLock()
	for _, doc := range h.documents {
		for _, e := range doc.events {
			if e.Type == token.RULE && e.Name != "" {
				if _, ok := seen[e.Name]; !ok {
					seen[e.Name] = "declared in an open document"
				}
			}
		}
	}
	h.mu.RUnlock()

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	if prefix := h.wordBefore(params.TextDocument.URI, params.Position); prefix != "" {
		ranks := fuzzy.RankFindFold(prefix, names)
		sort.Stable(ranks)
		names = names[:0]
		for _, rank := range ranks {
			names = append(names, rank.Target)
		}
	}

	kind := protocol.CompletionItemKindProperty
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		detail := seen[name]
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: &detail,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// Events returns the events of an open document
func (h *CSSHandler) Events(uri protocol.DocumentUri) ([]token.Event, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.documents[uri]
	if !ok {
		return nil, false
	}
	return doc.events, true
}

func (h *CSSHandler) update(uri protocol.DocumentUri, text string) *document {
	l := lexer.New(text)
	events, err := l.Parse()

	doc := &document{
		text:        text,
		events:      events,
		diagnostics: l.Diagnostics(),
		err:         err,
	}

	h.mu.Lock()
	h.documents[uri] = doc
	h.mu.Unlock()

	return doc
}

func (h *CSSHandler) text(uri protocol.DocumentUri) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.documents[uri]
	if !ok {
		return "", false
	}
	return doc.text, true
}

// wordBefore returns the property-name characters left of the cursor. The
// cursor column is counted in runes, not UTF-16 units.
func (h *CSSHandler) wordBefore(uri protocol.DocumentUri, pos protocol.Position) string {
	text, ok := h.text(uri)
	if !ok {
		return ""
	}

	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	line := []rune(lines[pos.Line])
	end := min(int(pos.Character), len(line))

	start := end
	for start > 0 && (unicode.IsLetter(line[start-1]) || line[start-1] == '-') {
		start--
	}
	return string(line[start:end])
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

var commonProperties = []string{
	"background",
	"background-color",
	"border",
	"border-radius",
	"box-sizing",
	"color",
	"display",
	"flex",
	"font-family",
	"font-size",
	"font-weight",
	"gap",
	"height",
	"justify-content",
	"align-items",
	"line-height",
	"margin",
	"padding",
	"position",
	"text-align",
	"text-decoration",
	"width",
}
