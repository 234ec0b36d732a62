package lsp

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"csslex/internal/errors"
	"csslex/internal/lexer"
)

// ConvertDiagnostics transforms lexer warnings into LSP diagnostics. The lexer
// does not track positions, so warnings are anchored at the start of the
// document.
func ConvertDiagnostics(diagnostics []lexer.Diagnostic) []protocol.Diagnostic {
	var result []protocol.Diagnostic

	for _, d := range diagnostics {
		lexErr := errors.FromDiagnostic(d)
		result = append(result, protocol.Diagnostic{
			Range:    protocol.Range{},
			Severity: ptrSeverity(protocol.DiagnosticSeverityWarning),
			Code:     &protocol.IntegerOrString{Value: lexErr.Code},
			Source:   ptrString("csslex-lexer"),
			Message:  lexErr.Message,
		})
	}

	return result
}

// ConvertFatal transforms the error that stopped the lexer. Running out of
// input is reported at the end of the document.
func ConvertFatal(err error, text string) protocol.Diagnostic {
	lexErr := errors.FromFatal(err)

	var at protocol.Position
	if lexErr.Code == errors.ErrorUnexpectedEndOfInput {
		at = endOfDocument(text)
	}

	return protocol.Diagnostic{
		Range:    protocol.Range{Start: at, End: at},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: lexErr.Code},
		Source:   ptrString("csslex-lexer"),
		Message:  lexErr.Message,
	}
}

// convertDocument collects every diagnostic of a lexed document. The result
// is never nil so that publishing it clears stale diagnostics.
func convertDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	diagnostics = append(diagnostics, ConvertDiagnostics(doc.diagnostics)...)
	if doc.err != nil {
		diagnostics = append(diagnostics, ConvertFatal(doc.err, doc.text))
	}
	return diagnostics
}

func endOfDocument(text string) protocol.Position {
	lines := strings.Split(text, "\n")
	last := lines[len(lines)-1]
	return protocol.Position{
		Line:      uint32(len(lines) - 1),
		Character: uint32(len(utf16.Encode([]rune(last)))),
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
