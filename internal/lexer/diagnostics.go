package lexer

import (
	"errors"
	"fmt"
)

// Fatal conditions. Parse stops and returns an error wrapping one of these.
var (
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrUnexpectedCharacter  = errors.New("unexpected character")
)

// DiagnosticKind classifies a recoverable problem found while lexing.
type DiagnosticKind int

const (
	UnpairedCloseSelector DiagnosticKind = iota
	MissingColon
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnpairedCloseSelector:
		return "UnpairedCloseSelector"
	case MissingColon:
		return "MissingColon"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is a recoverable problem. The lexer records it and keeps going.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	// Property is the declaration name being parsed, set for MissingColon.
	Property string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}
