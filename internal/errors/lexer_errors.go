package errors

import (
	stderrors "errors"
	"fmt"

	"csslex/internal/lexer"
)

// FromDiagnostic converts a recoverable lexer diagnostic into a warning
func FromDiagnostic(d lexer.Diagnostic) LexError {
	switch d.Kind {
	case lexer.UnpairedCloseSelector:
		return UnpairedCloseSelector()
	case lexer.MissingColon:
		return MissingColon(d.Property)
	default:
		return LexError{
			Level:   Warning,
			Message: d.Message,
		}
	}
}

// FromFatal converts the error returned by Lexer.Parse
func FromFatal(err error) LexError {
	switch {
	case stderrors.Is(err, lexer.ErrUnexpectedEndOfInput):
		return LexError{
			Level:    Error,
			Code:     ErrorUnexpectedEndOfInput,
			Message:  err.Error(),
			Notes:    []string{"events after this point were not produced"},
			HelpText: "close every `{` with `}`, every declaration with `;` and every comment with `*/`",
		}
	case stderrors.Is(err, lexer.ErrUnexpectedCharacter):
		return LexError{
			Level:    Error,
			Code:     ErrorUnexpectedCharacter,
			Message:  err.Error(),
			HelpText: "selectors start with `*`, `.`, `#` or a letter",
		}
	default:
		return LexError{
			Level:   Error,
			Message: err.Error(),
		}
	}
}

func UnpairedCloseSelector() LexError {
	return LexError{
		Level:   Warning,
		Code:    WarningUnpairedCloseSelector,
		Message: "invalid closing selector, need a starting selector",
		Suggestions: []Suggestion{
			{Message: "remove the extra `}`"},
		},
	}
}

func MissingColon(property string) LexError {
	err := LexError{
		Level:   Warning,
		Code:    WarningMissingColon,
		Message: "expecting `:`",
		Notes:   []string{"the rest of the block is not read as declarations"},
	}
	if property != "" {
		err.Message = fmt.Sprintf("expecting `:` after `%s`", property)
		err.Suggestions = []Suggestion{{
			Message:     "write the declaration as `name: value;`",
			Replacement: property + ": <value>;",
		}}
	}
	return err
}

// SyntaxError reports a strict grammar failure at a known position
func SyntaxError(message string, line, column int) LexError {
	return LexError{
		Level:    Error,
		Code:     ErrorSyntax,
		Message:  message,
		Position: &Position{Line: line, Column: column},
	}
}
