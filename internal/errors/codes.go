package errors

// Diagnostic codes for the CSS lexer.
//
// Code ranges:
// E0001-E0099: Fatal lexer errors, the event stream is incomplete
// W0001-W0099: Recoverable lexer warnings, lexing continued
// E0100-E0199: Reference grammar (strict mode) errors

const (
	// E0001: Input ended inside a block, declaration or comment
	ErrorUnexpectedEndOfInput = "E0001"

	// E0002: Character that starts no known construct
	ErrorUnexpectedCharacter = "E0002"

	// E0100: Strict grammar rejected the file
	ErrorSyntax = "E0100"

	// W0001: `}` without an open selector group
	WarningUnpairedCloseSelector = "W0001"

	// W0002: Declaration name not followed by `:`
	WarningMissingColon = "W0002"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedEndOfInput:
		return "Input ended before the current construct was closed"
	case ErrorUnexpectedCharacter:
		return "Character does not start a selector, block or comment"
	case ErrorSyntax:
		return "Style sheet does not match the strict grammar"
	case WarningUnpairedCloseSelector:
		return "Closing brace without a matching selector"
	case WarningMissingColon:
		return "Declaration name must be followed by `:`"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Lexer"
	case code >= "E0100" && code < "E0200":
		return "Grammar"
	case IsWarning(code):
		return "Warning"
	default:
		return "Unknown"
	}
}
