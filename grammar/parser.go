package grammar

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[Stylesheet](
	participle.Lexer(CSSLexer),
	participle.Elide("Whitespace"),
)

func ParseString(filename, source string) (*Stylesheet, error) {
	return parser.ParseString(filename, source)
}

func ParseFile(path string) (*Stylesheet, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// ErrorLocation extracts the 1-based line and column and the bare message of
// a participle error. ok is false for any other error.
func ErrorLocation(err error) (line, column int, message string, ok bool) {
	var pe participle.Error
	if !errors.As(err, &pe) {
		return 0, 0, "", false
	}
	pos := pe.Position()
	return pos.Line, pos.Column, pe.Message(), true
}
