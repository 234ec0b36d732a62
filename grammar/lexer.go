package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CSSLexer switches state on braces and colons so that declaration names and
// values are not mistaken for selectors.
var CSSLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `/\*(?s:.*?)\*/`, nil},
		{"BlockStart", `\{`, lexer.Push("Block")},
		{"Comma", `,`, nil},

		// Selectors start like the event lexer expects them to
		{"Selector", `[*.#\p{L}][^\s,{}]*`, nil},

		{"Whitespace", `\s+`, nil},
	},
	"Block": {
		{"BlockEnd", `\}`, lexer.Pop()},
		{"Property", `[\p{L}-]+`, nil},
		{"Colon", `:`, lexer.Push("Value")},
		{"Whitespace", `\s+`, nil},
	},
	"Value": {
		{"Semicolon", `;`, lexer.Pop()},

		// Trimmed on both ends, whitespace around it is elided
		{"Value", `[^;\s](?:[^;]*[^;\s])?`, nil},

		{"Whitespace", `\s+`, nil},
	},
})
