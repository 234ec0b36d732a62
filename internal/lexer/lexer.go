// Package lexer turns style sheet text into a flat stream of structural
// events: selector groups opening and closing, declarations and comments.
//
// The supported dialect is deliberately small. A selector group is a list of
// tokens separated by commas or whitespace, followed by a block of
// `name: value;` declarations. There are no at-rules, strings or escapes.
package lexer

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/tliron/commonlog"

	"csslex/token"
)

type Lexer struct {
	content []rune
	current int // cursor into content; everything before it is consumed

	events        []token.Event
	selectorStack [][]string
	diagnostics   []Diagnostic

	parsed bool
	err    error
	log    commonlog.Logger
}

type Option func(*Lexer)

// WithLogger replaces the "csslex.lexer" logger used to report diagnostics.
func WithLogger(log commonlog.Logger) Option {
	return func(l *Lexer) {
		l.log = log
	}
}

func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		content: []rune(input),
		log:     commonlog.GetLogger("csslex.lexer"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Parse lexes input with a fresh Lexer and returns its events and diagnostics.
func Parse(input string) ([]token.Event, []Diagnostic, error) {
	l := New(input)
	events, err := l.Parse()
	return events, l.Diagnostics(), err
}

// Parse consumes the whole input and returns the events in the order they
// were found. On a fatal error the events produced so far are returned along
// with the error. Only the first call scans; later calls return the same
// result.
func (l *Lexer) Parse() ([]token.Event, error) {
	if !l.parsed {
		l.parsed = true
		l.err = l.run()
		if l.err != nil {
			l.log.Error(l.err.Error())
		}
	}
	return l.events, l.err
}

// Diagnostics returns the recoverable problems seen so far.
func (l *Lexer) Diagnostics() []Diagnostic {
	return slices.Clone(l.diagnostics)
}

// Depth is the number of selector groups opened and not yet closed.
func (l *Lexer) Depth() int {
	return len(l.selectorStack)
}

func (l *Lexer) run() error {
	for !l.isAtEnd() {
		start := l.current

		l.trimWhitespace()

		// START SELECTOR
		// eg, `*`, `html`, `.class`, `#id`, `h1, h2`
		if isSelectorStart(l.peek()) {
			l.parseStartSelector()
		}

		l.trimWhitespace()

		// RULES
		// eg, `{ justify-content: center; }`
		if l.peek() == '{' {
			if err := l.parseRules(); err != nil {
				return err
			}
		}

		l.trimWhitespace()

		// END SELECTOR
		if l.peek() == '}' {
			l.parseEndSelector()
		}

		l.trimWhitespace()

		// COMMENT
		// eg, `/* comment */`
		if l.peek() == '/' && l.peekNext() == '*' {
			if err := l.parseComment(); err != nil {
				return err
			}
		}

		if l.current == start {
			return fmt.Errorf("%w %q", ErrUnexpectedCharacter, l.peek())
		}
	}
	return nil
}

// parseStartSelector reads a selector group up to, not including, the `{`
// that opens its block.
func (l *Lexer) parseStartSelector() {
	var selectors []string

	for !l.isAtEnd() && l.peek() != '{' {
		selector := l.takeWhile(func(r rune) bool {
			return !unicode.IsSpace(r) && r != ',' && r != '{'
		})

		l.trimWhitespace()

		if l.peek() == ',' {
			l.takeSlice(0, 1)
			l.trimWhitespace()
		}

		selectors = append(selectors, selector)
	}

	l.events = append(l.events, token.StartSelector(selectors))
	l.selectorStack = append(l.selectorStack, selectors)
}

// parseRules reads declarations from `{` up to the closing `}`, which is left
// for parseEndSelector.
func (l *Lexer) parseRules() error {
	l.takeSlice(0, 1) // `{`
	l.trimWhitespace()

	for {
		if l.isAtEnd() {
			return fmt.Errorf("%w: expecting `}`", ErrUnexpectedEndOfInput)
		}
		if l.peek() == '}' {
			return nil
		}

		name := l.takeWhile(isPropertyChar)
		l.trimWhitespace()

		if l.isAtEnd() {
			return fmt.Errorf("%w: expecting `:` after %q", ErrUnexpectedEndOfInput, name)
		}
		if l.peek() != ':' {
			l.report(Diagnostic{Kind: MissingColon, Message: "expecting `:`", Property: name})
			return nil
		}
		l.takeSlice(0, 1) // `:`
		l.trimWhitespace()

		value := l.takeWhile(func(r rune) bool { return r != ';' })
		if l.isAtEnd() {
			return fmt.Errorf("%w: expecting `;` after %q", ErrUnexpectedEndOfInput, name)
		}
		l.takeSlice(0, 1) // `;`

		l.events = append(l.events, token.Rule(name, strings.TrimRightFunc(value, unicode.IsSpace)))

		l.trimWhitespace()
	}
}

func (l *Lexer) parseEndSelector() {
	l.takeSlice(0, 1) // `}`

	n := len(l.selectorStack)
	if n == 0 {
		l.report(Diagnostic{
			Kind:    UnpairedCloseSelector,
			Message: "invalid closing selector, need a starting selector",
		})
		return
	}

	selectors := l.selectorStack[n-1]
	l.selectorStack = l.selectorStack[:n-1]
	l.events = append(l.events, token.EndSelector(selectors))
}

func (l *Lexer) parseComment() error {
	l.takeSlice(0, 2) // `/*`

	// The scan stops on the `/` of the first `*/`, so the text ends with
	// that terminator's `*`.
	var prev rune
	text := l.takeWhile(func(r rune) bool {
		if r == '/' && prev == '*' {
			return false
		}
		prev = r
		return true
	})
	if l.isAtEnd() {
		return fmt.Errorf("%w: expecting `*/`", ErrUnexpectedEndOfInput)
	}
	l.takeSlice(0, 1) // `/`

	l.events = append(l.events, token.Comment(strings.TrimSuffix(text, "*")))
	return nil
}

func (l *Lexer) report(d Diagnostic) {
	l.diagnostics = append(l.diagnostics, d)
	l.log.Warning(d.Message, "kind", d.Kind.String())
}

func (l *Lexer) trimWhitespace() {
	l.takeWhile(unicode.IsSpace)
}

func (l *Lexer) takeWhile(pred func(rune) bool) string {
	i := 0
	for l.current+i < len(l.content) && pred(l.content[l.current+i]) {
		i++
	}
	return l.takeSlice(0, i)
}

// takeSlice returns the runes in [lo, hi) relative to the cursor and drops
// everything before hi.
func (l *Lexer) takeSlice(lo, hi int) string {
	slice := string(l.content[l.current+lo : l.current+hi])
	l.current += hi
	return slice
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.content)
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.content[l.current]
}

func (l *Lexer) peekNext() rune {
	if l.current+1 >= len(l.content) {
		return 0
	}
	return l.content[l.current+1]
}

// Helper functions.

func isSelectorStart(r rune) bool {
	return r == '*' || r == '.' || r == '#' || unicode.IsLetter(r)
}

func isPropertyChar(r rune) bool {
	return unicode.IsLetter(r) || r == '-'
}
