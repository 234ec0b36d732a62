package grammar

import (
	"strings"

	"csslex/token"
)

// Events flattens the tree into the event stream the lexer produces for the
// same input.
func (s *Stylesheet) Events() []token.Event {
	var events []token.Event
	for _, item := range s.Items {
		switch {
		case item.Comment != nil:
			events = append(events, token.Comment(item.Comment.Body()))
		case item.Ruleset != nil:
			r := item.Ruleset
			events = append(events, token.StartSelector(r.Selectors))
			for _, d := range r.Declarations {
				events = append(events, token.Rule(d.Property, d.Value))
			}
			events = append(events, token.EndSelector(r.Selectors))
		}
	}
	return events
}

// Body is the comment text without its delimiters.
func (c *Comment) Body() string {
	return strings.TrimSuffix(strings.TrimPrefix(c.Text, "/*"), "*/")
}
