// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"
	"slices"
	"strings"
)

type EventType string

const (
	START_SELECTOR = "START_SELECTOR"
	END_SELECTOR   = "END_SELECTOR"
	RULE           = "RULE"
	COMMENT        = "COMMENT"
)

// Event is one structural item of a style sheet, in the order it was found.
// Only the fields belonging to Type are set.
type Event struct {
	Type      EventType `json:"type"`
	Selectors []string  `json:"selectors,omitempty"`
	Name      string    `json:"name,omitempty"`
	Value     string    `json:"value,omitempty"`
	Text      string    `json:"text,omitempty"`
}

func StartSelector(selectors []string) Event {
	return Event{Type: START_SELECTOR, Selectors: slices.Clone(selectors)}
}

func EndSelector(selectors []string) Event {
	return Event{Type: END_SELECTOR, Selectors: slices.Clone(selectors)}
}

func Rule(name, value string) Event {
	return Event{Type: RULE, Name: name, Value: value}
}

func Comment(text string) Event {
	return Event{Type: COMMENT, Text: text}
}

var eventTypes = map[string]EventType{
	"StartSelector": START_SELECTOR,
	"EndSelector":   END_SELECTOR,
	"Rule":          RULE,
	"Comment":       COMMENT,
}

// LookupEventType resolves the display name of an event ("Rule") to its type.
func LookupEventType(name string) (EventType, bool) {
	t, ok := eventTypes[name]
	return t, ok
}

func (e Event) Equal(other Event) bool {
	return e.Type == other.Type &&
		slices.Equal(e.Selectors, other.Selectors) &&
		e.Name == other.Name &&
		e.Value == other.Value &&
		e.Text == other.Text
}

func (e Event) String() string {
	switch e.Type {
	case START_SELECTOR:
		return fmt.Sprintf("StartSelector(%s)", quoteAll(e.Selectors))
	case END_SELECTOR:
		return fmt.Sprintf("EndSelector(%s)", quoteAll(e.Selectors))
	case RULE:
		return fmt.Sprintf("Rule(%q, %q)", e.Name, e.Value)
	case COMMENT:
		return fmt.Sprintf("Comment(%q)", e.Text)
	default:
		return fmt.Sprintf("Event(%s)", e.Type)
	}
}

func quoteAll(selectors []string) string {
	quoted := make([]string, len(selectors))
	for i, s := range selectors {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
