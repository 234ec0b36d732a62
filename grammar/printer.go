package grammar

import (
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

// String prints the style sheet in canonical layout: one declaration per
// line, selector groups joined by ", ", a blank line between consecutive
// rule sets.
func (s *Stylesheet) String() string {
	var b strings.Builder
	for i, item := range s.Items {
		if i > 0 && item.Ruleset != nil && s.Items[i-1].Ruleset != nil {
			b.WriteString("\n")
		}
		b.WriteString(item.String())
	}
	return b.String()
}

func (i *Item) String() string {
	if i.Comment != nil {
		return i.Comment.String() + "\n"
	}
	if i.Ruleset != nil {
		return i.Ruleset.StringWithIndent(0)
	}
	return ""
}

func (c *Comment) String() string {
	return c.Text
}

func (r *Ruleset) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(indent(level))
	b.WriteString(strings.Join(r.Selectors, ", "))
	b.WriteString(" {\n")
	for _, d := range r.Declarations {
		b.WriteString(indent(level + 1))
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	b.WriteString(indent(level))
	b.WriteString("}\n")
	return b.String()
}

func (d *Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}
