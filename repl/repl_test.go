package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestStartPrintsEvents(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("h1, h2 { color: red; }\n"), &out)

	assert.Equal(t, PROMPT+
		`StartSelector(["h1", "h2"])`+"\n"+
		`Rule("color", "red")`+"\n"+
		`EndSelector(["h1", "h2"])`+"\n"+
		PROMPT+"\n", out.String())
}

func TestStartContinuesOpenBlock(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader(".box {\n  display: flex;\n}\n"), &out)

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, CONTINUATION))
	assert.Contains(t, got, `Rule("display", "flex")`)
	assert.Contains(t, got, `EndSelector([".box"])`)
	assert.NotContains(t, got, "error:")
}

func TestStartGivesUpOnEmptyLine(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("a {\n\n"), &out)

	got := out.String()
	assert.Contains(t, got, `StartSelector(["a"])`)
	assert.Contains(t, got, "error: unexpected end of input")
}

func TestStartReportsWarnings(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("}\n"), &out)

	assert.Contains(t, out.String(), "warning: invalid closing selector")
}
