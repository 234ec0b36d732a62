package grammar_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csslex/grammar"
	"csslex/internal/lexer"
)

func TestStylesExample(t *testing.T) {
	sheet, err := grammar.ParseFile(`../examples/styles.css`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	require.Len(t, sheet.Items, 9)

	assert.NotNil(t, sheet.Items[0].Comment)
	assert.Equal(t, " Page reset ", sheet.Items[0].Comment.Body())

	universal := sheet.Items[1].Ruleset
	require.NotNil(t, universal)
	assert.Equal(t, []string{"*"}, universal.Selectors)
	checkDeclarations(t, universal, map[string]string{
		"box-sizing": "border-box",
		"margin":     "0",
	})

	page := sheet.Items[2].Ruleset
	require.NotNil(t, page)
	assert.Equal(t, []string{"html", "body"}, page.Selectors)
	checkDeclarations(t, page, map[string]string{
		"font-family": "system-ui, sans-serif",
		"line-height": "1.5",
	})

	headings := sheet.Items[6].Ruleset
	require.NotNil(t, headings)
	assert.Equal(t, []string{"h1", "h2", "h3"}, headings.Selectors)

	assert.Equal(t, " a * b ** c ", sheet.Items[7].Comment.Body())
	assert.Equal(t, []string{"a:hover"}, sheet.Items[8].Ruleset.Selectors)
}

func checkDeclarations(t *testing.T, r *grammar.Ruleset, want map[string]string) {
	t.Helper()
	require.Len(t, r.Declarations, len(want))
	for _, d := range r.Declarations {
		assert.Equal(t, want[d.Property], d.Value, d.Property)
	}
}

// The strict grammar and the event lexer must agree on well-formed input.
func TestEventsMatchLexer(t *testing.T) {
	source, err := os.ReadFile("../examples/styles.css")
	require.NoError(t, err)

	inputs := []string{
		string(source),
		"h1, h2 { color: red; }",
		".box {\n  display: flex;\n  justify-content: center;\n}",
		"/**/",
		"/* hello */",
		"ul li { padding: 0 4px ; }",
		"a{color:blue;}b{}",
		"é { ü: ö; }",
	}

	for _, input := range inputs {
		sheet, err := grammar.ParseString("input.css", input)
		require.NoError(t, err, input)

		want, diagnostics, err := lexer.Parse(input)
		require.NoError(t, err, input)
		require.Empty(t, diagnostics, input)

		if diff := cmp.Diff(want, sheet.Events()); diff != "" {
			t.Errorf("events mismatch for %q (-lexer +grammar):\n%s", input, diff)
		}
	}
}

func TestCanonicalPrint(t *testing.T) {
	sheet, err := grammar.ParseString("input.css", "/* c */ h1,h2{color:red;margin : 0 auto ;} p{}")
	require.NoError(t, err)

	want := "/* c */\n" +
		"h1, h2 {\n" +
		"    color: red;\n" +
		"    margin: 0 auto;\n" +
		"}\n" +
		"\n" +
		"p {\n" +
		"}\n"
	assert.Equal(t, want, sheet.String())

	reparsed, err := grammar.ParseString("output.css", sheet.String())
	require.NoError(t, err)
	assert.Equal(t, sheet.Events(), reparsed.Events())
}

func TestStrictRejectsUnclosedBlock(t *testing.T) {
	_, err := grammar.ParseString("broken.css", "a {\n  color: red;\n")
	require.Error(t, err)

	line, column, message, ok := grammar.ErrorLocation(err)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, line, 1)
	assert.GreaterOrEqual(t, column, 1)
	assert.NotEmpty(t, message)
}

func TestErrorLocationIgnoresOtherErrors(t *testing.T) {
	_, err := grammar.ParseFile("../examples/missing.css")
	require.Error(t, err)

	_, _, _, ok := grammar.ErrorLocation(err)
	assert.False(t, ok)
}
