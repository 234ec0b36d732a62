package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csslex/token"
)

func writeCSS(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.css")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func runCLI(t *testing.T, path string, opts options) (string, string, error) {
	t.Helper()
	opts.noColor = true
	if opts.format == "" {
		opts.format = "text"
	}
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, path, opts)
	return stdout.String(), stderr.String(), err
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestPrintsEvents(t *testing.T) {
	path := writeCSS(t, ".box {\n  display: flex;\n  justify-content: center;\n}")

	stdout, stderr, err := runCLI(t, path, options{})
	require.NoError(t, err)

	assert.Equal(t, `StartSelector([".box"])
Rule("display", "flex")
Rule("justify-content", "center")
EndSelector([".box"])
`, stdout)
	assert.Contains(t, stderr, "Successfully processed")
}

func TestJSONFormatWithFilter(t *testing.T) {
	path := writeCSS(t, "/* c */ a { b: c; }")

	stdout, _, err := runCLI(t, path, options{format: "json", only: []string{"rule", "Comment"}})
	require.NoError(t, err)

	var events []token.Event
	require.NoError(t, json.Unmarshal([]byte(stdout), &events))
	assert.Equal(t, []token.Event{token.Comment(" c "), token.Rule("b", "c")}, events)
}

func TestUnknownFilter(t *testing.T) {
	path := writeCSS(t, "a {}")

	_, _, err := runCLI(t, path, options{only: []string{"media"}})
	assert.ErrorContains(t, err, `unknown event type "media"`)
}

func TestWarningsDoNotFail(t *testing.T) {
	path := writeCSS(t, "} a { b: c; }")

	stdout, stderr, err := runCLI(t, path, options{})
	require.NoError(t, err)
	assert.Contains(t, stdout, `Rule("b", "c")`)
	assert.Contains(t, stderr, "warning[W0001]")
}

func TestFatalErrorFails(t *testing.T) {
	path := writeCSS(t, "a { b: c;")

	stdout, stderr, err := runCLI(t, path, options{})
	require.Error(t, err)
	assert.Contains(t, stdout, `Rule("b", "c")`)
	assert.Contains(t, stderr, "error[E0001]")
}

func TestStrictReportsSyntaxError(t *testing.T) {
	path := writeCSS(t, "a {\n  color: red;\n")

	_, stderr, err := runCLI(t, path, options{strict: true})
	require.Error(t, err)
	assert.Contains(t, stderr, "error[E0100]")
}

func TestCSSFormat(t *testing.T) {
	path := writeCSS(t, "h1,h2{color:red;}")

	stdout, _, err := runCLI(t, path, options{format: "css"})
	require.NoError(t, err)
	assert.Equal(t, "h1, h2 {\n    color: red;\n}\n", stdout)
}

func TestMissingFile(t *testing.T) {
	_, _, err := runCLI(t, filepath.Join(t.TempDir(), "missing.css"), options{})
	assert.ErrorContains(t, err, "failed to read file")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500))
	assert.Equal(t, "1.50s", formatDuration(1500*1000*1000))
}
