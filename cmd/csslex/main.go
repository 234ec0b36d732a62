// SPDX-License-Identifier: Apache-2.0
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"csslex/grammar"
	"csslex/internal/errors"
	"csslex/internal/lexer"
	"csslex/token"
)

type options struct {
	format  string
	only    []string
	strict  bool
	noColor bool
	verbose int
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "csslex <file.css>",
		Short:         "Print the selector, declaration and comment events of a style sheet",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json or css")
	rootCmd.Flags().StringSliceVar(&opts.only, "only", nil, "Print only these events (StartSelector, EndSelector, Rule, Comment)")
	rootCmd.Flags().BoolVar(&opts.strict, "strict", false, "Also validate the file against the strict grammar")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().CountVarP(&opts.verbose, "verbose", "v", "Increase log verbosity")

	if err := rootCmd.Execute(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func run(stdout, stderr io.Writer, path string, opts options) error {
	if opts.noColor {
		color.NoColor = true
	}
	// Diagnostics already go through the reporter, logging is opt-in.
	verbosity := -4
	if opts.verbose > 0 {
		verbosity = opts.verbose - 2
	}
	commonlog.Configure(verbosity, nil)

	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	filter, err := eventFilter(opts.only)
	if err != nil {
		return err
	}

	reporter := errors.NewErrorReporter(path, string(source))

	l := lexer.New(string(source))
	events, lexErr := l.Parse()

	for _, d := range l.Diagnostics() {
		fmt.Fprint(stderr, reporter.FormatError(errors.FromDiagnostic(d)))
	}
	if lexErr != nil {
		fmt.Fprint(stderr, reporter.FormatError(errors.FromFatal(lexErr)))
	}

	var sheet *grammar.Stylesheet
	if opts.strict || opts.format == "css" {
		sheet, err = grammar.ParseString(path, string(source))
		if err != nil {
			fmt.Fprint(stderr, reporter.FormatError(syntaxError(err)))
		}
	}

	hasErrors := lexErr != nil || (sheet == nil && (opts.strict || opts.format == "css"))

	switch opts.format {
	case "text":
		for _, e := range events {
			if filter(e) {
				fmt.Fprintln(stdout, e)
			}
		}
	case "json":
		selected := []token.Event{}
		for _, e := range events {
			if filter(e) {
				selected = append(selected, e)
			}
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(selected); err != nil {
			return err
		}
	case "css":
		if sheet != nil {
			fmt.Fprint(stdout, sheet.String())
		}
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	duration := formatDuration(time.Since(startTime))
	if hasErrors {
		return fmt.Errorf("lexing %s failed after %s", path, duration)
	}
	fmt.Fprintln(stderr, color.GreenString("Successfully processed %s in %s", path, duration))
	return nil
}

// eventFilter accepts the display names of event types, case-insensitively.
func eventFilter(only []string) (func(token.Event) bool, error) {
	if len(only) == 0 {
		return func(token.Event) bool { return true }, nil
	}

	allowed := make(map[token.EventType]bool)
	for _, name := range only {
		typ, ok := lookupEventType(name)
		if !ok {
			return nil, fmt.Errorf("unknown event type %q", name)
		}
		allowed[typ] = true
	}
	return func(e token.Event) bool { return allowed[e.Type] }, nil
}

func lookupEventType(name string) (token.EventType, bool) {
	for _, candidate := range []string{"StartSelector", "EndSelector", "Rule", "Comment"} {
		if strings.EqualFold(candidate, strings.TrimSpace(name)) {
			return token.LookupEventType(candidate)
		}
	}
	return "", false
}

func syntaxError(err error) errors.LexError {
	line, column, message, ok := grammar.ErrorLocation(err)
	if !ok {
		return errors.LexError{Level: errors.Error, Code: errors.ErrorSyntax, Message: err.Error()}
	}
	return errors.SyntaxError(message, line, column)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
