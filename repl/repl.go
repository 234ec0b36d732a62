// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"csslex/internal/lexer"
)

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "
)

// Start lexes what is typed and prints the events. Input that ends inside a
// block or comment is held until the next line completes it; an empty line
// gives up and reports the error.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	var pending strings.Builder
	for {
		if pending.Len() == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONTINUATION)
		}

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		if pending.Len() == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		pending.WriteString(line)
		pending.WriteString("\n")

		events, diagnostics, err := lexer.Parse(pending.String())
		if errors.Is(err, lexer.ErrUnexpectedEndOfInput) && strings.TrimSpace(line) != "" {
			continue
		}
		pending.Reset()

		for _, e := range events {
			fmt.Fprintln(out, e)
		}
		for _, d := range diagnostics {
			fmt.Fprintln(out, color.YellowString("warning: %s", d.Message))
		}
		if err != nil {
			fmt.Fprintln(out, color.RedString("error: %s", err))
		}
	}
}
