// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs for --examples; apps print
// the quickstart and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Quickstart is the text shown by --examples.
type Quickstart struct {
	Summary  string   // one line describing what the tool counts
	Commands []string // sample invocations, without the tool name
}

// PrintExamples writes q for the tool called name.
func PrintExamples(out io.Writer, name string, q Quickstart) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n%s\n\nExamples:\n", name, q.Summary)
	for _, c := range q.Commands {
		_, _ = fmt.Fprintf(out, "  %s %s\n", name, c)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
