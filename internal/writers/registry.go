// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"advent/internal/output"
)

// AnswerWriters maps an output format to its writer. Register in init().
var AnswerWriters = map[string]func(io.Writer, output.Answer) error{}

// Register adds or replaces the writer for format (last wins).
func Register(format string, fn func(io.Writer, output.Answer) error) { AnswerWriters[format] = fn }

// Write dispatches a to the writer registered for format.
func Write(format string, w io.Writer, a output.Answer) error {
	fn, ok := AnswerWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, a)
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(AnswerWriters))
	for f := range AnswerWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
