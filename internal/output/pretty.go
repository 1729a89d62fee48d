// internal/output/pretty.go
package output

import (
	"io"

	"advent/internal/pretty"
)

// WritePretty renders the answer card and, when moves are present, the move table.
func WritePretty(w io.Writer, a Answer) error {
	s := pretty.Card(pretty.Summary{
		Puzzle: a.Puzzle,
		Part:   a.Part.String(),
		Input:  a.Input,
		Answer: a.Value,
	})
	if len(a.Moves) > 0 {
		s += "\n" + pretty.MoveTable(a.Moves)
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
