// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"strconv"

	"advent/pkg/api"
)

// ToAPIAnswer converts an Answer to the stable wire schema (v1).
func ToAPIAnswer(a Answer) api.AnswerV1 {
	part, _ := strconv.Atoi(a.Part.String())
	v := api.AnswerV1{
		Puzzle: a.Puzzle,
		Part:   part,
		Input:  a.Input,
		Answer: a.Value,
	}
	if len(a.Moves) > 0 {
		v.Moves = make([]api.MoveV1, 0, len(a.Moves))
		for _, m := range a.Moves {
			v.Moves = append(v.Moves, api.MoveV1{
				Index:       m.Index,
				Instruction: m.Instruction.String(),
				From:        m.From,
				To:          m.To,
				Count:       m.Count,
			})
		}
	}
	return v
}

// WriteJSON writes a single v1 answer object indented by two spaces.
func WriteJSON(w io.Writer, a Answer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIAnswer(a))
}
