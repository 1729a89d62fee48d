// pkg/api/answer_v1.go
package api

// AnswerV1 is the stable JSON schema for a solver result.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AnswerV1 struct {
	Puzzle string   `json:"puzzle"` // "day1" | "day2"
	Part   int      `json:"part"`
	Input  string   `json:"input"`
	Answer uint64   `json:"answer"`
	Moves  []MoveV1 `json:"moves,omitempty"`
}

// MoveV1 is one dial rotation in a day1 trace.
type MoveV1 struct {
	Index       int    `json:"index"`
	Instruction string `json:"instruction"` // e.g. "L68"
	From        uint32 `json:"from"`
	To          uint32 `json:"to"`
	Count       uint32 `json:"count"`
}
