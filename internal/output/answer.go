// internal/output/answer.go
package output

import (
	"advent-core/dial"
	"advent-core/part"
)

// Output formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Answer is one solver result ready to be written.
type Answer struct {
	Puzzle string // "day1" | "day2"
	Part   part.Part
	Input  string
	Value  uint64
	Moves  []dial.Move // day1 with --trace only
}
