// core/dial/parse.go
package dial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"advent-core/input"
)

var (
	ErrNoDirection  = errors.New("No Direction given")
	ErrStepsParsing = errors.New("Steps parsing failed")
)

// WrongDirectionError reports a leading character other than 'L' or 'R'.
type WrongDirectionError struct {
	Char rune
}

func (e *WrongDirectionError) Error() string {
	return fmt.Sprintf("Wrong Direction given: %c", e.Char)
}

// ParseInstruction parses a single "[LR][0-9]+" token. Callers trim whitespace.
func ParseInstruction(line string) (Instruction, error) {
	if line == "" {
		return Instruction{}, ErrNoDirection
	}
	r, size := utf8.DecodeRuneInString(line)
	var in Instruction
	switch r {
	case 'L':
		in.Direction = Left
	case 'R':
		in.Direction = Right
	default:
		return Instruction{}, &WrongDirectionError{Char: r}
	}
	steps, err := strconv.ParseUint(line[size:], 10, 32)
	if err != nil {
		return Instruction{}, ErrStepsParsing
	}
	in.Steps = uint32(steps)
	return in, nil
}

// Load reads one instruction per line from path. The whole file must parse.
func Load(path string) ([]Instruction, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return input.ParseLines(lines, func(line string) (Instruction, error) {
		return ParseInstruction(strings.TrimSpace(line))
	})
}
