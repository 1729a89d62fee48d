// core/dial/dial.go
package dial

import (
	"fmt"
	"strconv"
)

const (
	Size  = 100 // positions on the dial, 0..Size-1
	Start = 50  // position before the first instruction
)

type Direction int

const (
	Left Direction = iota + 1
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Instruction is one input line: rotate Steps clicks toward Direction.
type Instruction struct {
	Direction Direction
	Steps     uint32
}

func (in Instruction) String() string {
	return in.Direction.String() + strconv.FormatUint(uint64(in.Steps), 10)
}

// Move records a single applied instruction.
type Move struct {
	Index       int // 0-based position in the instruction list
	Instruction Instruction
	From        uint32
	To          uint32
	Count       uint32 // amount added to the answer by this move
}
