// core/dial/rotate.go
package dial

import (
	"fmt"

	"advent-core/numeric"
	"advent-core/part"
)

// Step applies one instruction at pos under the policy selected by p and
// returns the new position and the amount to add to the answer.
//
//	part.First  counts a move that ends exactly on 0.
//	part.Second counts every time the dial passes over or lands on 0,
//	            including whole laps inside a single move.
//
// A zero-step instruction never moves and never counts.
func Step(p part.Part, pos uint32, in Instruction) (next, count uint32) {
	pos %= Size
	if in.Steps == 0 {
		return pos, 0
	}
	switch p {
	case part.First:
		switch in.Direction {
		case Left:
			return stopLeft(pos, in.Steps)
		case Right:
			return stopRight(pos, in.Steps)
		}
	case part.Second:
		switch in.Direction {
		case Left:
			return lapsLeft(pos, in.Steps)
		case Right:
			return lapsRight(pos, in.Steps)
		}
	default:
		panic(fmt.Sprintf("dial: unknown part %v", p))
	}
	panic(fmt.Sprintf("dial: unknown direction %v", in.Direction))
}

func stopLeft(pos, steps uint32) (uint32, uint32) {
	next := (pos + Size - steps%Size) % Size
	return next, zeroHit(next)
}

func stopRight(pos, steps uint32) (uint32, uint32) {
	next := (pos + steps%Size) % Size
	return next, zeroHit(next)
}

func lapsLeft(pos, steps uint32) (uint32, uint32) {
	laps, rem := numeric.DivMod(steps, uint32(Size))
	if pos != 0 && rem >= pos {
		laps++
	}
	return (pos + Size - rem) % Size, laps
}

func lapsRight(pos, steps uint32) (uint32, uint32) {
	laps, rem := numeric.DivMod(steps, uint32(Size))
	next := (pos + rem) % Size
	if pos > next {
		laps++
	}
	return next, laps
}

func zeroHit(pos uint32) uint32 {
	if pos == 0 {
		return 1
	}
	return 0
}

// Solve runs every instruction in order from Start and returns the answer.
func Solve(p part.Part, instructions []Instruction) uint64 {
	pos := uint32(Start)
	var answer uint64
	for _, in := range instructions {
		var n uint32
		pos, n = Step(p, pos, in)
		answer += uint64(n)
	}
	return answer
}

// Trace performs the same run as Solve and records every move.
func Trace(p part.Part, instructions []Instruction) []Move {
	moves := make([]Move, 0, len(instructions))
	pos := uint32(Start)
	for i, in := range instructions {
		next, n := Step(p, pos, in)
		moves = append(moves, Move{Index: i, Instruction: in, From: pos, To: next, Count: n})
		pos = next
	}
	return moves
}

// Total sums the per-move counts of a trace.
func Total(moves []Move) uint64 {
	var sum uint64
	for _, m := range moves {
		sum += uint64(m.Count)
	}
	return sum
}
