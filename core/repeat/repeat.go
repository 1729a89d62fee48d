// core/repeat/repeat.go
package repeat

import (
	"fmt"
	"math/bits"

	"advent-core/numeric"
	"advent-core/part"
)

// Range is an inclusive span of integers.
type Range struct {
	Start uint64
	End   uint64
}

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Start, r.End) }

// Solve sums, for each range independently, the repeated numbers inside it.
// Overlapping ranges count their shared numbers once per range.
func Solve(p part.Part, ranges []Range) uint64 {
	var total uint64
	for _, r := range ranges {
		total += SumIn(p, r)
	}
	return total
}

// SumIn returns the sum of the repeated numbers in r.
// part.First keeps blocks written exactly twice; part.Second keeps blocks
// written two or more times. A number reachable from several block sizes
// (1111 is 1×4 and 11×2) is added once.
//
// Sums wrap modulo 2^64 like the answer type.
func SumIn(p part.Part, r Range) uint64 {
	var total uint64
	for length := 2; length <= numeric.Digits(r.End); length++ {
		switch p {
		case part.First:
			if length%2 == 0 {
				total += blockSum(r, length/2, 2)
			}
		case part.Second:
			total += repeatedOfLength(r, length)
		default:
			panic(fmt.Sprintf("repeat: unknown part %v", p))
		}
	}
	return total
}

// repeatedOfLength sums the numbers in r with exactly length digits that
// repeat a shorter block. Any such number also repeats a block of
// length/q digits for some prime q dividing length, so the union over
// those primes is taken by inclusion-exclusion: repeating both the
// length/q1 and length/q2 blocks means repeating the length/(q1*q2) block.
func repeatedOfLength(r Range, length int) uint64 {
	primes := primeFactors(length)
	var total uint64
	for mask := 1; mask < 1<<len(primes); mask++ {
		copies := 1
		for i, q := range primes {
			if mask&(1<<i) != 0 {
				copies *= q
			}
		}
		s := blockSum(r, length/copies, copies)
		if bits.OnesCount(uint(mask))%2 == 1 {
			total += s
		} else {
			total -= s
		}
	}
	return total
}

// blockSum sums every number in r made of a width-digit block (no leading
// zero) written copies times. Those numbers are block*m for the repunit-like
// multiplier m, so the sum is m times an arithmetic series of blocks.
func blockSum(r Range, width, copies int) uint64 {
	m := multiplier(width, copies)
	lo := max(numeric.Pow10[uint64](width-1), ceilDiv(r.Start, m))
	hi := min(numeric.Pow10[uint64](width)-1, r.End/m)
	if lo > hi {
		return 0
	}
	a, n := lo+hi, hi-lo+1
	if a%2 == 0 {
		a /= 2
	} else {
		n /= 2
	}
	return m * a * n
}

// multiplier returns 1 followed by copies-1 groups of width-1 zeros and a 1,
// e.g. multiplier(2, 3) = 10101.
func multiplier(width, copies int) uint64 {
	shift := numeric.Pow10[uint64](width)
	m := uint64(1)
	for i := 1; i < copies; i++ {
		m = m*shift + 1
	}
	return m
}

func ceilDiv(a, b uint64) uint64 {
	q, r := numeric.DivMod(a, b)
	if r != 0 {
		q++
	}
	return q
}

// primeFactors returns the distinct primes dividing n in ascending order.
func primeFactors(n int) []int {
	var out []int
	for q := 2; q*q <= n; q++ {
		if n%q == 0 {
			out = append(out, q)
			for n%q == 0 {
				n /= q
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}
