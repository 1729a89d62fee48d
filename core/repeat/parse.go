// core/repeat/parse.go
package repeat

import (
	"errors"
	"strconv"
	"strings"

	"advent-core/input"
)

var ErrEmpty = errors.New("no ranges given")

// NumberError reports a range bound that is not an unsigned decimal.
type NumberError struct {
	Value string
}

func (e *NumberError) Error() string { return "number parsing failed on: " + e.Value }

// RangeError reports an entry that is not "a-b" with a <= b.
type RangeError struct {
	Entry string
}

func (e *RangeError) Error() string { return "malformed range: " + e.Entry }

// ParseRanges parses "a-b,c-d,..." with surrounding whitespace ignored.
func ParseRanges(text string) ([]Range, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmpty
	}
	var out []Range
	for _, entry := range strings.Split(text, ",") {
		entry = strings.TrimSpace(entry)
		lo, hi, ok := strings.Cut(entry, "-")
		if !ok {
			return nil, &RangeError{Entry: entry}
		}
		start, err := parseBound(lo)
		if err != nil {
			return nil, err
		}
		end, err := parseBound(hi)
		if err != nil {
			return nil, err
		}
		if start > end {
			return nil, &RangeError{Entry: entry}
		}
		out = append(out, Range{Start: start, End: end})
	}
	return out, nil
}

func parseBound(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &NumberError{Value: s}
	}
	return v, nil
}

// Load reads the single range line from path.
func Load(path string) ([]Range, error) {
	text, err := input.ReadText(path)
	if err != nil {
		return nil, err
	}
	ranges, err := ParseRanges(text)
	if err != nil {
		return nil, &input.ParseError{Err: err}
	}
	return ranges, nil
}
