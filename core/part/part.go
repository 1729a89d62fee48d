// core/part/part.go
package part

import (
	"errors"
	"fmt"
)

// Part selects which of the two counting policies a solver applies.
type Part int

const (
	First Part = iota + 1
	Second
)

// ErrMissing is returned by callers when no part selector was supplied at all.
var ErrMissing = errors.New("Missing Part")

// InvalidError reports a part selector other than "1" or "2".
type InvalidError struct {
	Value string
}

func (e *InvalidError) Error() string { return "Invalid Part: " + e.Value }

// Parse maps the literal CLI values "1" and "2" to a Part. An explicitly
// empty argument is invalid, not missing.
func Parse(arg string) (Part, error) {
	switch arg {
	case "1":
		return First, nil
	case "2":
		return Second, nil
	default:
		return 0, &InvalidError{Value: arg}
	}
}

func (p Part) String() string {
	switch p {
	case First:
		return "1"
	case Second:
		return "2"
	}
	return fmt.Sprintf("Part(%d)", int(p))
}
