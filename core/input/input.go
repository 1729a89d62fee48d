// core/input/input.go
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// ErrMissingPath is returned when no input file was given.
var ErrMissingPath = errors.New("Missing Input Path")

// ErrLineTooLong is wrapped in a *ParseError for lines over MaxLineBytes.
var ErrLineTooLong = errors.New("line too long")

// MaxLineBytes caps a single line read by ReadLines.
const MaxLineBytes = 1 << 20

// ReadError reports an input file that could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return "Unable to read input from: " + e.Path }
func (e *ReadError) Unwrap() error { return e.Err }

// ParseError wraps a domain parse failure with its 1-based line number.
// Line is 0 when the input is parsed as a whole.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Parse Error: %v (line %d)", e.Err, e.Line)
	}
	return fmt.Sprintf("Parse Error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadLines returns every line of path without trailing newlines.
// A final newline does not produce an extra empty line.
func ReadLines(path string) ([]string, error) {
	if path == "" {
		return nil, ErrMissingPath
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()

	var lines []string
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); errors.Is(err, bufio.ErrTooLong) {
		return nil, &ParseError{Line: len(lines) + 1, Err: ErrLineTooLong}
	} else if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return lines, nil
}

// ReadText returns the whole content of path.
func ReadText(path string) (string, error) {
	if path == "" {
		return "", ErrMissingPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(b), nil
}

// ParseLines applies parse to every line in order and stops at the first failure.
func ParseLines[T any](lines []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		v, err := parse(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
