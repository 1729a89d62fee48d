// core/input/input_test.go
package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func write(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestReadLines(t *testing.T) {
	fn := write(t, "L68\nR48\n\nL5\n")
	got, err := ReadLines(fn)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"L68", "R48", "", "L5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLinesNoTrailingNewline(t *testing.T) {
	got, err := ReadLines(write(t, "a\nb"))
	if err != nil || len(got) != 2 {
		t.Fatalf("got %v err %v", got, err)
	}
}

func TestMissingPath(t *testing.T) {
	if _, err := ReadLines(""); !errors.Is(err, ErrMissingPath) {
		t.Errorf("ReadLines: want ErrMissingPath, got %v", err)
	}
	if _, err := ReadText(""); !errors.Is(err, ErrMissingPath) {
		t.Errorf("ReadText: want ErrMissingPath, got %v", err)
	}
	if ErrMissingPath.Error() != "Missing Input Path" {
		t.Errorf("message = %q", ErrMissingPath.Error())
	}
}

func TestLongLines(t *testing.T) {
	long := "R" + strings.Repeat("1", 200*1024)
	got, err := ReadLines(write(t, "L1\n"+long+"\n"))
	if err != nil || len(got) != 2 || got[1] != long {
		t.Fatalf("200 KiB line: %d lines, err %v", len(got), err)
	}

	_, err = ReadLines(write(t, "L1\nR2\n"+strings.Repeat("9", MaxLineBytes+10)+"\n"))
	var pe *ParseError
	if !errors.As(err, &pe) || !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("want *ParseError wrapping ErrLineTooLong, got %v", err)
	}
	if pe.Line != 3 {
		t.Errorf("Line = %d, want 3", pe.Line)
	}
}

func TestUnreadable(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "nope.txt")
	_, err := ReadLines(fn)
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("want *ReadError, got %v", err)
	}
	if re.Path != fn {
		t.Errorf("Path = %q", re.Path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want wrapped fs.ErrNotExist, got %v", err)
	}
	if want := "Unable to read input from: " + fn; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	if _, err := ReadText(fn); !errors.As(err, &re) {
		t.Errorf("ReadText: want *ReadError, got %v", err)
	}
}

func TestReadText(t *testing.T) {
	got, err := ReadText(write(t, "1-2,3-4\n"))
	if err != nil || got != "1-2,3-4\n" {
		t.Fatalf("ReadText = %q, %v", got, err)
	}
}

func TestParseLines(t *testing.T) {
	got, err := ParseLines([]string{"1", "2", "3"}, strconv.Atoi)
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseLinesStopsAtFirstError(t *testing.T) {
	_, err := ParseLines([]string{"1", "x", "y"}, strconv.Atoi)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError, got %v", err)
	}
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2", pe.Line)
	}
	var ne *strconv.NumError
	if !errors.As(err, &ne) || ne.Num != "x" {
		t.Errorf("inner error not reachable: %v", err)
	}
}

func TestParseErrorMessage(t *testing.T) {
	inner := errors.New("boom")
	if got := (&ParseError{Line: 3, Err: inner}).Error(); got != "Parse Error: boom (line 3)" {
		t.Errorf("got %q", got)
	}
	if got := (&ParseError{Err: inner}).Error(); got != "Parse Error: boom" {
		t.Errorf("got %q", got)
	}
}
