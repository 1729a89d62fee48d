package appcore

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"advent-core/part"
	"advent/internal/clibase"
	"advent/internal/output"
)

func loadInts(vals ...int) LoadFunc[int] {
	return func(string) ([]int, error) { return vals, nil }
}

func sum(_ part.Part, items []int) output.Answer {
	var a output.Answer
	for _, v := range items {
		a.Value += uint64(v)
	}
	return a
}

func TestRunText(t *testing.T) {
	var out, errB bytes.Buffer
	o := Options{Puzzle: "t", Part: part.First, InputPath: "x", Output: output.FormatText}
	code := Run(context.Background(), &out, &errB, o, loadInts(1, 2, 3), sum)
	if code != ExitOK {
		t.Fatalf("exit %d, stderr %q", code, errB.String())
	}
	if out.String() != "6\n" {
		t.Errorf("stdout %q", out.String())
	}
}

func TestRunFillsAnswerFields(t *testing.T) {
	var out, errB bytes.Buffer
	o := Options{Puzzle: "day9", Part: part.Second, InputPath: "in.txt", Output: output.FormatJSON}
	if code := Run(context.Background(), &out, &errB, o, loadInts(4), sum); code != ExitOK {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{`"puzzle": "day9"`, `"part": 2`, `"input": "in.txt"`, `"answer": 4`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("json missing %s: %s", want, out.String())
		}
	}
}

func TestRunLoadError(t *testing.T) {
	var out, errB bytes.Buffer
	load := func(string) ([]int, error) { return nil, errors.New("Unable to read input from: x") }
	code := Run(context.Background(), &out, &errB, Options{Output: output.FormatText}, load, sum)
	if code != ExitUsage {
		t.Fatalf("exit %d, want %d", code, ExitUsage)
	}
	if errB.String() != "Unable to read input from: x\n" || out.Len() != 0 {
		t.Errorf("stdout %q stderr %q", out.String(), errB.String())
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errB bytes.Buffer
	code := Run(ctx, &out, &errB, Options{Output: output.FormatText}, loadInts(1), sum)
	if code != ExitCanceled {
		t.Fatalf("exit %d, want %d", code, ExitCanceled)
	}
	if out.Len() != 0 {
		t.Errorf("canceled run wrote %q", out.String())
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestRunWriteErrors(t *testing.T) {
	var errB bytes.Buffer
	o := Options{Output: output.FormatText}
	if code := Run(context.Background(), failWriter{io.ErrClosedPipe}, &errB, o, loadInts(1), sum); code != ExitOK {
		t.Errorf("broken pipe: exit %d, want 0", code)
	}
	if code := Run(context.Background(), failWriter{errors.New("disk full")}, &errB, o, loadInts(1), sum); code != ExitWrite {
		t.Errorf("write error: exit %d, want %d", code, ExitWrite)
	}
	if !strings.Contains(errB.String(), "disk full") {
		t.Errorf("stderr %q", errB.String())
	}
}

func TestHandleParseError(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.Usage = func() { _, _ = io.WriteString(fs.Output(), "USAGE\n") }

	var out, errB bytes.Buffer
	if code := HandleParseError(flag.ErrHelp, fs, nil, &out, &errB); code != ExitOK || out.String() != "USAGE\n" {
		t.Errorf("help: exit %d stdout %q", code, out.String())
	}

	out.Reset()
	examples := func(w io.Writer) { _, _ = io.WriteString(w, "EXAMPLES\n") }
	if code := HandleParseError(clibase.ErrPrintedAndExitOK, fs, examples, &out, &errB); code != ExitOK || out.String() != "EXAMPLES\n" {
		t.Errorf("examples: exit %d stdout %q", code, out.String())
	}

	out.Reset()
	errB.Reset()
	code := HandleParseError(part.ErrMissing, fs, examples, &out, &errB)
	if code != ExitUsage || out.Len() != 0 {
		t.Errorf("error: exit %d stdout %q", code, out.String())
	}
	if !strings.HasPrefix(errB.String(), "Missing Part\nUSAGE\n") {
		t.Errorf("stderr %q", errB.String())
	}
}
