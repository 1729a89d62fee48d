// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"advent-core/part"
	"advent/internal/clibase"
	"advent/internal/cmdutil"
	"advent/internal/ctxlog"
	"advent/internal/output"
	"advent/internal/writers"
)

// Exit codes shared by every solver.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad arguments, unreadable or malformed input
	ExitWrite    = 3
	ExitCanceled = 130
)

type Options struct {
	Puzzle    string
	Part      part.Part
	InputPath string
	Output    string
}

// LoadFunc reads and parses the whole input file.
type LoadFunc[T any] func(path string) ([]T, error)

// SolveFunc computes the answer for already-parsed input. It fills Value and,
// optionally, Moves; Run sets the remaining Answer fields.
type SolveFunc[T any] func(p part.Part, items []T) output.Answer

// Run loads the input, solves it, and writes the answer to stdout.
// Errors go to stderr; the return value is the process exit code.
func Run[T any](
	ctx context.Context,
	stdout, stderr io.Writer,
	o Options,
	load LoadFunc[T],
	solve SolveFunc[T],
) int {
	log := ctxlog.FromContext(ctx)

	items, err := cmdutil.Timed(ctx, "load", func() ([]T, error) { return load(o.InputPath) })
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	log.DebugContext(ctx, "input parsed", "path", o.InputPath, "items", len(items))
	if ctx.Err() != nil {
		return ExitCanceled
	}

	ans, _ := cmdutil.Timed(ctx, "solve", func() (output.Answer, error) { return solve(o.Part, items), nil })
	ans.Puzzle, ans.Part, ans.Input = o.Puzzle, o.Part, o.InputPath
	log.InfoContext(ctx, "solved", "part", o.Part.String(), "answer", ans.Value)
	if ctx.Err() != nil {
		return ExitCanceled
	}

	outw := bufio.NewWriter(stdout)
	if err := writers.Write(o.Output, outw, ans); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return Flush(outw, stderr)
}

// Flush flushes w, treating a broken pipe as success.
func Flush(w *bufio.Writer, stderr io.Writer) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return ExitOK
}

// HandleParseError maps a ParseArgs error to output and an exit code.
// Help and examples go to stdout and exit 0; anything else is reported on
// stderr followed by usage, and exits 2.
func HandleParseError(err error, fs *flag.FlagSet, examples func(io.Writer), stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	switch {
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return Flush(outw, stderr)
	case examples != nil && errors.Is(err, clibase.ErrPrintedAndExitOK):
		examples(outw)
		return Flush(outw, stderr)
	}
	_, _ = fmt.Fprintln(stderr, err)
	fs.SetOutput(stderr)
	fs.Usage()
	return ExitUsage
}
