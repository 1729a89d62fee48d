// internal/dialapp/app.go
package dialapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"advent-core/dial"
	"advent-core/part"
	"advent/internal/appcore"
	"advent/internal/cli"
	"advent/internal/cmdutil"
	"advent/internal/ctxlog"
	"advent/internal/output"
	"advent/internal/version"
)

const name = "day1"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.HandleParseError(err, fs, cli.PrintExamples, stdout, stderr)
	}

	if opts.Version {
		outw := bufio.NewWriter(stdout)
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return appcore.Flush(outw, stderr)
	}

	logger := cmdutil.NewLogger(opts.LogLevel, opts.LogFormat, stderr).With("puzzle", name)
	ctx := ctxlog.WithLogger(parent, logger)

	if opts.Trace && opts.Output == output.FormatText {
		cmdutil.Warnf(stderr, opts.Quiet, "--trace has no effect with --output text")
	}
	trace := opts.Trace && opts.Output != output.FormatText

	coreOpts := appcore.Options{
		Puzzle:    name,
		Part:      opts.Part,
		InputPath: opts.InputPath,
		Output:    opts.Output,
	}
	return appcore.Run[dial.Instruction](ctx, stdout, stderr, coreOpts, dial.Load,
		func(p part.Part, ins []dial.Instruction) output.Answer {
			if !trace {
				return output.Answer{Value: dial.Solve(p, ins)}
			}
			moves := dial.Trace(p, ins)
			return output.Answer{Value: dial.Total(moves), Moves: moves}
		},
	)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
