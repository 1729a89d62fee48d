// internal/repeatapp/app.go
package repeatapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"advent-core/part"
	"advent-core/repeat"
	"advent/internal/appcore"
	"advent/internal/cmdutil"
	"advent/internal/ctxlog"
	"advent/internal/output"
	"advent/internal/repeatcli"
	"advent/internal/version"
)

const name = "day2"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := repeatcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := repeatcli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.HandleParseError(err, fs, repeatcli.PrintExamples, stdout, stderr)
	}

	if opts.Version {
		outw := bufio.NewWriter(stdout)
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return appcore.Flush(outw, stderr)
	}

	logger := cmdutil.NewLogger(opts.LogLevel, opts.LogFormat, stderr).With("puzzle", name)
	ctx := ctxlog.WithLogger(parent, logger)

	coreOpts := appcore.Options{
		Puzzle:    name,
		Part:      opts.Part,
		InputPath: opts.InputPath,
		Output:    opts.Output,
	}
	return appcore.Run[repeat.Range](ctx, stdout, stderr, coreOpts, repeat.Load,
		func(p part.Part, ranges []repeat.Range) output.Answer {
			return output.Answer{Value: repeat.Solve(p, ranges)}
		},
	)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
