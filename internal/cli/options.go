// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"advent/internal/clibase"
	"advent/internal/cliutil"
)

// Options holds all day1 flags and arguments.
type Options struct {
	clibase.Common

	// Trace adds every dial move to json/pretty output.
	Trace bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "dial rotation counter", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "\nParts:")
		_, _ = fmt.Fprintln(out, "  1                           Count rotations that stop exactly on 0")
		_, _ = fmt.Fprintln(out, "  2                           Count every pass over 0, full laps included")

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  One rotation per line: L<steps> or R<steps>, e.g. L68")

		_, _ = fmt.Fprintln(out, "\nDial:")
		_, _ = fmt.Fprintf(out, "      --trace                 Include each move in json/pretty output [%s]\n", def("trace"))
	})
	return fs
}

// PrintExamples prints a short quickstart for day1.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "day1", clibase.Quickstart{
		Summary: "Count how often the dial points at 0.",
		Commands: []string{
			"1 input.txt",
			"2 input.txt --output json",
			"2 input.txt --output pretty --trace",
		},
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	fs.BoolVar(&o.Trace, "trace", false, "include each dial move in json/pretty output [false]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(&c, posArgs); err != nil {
		return o, err
	}
	o.Common = c
	return o, nil
}
