package repeatcli

import (
	"flag"
	"fmt"
	"io"

	"advent/internal/clibase"
	"advent/internal/cliutil"
)

type Options struct {
	clibase.Common
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "repeated-digit range summer", func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "\nParts:")
		_, _ = fmt.Fprintln(out, "  1                           Sum numbers made of one block written twice (6464)")
		_, _ = fmt.Fprintln(out, "  2                           Sum numbers made of one block written 2+ times (646464)")

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  One line of comma-separated inclusive ranges, e.g. 11-22,95-115")
	})
	return fs
}

// PrintExamples prints a short quickstart for day2.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "day2", clibase.Quickstart{
		Summary:  "Sum repeated-digit numbers inside each range.",
		Commands: []string{"1 ranges.txt", "2 ranges.txt -o json"},
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

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
