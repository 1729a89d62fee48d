// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"advent-core/input"
	"advent-core/part"
	"advent/internal/output"
)

// Common holds CLI fields shared by day1 and day2.
type Common struct {
	// Positionals
	Part      part.Part
	InputPath string

	// Output
	Output string // text|json|pretty

	// Logging
	LogFormat string // text|json
	LogLevel  string // debug|info|warn|error

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	// Output
	fs.StringVar(&c.Output, "output", output.FormatText, "output: text | json | pretty [text]")
	fs.StringVar(&c.Output, "o", output.FormatText, "alias of --output")

	// Logging
	fs.StringVar(&c.LogFormat, "log-format", "text", "log format on stderr: text | json [text]")
	fs.StringVar(&c.LogLevel, "log-level", "warn", "log level: debug | info | warn | error [warn]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse reads the <part> <input> positionals, then runs shared validation.
// A missing part is reported before a missing path.
func AfterParse(c *Common, posArgs []string) error {
	if len(posArgs) == 0 {
		return part.ErrMissing
	}
	p, err := part.Parse(posArgs[0])
	if err != nil {
		return err
	}
	c.Part = p

	if len(posArgs) < 2 || posArgs[1] == "" {
		return input.ErrMissingPath
	}
	c.InputPath = posArgs[1]
	if len(posArgs) > 2 {
		return fmt.Errorf("unexpected argument %q", posArgs[2])
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	switch c.Output {
	case output.FormatText, output.FormatJSON, output.FormatPretty:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("--log-level must be one of debug, info, warn, error")
	}
	return nil
}
