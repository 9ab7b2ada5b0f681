// Released under an MIT license. See LICENSE.

// Package options parses brak's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// DefaultScript is run when brak is started on a terminal with no arguments.
const DefaultScript = "script"

// Version is reported by -v.
const Version = "brak 0.1.0"

//nolint:gochecknoglobals
var usage = `brak

Usage:
  brak [-q] [--dump] [--config=FILE] [SCRIPT]
  brak [-q] [--dump] [--config=FILE] -c COMMAND
  brak [--config=FILE] -i
  brak -h
  brak -v

Arguments:
  SCRIPT  Path to a brak script.

Options:
  -c, --command=COMMAND  Run the specified statements.
  -i, --interactive      Read statements interactively.
  -q, --quiet            Do not report the elapsed time.
  --dump                 Print the parsed program before running it.
  --config=FILE          Load settings from a YAML file.
  -h, --help             Display this help.
  -v, --version          Print brak version.

With no SCRIPT, COMMAND or -i, brak runs the file named "script" when its
stdin is a terminal and reads the script from stdin otherwise. The input
statement is unavailable when the script is read from stdin.
`

// T holds the parsed command line.
type T struct {
	Command     string
	Config      string
	Dump        bool
	Interactive bool
	Quiet       bool
	Script      string
	Stdin       bool
}

// Parse parses the command-line arguments argv (without the program name).
// Terminal reports whether stdin is a terminal.
func Parse(argv []string, terminal bool) (*T, error) {
	if argv == nil {
		// Docopt reads os.Args when passed nil.
		argv = []string{}
	}

	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.Command, _ = opts.String("--command")
	o.Config, _ = opts.String("--config")
	o.Dump, _ = opts.Bool("--dump")
	o.Interactive, _ = opts.Bool("--interactive")
	o.Quiet, _ = opts.Bool("--quiet")
	o.Script, _ = opts.String("SCRIPT")

	if o.Script == "" && o.Command == "" && !o.Interactive {
		if terminal {
			o.Script = DefaultScript
		} else {
			o.Stdin = true
		}
	}

	return o, nil
}

// Terminal returns true if stdin is a terminal.
func Terminal() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
