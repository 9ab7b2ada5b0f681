// Released under an MIT license. See LICENSE.

// Brak runs programs written in a small bracket-delimited language.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/michaelmacinnis/brak/internal/engine"
	"github.com/michaelmacinnis/brak/internal/engine/builtins"
	"github.com/michaelmacinnis/brak/internal/system/clock"
	"github.com/michaelmacinnis/brak/internal/system/config"
	"github.com/michaelmacinnis/brak/internal/system/options"
	"github.com/michaelmacinnis/brak/internal/ui"
)

//nolint:gochecknoglobals
var terminal = options.Terminal

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	tty := terminal()

	opts, err := options.Parse(argv, tty)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	c := clock.Start()

	var p ui.Prompter

	switch {
	case opts.Stdin:
		p = scriptOnStdin{}
	case tty:
		t := ui.NewTerminal()
		defer t.Close()

		p = t
	default:
		p = ui.NewLines(stdin, stdout)
	}

	b := builtins.New(stdout, p, cfg.Prompt, random(cfg.Seed))
	e := engine.New(b)

	if opts.Interactive {
		if t, ok := p.(*ui.Terminal); ok {
			names := []string{}
			for k := range b.Definitions() {
				names = append(names, k)
			}

			t.Complete(names)

			if err := t.LoadHistory(cfg.History); err != nil {
				fmt.Fprintln(stderr, err)
			}

			defer func() {
				if err := t.SaveHistory(cfg.History); err != nil {
					fmt.Fprintln(stderr, err)
				}
			}()
		}

		ui.Run(e, p, cfg.ReplPrompt, stdout, stderr)

		return 0
	}

	name, text, err := source(opts, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	block := e.Parse(name, text)

	if opts.Dump {
		for _, s := range block.Statements() {
			fmt.Fprintln(stderr, s.String()+";")
		}
	}

	if err := e.Run(block); err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	if !opts.Quiet {
		fmt.Fprintln(stdout, c.Elapsed())
	}

	return 0
}

// When the script is read from stdin there is nothing left for input.
type scriptOnStdin struct{}

func (scriptOnStdin) Prompt(_ string) (string, error) {
	return "", errors.New("input is unavailable when the script is read from stdin")
}

func random(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed))
}

func source(opts *options.T, stdin io.Reader) (name, text string, err error) {
	switch {
	case opts.Command != "":
		return "command", opts.Command, nil
	case opts.Stdin:
		b, err := io.ReadAll(stdin)

		return "stdin", string(b), err
	}

	b, err := os.ReadFile(opts.Script)

	return opts.Script, string(b), err
}
