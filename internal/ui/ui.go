// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the brak language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/brak/internal/engine/program"
	"github.com/michaelmacinnis/brak/internal/reader/lexer"
	"github.com/michaelmacinnis/brak/internal/reader/token"
	"github.com/michaelmacinnis/brak/internal/system/history"
	"github.com/peterh/liner"
)

// Continuation is the prompt shown while a statement is incomplete.
const Continuation = "... "

// Evaluator is the interface for things that want to process statements.
type Evaluator interface {
	Evaluate(name, text string) (program.Definition, error)
}

// Prompter reads a line of input after displaying a prompt.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Terminal is a Prompter with line editing and history.
type Terminal struct {
	cli *liner.State
}

// NewTerminal takes control of the terminal. Call Close to restore it.
func NewTerminal() *Terminal {
	cli := liner.NewLiner()

	cli.SetCtrlCAborts(true)

	return &Terminal{cli: cli}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	return t.cli.Close()
}

// Complete offers names as completions for the word under the cursor.
func (t *Terminal) Complete(names []string) {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	t.cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return words(sorted, line, pos)
	})
}

// LoadHistory reads previously saved history from path.
func (t *Terminal) LoadHistory(path string) error {
	return history.Load(path, t.cli.ReadHistory)
}

// Prompt reads a line. Non-blank lines are added to the history.
func (t *Terminal) Prompt(prompt string) (string, error) {
	line, err := t.cli.Prompt(prompt)
	if err == nil && strings.TrimSpace(line) != "" {
		t.cli.AppendHistory(line)
	}

	return line, err
}

// SaveHistory writes the history to path.
func (t *Terminal) SaveHistory(path string) error {
	return history.Save(path, t.cli.WriteHistory)
}

// Lines is a Prompter that reads lines from an io.Reader.
type Lines struct {
	r *bufio.Reader
	w io.Writer
}

// NewLines creates a Prompter that writes prompts to w and reads lines from r.
func NewLines(r io.Reader, w io.Writer) *Lines {
	return &Lines{r: bufio.NewReader(r), w: w}
}

// Prompt writes prompt and reads a line, without its line ending.
func (l *Lines) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(l.w, prompt); err != nil {
		return "", err
	}

	line, err := l.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// Run reads statements from p and sends them to e until input ends.
// Values are echoed to stdout. Errors are reported to stderr and do not
// end the session.
func Run(e Evaluator, p Prompter, prompt string, stdout, stderr io.Writer) {
	text := ""

	for {
		current := prompt
		if text != "" {
			current = Continuation
		}

		line, err := p.Prompt(current)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			text = ""

			continue
		default:
			fmt.Fprintln(stdout, "exit")

			return
		}

		text += line + "\n"
		if !complete(text) {
			continue
		}

		d, err := e.Evaluate("stdin", text)
		text = ""

		if err != nil {
			fmt.Fprintln(stderr, err)

			continue
		}

		if v, ok := d.(*program.Value); ok && v.String() != "" {
			fmt.Fprintln(stdout, v)
		}
	}
}

// A statement is incomplete while a literal or delimiter is still open.
func complete(text string) bool {
	l := lexer.New("")

	l.Scan(text)

	if l.Open() {
		return false
	}

	l.Flush()

	depth := 0

	for _, t := range l.Tokens() {
		switch {
		case t.Is(token.StatementOpen, token.BlockOpen):
			depth++
		case t.Is(token.StatementClose, token.BlockClose):
			depth--
		}
	}

	return depth <= 0
}

func words(names []string, line string, pos int) (head string, cs []string, tail string) {
	head = line[:pos]
	tail = line[pos:]

	start := strings.LastIndexFunc(head, unicode.IsSpace) + 1
	prefix := head[start:]

	head = head[:start]

	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			cs = append(cs, n)
		}
	}

	return head, cs, tail
}
