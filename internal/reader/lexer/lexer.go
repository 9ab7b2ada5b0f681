// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the brak language.
//
// Like oh's lexer, the brak lexer is written as a set of state functions.
// Each state consumes one rune and returns the next state. There are three
// modes: normal, in-string (between double quotes) and in-array (between
// square brackets). Strings are passed through verbatim. Arrays keep the
// separators that would otherwise split tokens so that an array literal is
// emitted as a single token.
package lexer

import (
	"strings"

	"github.com/michaelmacinnis/brak/internal/reader/token"
	"github.com/michaelmacinnis/brak/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	array  bool            // Inside an array literal.
	buffer strings.Builder // Text of the current token.
	quoted bool            // Inside a string literal.
	saved  action          // State to resume when a string closes.
	state  action          // Current state.
	tokens []*token.T      // Tokens waiting to be consumed.

	source loc.T  // Location of the current rune.
	start  *loc.T // Location of the current token's first rune.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = scanNormal

	return l
}

// Flush emits any partially scanned token. It is called at end of input.
func (l *T) Flush() {
	l.split()
}

// Open returns true if the scanner is inside a string or array literal.
func (l *T) Open() bool {
	return l.array || l.quoted
}

// Scan passes a text buffer to the lexer for scanning.
func (l *T) Scan(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	for _, r := range text {
		l.state = l.state(l, r)

		if r == '\n' {
			l.source.Line++
			l.source.Char = 1
		} else {
			l.source.Char++
		}
	}
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	if len(l.tokens) == 0 {
		return nil
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

// Tokens drains and returns all scanned tokens.
func (l *T) Tokens() []*token.T {
	ts := l.tokens
	l.tokens = nil

	return ts
}

type action func(*T, rune) action

func (l *T) accept(r rune) {
	if l.buffer.Len() == 0 {
		l.start = l.here()
	}

	l.buffer.WriteRune(r)
}

func (l *T) emit(v string, source *loc.T) {
	// The backslash is an escape placeholder and never a token.
	if v == "" || v == `\` {
		return
	}

	l.tokens = append(l.tokens, token.New(v, source))
}

func (l *T) escape(escaped action) action {
	l.quoted = true
	l.saved = escaped

	return scanString
}

func (l *T) here() *loc.T {
	source := l.source
	return &source
}

func (l *T) resume() action {
	resumed := l.saved
	l.quoted = false
	l.saved = nil

	return resumed
}

func (l *T) split() {
	l.emit(l.buffer.String(), l.start)
	l.buffer.Reset()
	l.start = nil
}

// T states.

func scanArray(l *T, r rune) action {
	switch r {
	case ' ', '\t', ',', '\n':
		l.accept(r)
		return scanArray
	}

	return scanCommon(l, r, scanArray)
}

func scanCommon(l *T, r rune, current action) action {
	switch r {
	case '[':
		l.array = true
		l.split()
		l.accept(r)

		return scanArray
	case ']':
		l.array = false
		l.accept(r)

		return scanNormal
	case '(', ')', '{', '}', ';':
		l.split()
		l.emit(string(r), l.here())

		return current
	case '"':
		return l.escape(current)
	}

	l.accept(r)

	return current
}

func scanNormal(l *T, r rune) action {
	switch r {
	case ' ', '\t', ',', '\n':
		l.split()
		return scanNormal
	}

	return scanCommon(l, r, scanNormal)
}

func scanString(l *T, r rune) action {
	if r == '"' {
		return l.resume()
	}

	l.accept(r)

	return scanString
}
