package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/michaelmacinnis/brak/internal/engine/program"
	"github.com/peterh/liner"
)

type evaluator struct {
	texts []string
}

func (e *evaluator) Evaluate(_, text string) (program.Definition, error) {
	e.texts = append(e.texts, text)

	switch strings.TrimSpace(text) {
	case "fail ;":
		return nil, program.Errorf(program.SyntaxError, "failed to execute: fail")
	case "quiet ;":
		return program.NewValue(""), nil
	}

	return program.NewValue("ok"), nil
}

type script struct {
	lines   []interface{}
	prompts []string
}

func (s *script) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)

	if len(s.lines) == 0 {
		return "", io.EOF
	}

	l := s.lines[0]
	s.lines = s.lines[1:]

	if err, ok := l.(error); ok {
		return "", err
	}

	return l.(string), nil
}

func TestComplete(t *testing.T) {
	for text, expected := range map[string]bool{
		"x = 1 ;\n":              true,
		"while (x > 0) {\n":      false,
		"while (x > 0) {\n} ;\n": true,
		"print (1 +\n":           false,
		"print \"a ( b\" ;\n":    true,
		"x = [1,\n":              false,
		"print \"unterminated\n": false,
		"} ;\n":                  true,
		"{ x ; } { y ; } ;\n":    true,
	} {
		if actual := complete(text); actual != expected {
			t.Fatalf("%q: expected %v, got %v", text, expected, actual)
		}
	}
}

func TestRun(t *testing.T) {
	e := &evaluator{}
	p := &script{lines: []interface{}{
		"x = 1 ;",
		"while (x > 0) {",
		"x = (x - 1) ;",
		"} ;",
		"fail ;",
		"quiet ;",
		"half (",
		liner.ErrPromptAborted,
		"after ;",
	}}

	var stdout, stderr bytes.Buffer

	Run(e, p, "brak> ", &stdout, &stderr)

	expected := []string{
		"x = 1 ;\n",
		"while (x > 0) {\nx = (x - 1) ;\n} ;\n",
		"fail ;\n",
		"quiet ;\n",
		"after ;\n",
	}

	if strings.Join(e.texts, "|") != strings.Join(expected, "|") {
		t.Fatalf("Expected %q, got %q", expected, e.texts)
	}

	prompts := []string{
		"brak> ", "brak> ", Continuation, Continuation,
		"brak> ", "brak> ", "brak> ", Continuation, "brak> ", "brak> ",
	}

	if strings.Join(p.prompts, "|") != strings.Join(prompts, "|") {
		t.Fatalf("Expected prompts %q, got %q", prompts, p.prompts)
	}

	if stdout.String() != "ok\nok\nok\nexit\n" {
		t.Fatalf("Unexpected output %q", stdout.String())
	}

	if stderr.String() != "syntax error: failed to execute: fail\n" {
		t.Fatalf("Unexpected errors %q", stderr.String())
	}
}

func TestLines(t *testing.T) {
	var prompts bytes.Buffer

	l := NewLines(strings.NewReader("first\r\nsecond"), &prompts)

	for _, expected := range []string{"first", "second"} {
		line, err := l.Prompt("> ")
		if err != nil || line != expected {
			t.Fatalf("Expected %q, got %q (%v)", expected, line, err)
		}
	}

	if _, err := l.Prompt("> "); !errors.Is(err, io.EOF) {
		t.Fatalf("Expected EOF, got %v", err)
	}

	if prompts.String() != "> > > " {
		t.Fatalf("Unexpected prompts %q", prompts.String())
	}
}

func TestWords(t *testing.T) {
	names := []string{"lengthof", "print", "random", "read", "while"}

	head, cs, tail := words(names, "x = re y", 6)
	if head != "x = " || tail != " y" {
		t.Fatalf("Unexpected split %q %q", head, tail)
	}

	if strings.Join(cs, ",") != "read" {
		t.Fatalf("Expected [read], got %v", cs)
	}

	_, cs, _ = words(names, "r", 1)
	if strings.Join(cs, ",") != "random,read" {
		t.Fatalf("Expected [random read], got %v", cs)
	}
}
