package program_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/brak/internal/engine/program"
	"github.com/michaelmacinnis/brak/internal/reader"
)

type harness struct {
	arena *program.Arena
	fired []string
	t     *testing.T
}

func setup(t *testing.T) *harness {
	h := &harness{arena: program.NewArena(), t: t}

	record := func(name string) program.Callback {
		return func(_ *program.Statement, _ program.Scope) program.Definition {
			h.fired = append(h.fired, name)
			return program.NewValue(name)
		}
	}

	h.arena.Root().Merge(map[string]program.Definition{
		"infix":  program.InfixBinary(record("infix")),
		"prefix": program.PrefixVariadic(record("prefix")),
		"unary":  program.PrefixUnary(record("unary")),
		"triple": &program.Construct{Callback: record("triple"), Shape: program.Arity(3)},
		"tick": program.PrefixUnary(func(_ *program.Statement, _ program.Scope) program.Definition {
			h.fired = append(h.fired, "tick")
			return program.NewValue("1")
		}),
		"twice": program.PrefixUnary(func(s *program.Statement, _ program.Scope) program.Definition {
			s.Evaluate(1)
			return s.Evaluate(1)
		}),
	})

	return h
}

func (h *harness) run(text string) (err error) {
	defer program.Recover(&err)

	h.fired = nil

	reader.Read(h.arena.Root(), "test", text).Execute()

	return nil
}

func (h *harness) expect(text string, fired ...string) {
	if err := h.run(text); err != nil {
		h.t.Fatalf("%s: unexpected error: %v", text, err)
	}

	if strings.Join(h.fired, " ") != strings.Join(fired, " ") {
		h.t.Fatalf("%s: expected %v to fire, got %v", text, fired, h.fired)
	}
}

func TestFirstMatchWins(t *testing.T) {
	h := setup(t)

	h.expect("prefix infix x ;", "prefix")
	h.expect("x infix prefix ;", "infix")
	h.expect("unary infix ;", "unary")
	h.expect("triple infix x ;", "triple")
}

func TestShapes(t *testing.T) {
	h := setup(t)

	h.expect("prefix ;", "prefix")
	h.expect("prefix a b c d ;", "prefix")

	for _, text := range []string{
		"x unary ;",
		"x y prefix ;",
		"triple a b c ;",
		"a b infix ;",
	} {
		if err := h.run(text); !errors.Is(err, program.ErrSyntax) {
			t.Fatalf("%s: expected a syntax error, got %v", text, err)
		}
	}
}

func TestNestedElementsAreNotDispatched(t *testing.T) {
	h := setup(t)

	h.expect("(x) infix y ;", "infix")
	h.expect("{ z ; } infix y ;", "infix")
}

func TestLazyReevaluation(t *testing.T) {
	h := setup(t)

	h.expect("twice (tick x) ;", "tick", "tick")
	h.expect("twice tick ;")
}

func TestEmptyStatement(t *testing.T) {
	h := setup(t)

	h.expect(";;;")

	if d := program.NewStatement(h.arena.Root(), nil).Execute(); d != nil {
		t.Fatalf("Expected no result, got %v", d)
	}
}

func TestValueStatement(t *testing.T) {
	h := setup(t)

	b := reader.Read(h.arena.Root(), "test", "hello ;")

	d := b.Statements()[0].Execute()
	if v, ok := d.(*program.Value); !ok || v.String() != "hello" {
		t.Fatalf("Expected the value hello, got %v", d)
	}
}

func TestNoMatch(t *testing.T) {
	h := setup(t)

	err := h.run("a ;\n  b c ;")
	if !errors.Is(err, program.ErrSyntax) {
		t.Fatalf("Expected a syntax error, got %v", err)
	}

	expected := "test:2:3: syntax error: failed to execute: b c"
	if err.Error() != expected {
		t.Fatalf("Expected %q, got %q", expected, err.Error())
	}
}

func TestNestedErrorLocation(t *testing.T) {
	h := setup(t)

	err := h.run("twice\n(a b) ;")

	var e *program.Error
	if !errors.As(err, &e) {
		t.Fatalf("Expected a program error, got %v", err)
	}

	if e.Source == nil || e.Source.Line != 2 || e.Source.Char != 2 {
		t.Fatalf("Expected the nested statement's location, got %v", e.Source)
	}
}

func TestStatementString(t *testing.T) {
	h := setup(t)

	b := reader.Read(h.arena.Root(), "test", `x = (a "b c") { y ; z ; } [1, 2] ;`)

	expected := `x = (a "b c") {y; z;} [1, 2];`
	if b.String() != expected {
		t.Fatalf("Expected %q, got %q", expected, b.String())
	}
}

func TestStringEscapes(t *testing.T) {
	h := setup(t)

	b := reader.Read(h.arena.Root(), "test", "x \"a\nb\" \"c\td\" \"it's ok\" ;")

	expected := `x "a\nb" "c\td" "it's ok";`
	if b.String() != expected {
		t.Fatalf("Expected %q, got %q", expected, b.String())
	}
}

func TestMultilineStringInError(t *testing.T) {
	h := setup(t)

	err := h.run("x \"a\nb\" ;")

	expected := `test:1:1: syntax error: failed to execute: x "a\nb"`
	if err == nil || err.Error() != expected {
		t.Fatalf("Expected %q, got %v", expected, err)
	}
}

func TestFuncIsNeverDispatched(t *testing.T) {
	h := setup(t)

	h.arena.Root().Define("f", &program.Func{Name: "f", Params: []string{"a"}})

	err := h.run("f 1 ;")
	if !errors.Is(err, program.ErrSyntax) {
		t.Fatalf("Expected a syntax error, got %v", err)
	}
}
