package builtins

import (
	"testing"

	"github.com/michaelmacinnis/brak/internal/engine/program"
)

func operand(s string) program.Operand {
	return program.NewValue(s).Operand()
}

func TestOperations(t *testing.T) {
	for _, c := range []struct {
		op       func(l, r program.Operand) string
		name     string
		left     string
		right    string
		expected string
	}{
		{add, "+", "3", "4", "7"},
		{add, "+", "a", "b", "ab"},
		{add, "+", "007", "a", "7a"},
		{sub, "-", "3", "4", "-1"},
		{sub, "-", "abcabc", "bc", "aa"},
		{sub, "-", "abbcc", "bc", "a"},
		{sub, "-", "abc", "", "abc"},
		{mul, "*", "6", "-7", "-42"},
		{div, "/", "7", "2", "3"},
		{div, "/", "-7", "2", "-4"},
		{div, "/", "7", "-2", "-4"},
		{mod, "%", "-7", "3", "2"},
		{mod, "%", "7", "-3", "-2"},
		{mod, "%", "6", "3", "0"},
		{pow, "^", "2", "10", "1024"},
		{pow, "^", "2", "-1", "0.5"},
		{pow, "^", "-2", "-1", "-0.5"},
		{pow, "^", "10", "-5", "1e-05"},
		{pow, "^", "2", "100", "1267650600228229401496703205376"},
		{lt, "<", "9", "10", "1"},
		{lt, "<", "b", "a", "0"},
		{gt, ">", "10", "9", "1"},
		{le, "<=", "3", "3", "1"},
		{ge, ">=", "a", "b", "0"},
		{eq, "==", "007", "7", "1"},
		{eq, "==", "abc", "abc", "1"},
		{ne, "!=", "1", "1", "0"},
		{and, "&&", "1", "0", "0"},
		{and, "&&", "a", "b", "1"},
		{and, "&&", "00", "1", "0"},
		{or, "||", "a", "0", "1"},
		{or, "||", "", "0", "0"},
	} {
		actual := c.op(operand(c.left), operand(c.right))
		if actual != c.expected {
			t.Fatalf("%q %s %q: expected %q, got %q", c.left, c.name, c.right, c.expected, actual)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, op := range []func(l, r program.Operand) string{div, mod} {
		func() {
			defer func() {
				e, ok := recover().(*program.Error)
				if !ok || e.Kind != program.ArithmeticError {
					t.Fatalf("Expected an arithmetic error, got %v", e)
				}
			}()

			op(operand("1"), operand("0"))
		}()
	}
}

func TestFloat(t *testing.T) {
	for f, expected := range map[float64]string{
		0.5:     "0.5",
		0.0001:  "0.0001",
		0.00001: "1e-05",
		1:       "1.0",
		0:       "0.0",
		1.0 / 3: "0.3333333333333333",
	} {
		if actual := float(f); actual != expected {
			t.Fatalf("Expected %q, got %q", expected, actual)
		}
	}
}

func TestArray(t *testing.T) {
	for text, expected := range map[string]int{
		"[1,2,3]":   3,
		"[1, 2, 3]": 3,
		"[]":        1,
		"[x]":       1,
	} {
		items, ok := array(text)
		if !ok || len(items) != expected {
			t.Fatalf("Expected %q to be an array of %d", text, expected)
		}
	}

	for _, text := range []string{"", "[", "]", "x", "[x", "x]"} {
		if _, ok := array(text); ok {
			t.Fatalf("Expected %q not to be an array", text)
		}
	}
}

func TestDefinitions(t *testing.T) {
	d := New(nil, nil, "", nil).Definitions()

	for _, name := range []string{
		"=", "delete", "#", "print", "input",
		"+", "-", "*", "/", "%", "^",
		"<", ">", "<=", ">=", "==", "!=", "&&", "||",
		"while", "if", "if_else", "for", "func",
		"true", "false", "none",
		"using", "at", "lengthof", "random",
	} {
		if _, ok := d[name]; !ok {
			t.Fatalf("Expected %q to be defined", name)
		}
	}

	for name, expected := range map[string]string{"true": "1", "false": "0", "none": ""} {
		if v := d[name].String(); v != expected {
			t.Fatalf("Expected %s to be %q, got %q", name, expected, v)
		}
	}
}
