package history

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
)

func TestMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	called := false

	err := Load(path, func(_ io.Reader) (int, error) {
		called = true
		return 0, nil
	})
	if err != nil || called {
		t.Fatalf("Expected a missing history file to be skipped, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	err := Save(path, func(w io.Writer) (int, error) {
		return io.WriteString(w, "x = 1 ;\nprint x ;\n")
	})
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	var b bytes.Buffer

	err = Load(path, func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)
		return int(n), err
	})
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if b.String() != "x = 1 ;\nprint x ;\n" {
		t.Fatalf("Unexpected history %q", b.String())
	}
}
