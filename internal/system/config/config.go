// Released under an MIT license. See LICENSE.

// Package config loads brak's optional settings file.
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// T (config) holds brak's settings.
type T struct {
	History    string `yaml:"history"`     // REPL history file.
	Prompt     string `yaml:"prompt"`      // Prompt used by input.
	ReplPrompt string `yaml:"repl_prompt"` // Prompt used by the REPL.
	Seed       uint64 `yaml:"seed"`        // Random seed. Zero seeds from entropy.
}

// Default returns the default settings.
func Default() *T {
	return &T{
		History:    "~/.brak_history",
		Prompt:     "> ",
		ReplPrompt: "brak> ",
	}
}

// Load reads settings from the YAML file at path. Settings missing from the
// file keep their defaults. If path is empty the defaults are returned.
func Load(path string) (*T, error) {
	c := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := Decode(f, c); err != nil {
			return nil, err
		}
	}

	c.History = expand(c.History)

	return c, nil
}

// Decode reads YAML settings from r into c. Unknown settings are an error.
func Decode(r io.Reader, c *T) error {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	err := d.Decode(c)
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

func expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
