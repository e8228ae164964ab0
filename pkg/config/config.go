// Package config loads the optional YAML session file the driver (cmd/lox,
// pkg/repl) uses to control presentation — prompt text, coloring, and
// REPL history location. None of it affects language semantics.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings controls driver presentation. The zero value is not valid on
// its own; use Default() or Load(), both of which fill in every field.
type Settings struct {
	Prompt      string `yaml:"prompt"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in settings used when no rc file is present.
func Default() Settings {
	home, err := os.UserHomeDir()
	historyFile := ".lox_history"
	if err == nil {
		historyFile = filepath.Join(home, ".lox_history")
	}
	return Settings{
		Prompt:      "> ",
		Color:       true,
		HistoryFile: historyFile,
	}
}

// Load reads a YAML rc file at path and overlays it onto Default(),
// the same read-bytes-then-yaml.Unmarshal approach used elsewhere in the
// reference corpus's manifest loader. A missing file is not an error: it
// just means the defaults apply.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}

	var overlay rcFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return settings, err
	}

	if overlay.Prompt != nil {
		settings.Prompt = *overlay.Prompt
	}
	if overlay.Color != nil {
		settings.Color = *overlay.Color
	}
	if overlay.HistoryFile != nil {
		settings.HistoryFile = *overlay.HistoryFile
	}
	return settings, nil
}

// rcFile mirrors Settings but with pointer fields so Load can tell "unset"
// (use the default) apart from an explicit zero value like `color: false`.
type rcFile struct {
	Prompt      *string `yaml:"prompt"`
	Color       *bool   `yaml:"color"`
	HistoryFile *string `yaml:"history_file"`
}

// DefaultPath returns the conventional rc file location: the relative path
// ".loxrc.yaml", which is looked up in the current directory.
func DefaultPath() string {
	return ".loxrc.yaml"
}
