package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"lox/pkg/config"
)

func TestDefaultHasUsablePromptAndColorOn(t *testing.T) {
	settings := config.Default()
	if settings.Prompt == "" {
		t.Fatalf("expected a non-empty default prompt")
	}
	if !settings.Color {
		t.Fatalf("expected color to default on")
	}
	if settings.HistoryFile == "" {
		t.Fatalf("expected a non-empty default history file path")
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	settings, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != config.Default() {
		t.Fatalf("got %#v, want defaults", settings)
	}
}

func TestLoadOverlaysOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loxrc.yaml")
	if err := os.WriteFile(path, []byte("prompt: \"lox> \"\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	settings, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Prompt != "lox> " {
		t.Fatalf("got prompt %q, want %q", settings.Prompt, "lox> ")
	}
	if settings.Color != config.Default().Color {
		t.Fatalf("expected color to remain at its default when not set in the overlay")
	}
}

func TestLoadCanExplicitlyDisableColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loxrc.yaml")
	if err := os.WriteFile(path, []byte("color: false\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	settings, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Color {
		t.Fatalf("expected color explicitly disabled by the overlay")
	}
}
