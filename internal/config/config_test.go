package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Config{Sound: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHESSMATE_DATA_DIR", "/tmp/chessmate")
	t.Setenv("CHESSMATE_NO_STORAGE", "true")
	t.Setenv("CHESSMATE_VERBOSE", "1")
	t.Setenv("CHESSMATE_FLIP_BOARD", "true")
	t.Setenv("CHESSMATE_SOUND", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Config{
		DataDir:   "/tmp/chessmate",
		NoStorage: true,
		Verbose:   true,
		FlipBoard: true,
		Sound:     false,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("CHESSMATE_VERBOSE", "sometimes")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
