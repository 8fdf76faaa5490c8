package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/raysh454/phishscope/internal/app"
	"github.com/raysh454/phishscope/internal/history"
)

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := app.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("expected overridden listen addr, got %q", cfg.ListenAddr)
	}
	// Keys missing from the file keep their defaults.
	if cfg.HistoryCapacity != history.DefaultCapacity {
		t.Errorf("expected default history capacity, got %d", cfg.HistoryCapacity)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()
	if _, err := app.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := app.LoadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}
