package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadReturnsDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.UI.DefaultFilter != "all" {
		t.Errorf("Expected default filter 'all', got %q", cfg.UI.DefaultFilter)
	}
	if !strings.HasSuffix(cfg.Storage.Path, filepath.Join(".taskdeck", "tasks.db")) {
		t.Errorf("Expected default db path under ~/.taskdeck, got %q", cfg.Storage.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.Log.Level)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".taskdeck")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `version: "1"
storage:
  path: /tmp/elsewhere/tasks.db
ui:
  default_filter: active
log:
  level: debug
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Path != "/tmp/elsewhere/tasks.db" {
		t.Errorf("Expected overridden db path, got %q", cfg.Storage.Path)
	}
	if cfg.UI.DefaultFilter != "active" {
		t.Errorf("Expected overridden filter, got %q", cfg.UI.DefaultFilter)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected overridden log level, got %q", cfg.Log.Level)
	}
	// Unset keys keep their defaults
	if cfg.Log.Path == "" {
		t.Error("Expected default log path to survive a partial config")
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := WriteDefault(Path()); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed on written default: %v", err)
	}
	if cfg.UI.DefaultFilter != "all" {
		t.Errorf("Expected filter 'all' from written default, got %q", cfg.UI.DefaultFilter)
	}
	// The ~ paths in the written file expand to the current home
	if !strings.HasPrefix(cfg.Storage.Path, home) {
		t.Errorf("Expected db path expanded under %s, got %q", home, cfg.Storage.Path)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := expandHome("~/.taskdeck/tasks.db")
	want := filepath.Join(home, ".taskdeck", "tasks.db")
	if got != want {
		t.Errorf("expandHome = %q, want %q", got, want)
	}

	if got := expandHome("/absolute/path.db"); got != "/absolute/path.db" {
		t.Errorf("Expected absolute path untouched, got %q", got)
	}
}
