package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if got, want := cfg.OutExt, ".lf"; got != want {
		t.Errorf("Default().OutExt = %q, want %q", got, want)
	}
	if got, want := cfg.Target, "Cpp"; got != want {
		t.Errorf("Default().Target = %q, want %q", got, want)
	}
	if got, want := cfg.TimeUnit, "sec"; got != want {
		t.Errorf("Default().TimeUnit = %q, want %q", got, want)
	}
	if got, want := cfg.IgnoreFile, ".relicoignore"; got != want {
		t.Errorf("Default().IgnoreFile = %q, want %q", got, want)
	}
	if cfg.Debug {
		t.Errorf("Default().Debug = true, want false")
	}
}

func TestLoadFileOverlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "relico.yaml")
	src := "target: C\ntime_unit: msec\ndebug: true\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if got, want := cfg.Target, "C"; got != want {
		t.Errorf("Target = %q, want %q", got, want)
	}
	if got, want := cfg.TimeUnit, "msec"; got != want {
		t.Errorf("TimeUnit = %q, want %q", got, want)
	}
	if !cfg.Debug {
		t.Errorf("Debug = false, want true")
	}
	if got, want := cfg.OutExt, ".lf"; got != want {
		t.Errorf("OutExt = %q, want default %q", got, want)
	}
	if got, want := cfg.IgnoreFile, ".relicoignore"; got != want {
		t.Errorf("IgnoreFile = %q, want default %q", got, want)
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("LoadFile() succeeded on a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("target: [\n"), 0644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Errorf("LoadFile() succeeded on malformed YAML")
	}
}
