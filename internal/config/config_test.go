package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Game.Sound != nil || cfg.Game.Seed != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[game]
sound = true
seed = 99
hard-words = "/tmp/hard.txt"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game.Sound == nil || !*cfg.Game.Sound {
		t.Fatalf("expected sound=true")
	}
	if cfg.Game.Seed == nil || *cfg.Game.Seed != 99 {
		t.Fatalf("expected seed=99")
	}
	if cfg.Game.HardWords == nil || *cfg.Game.HardWords != "/tmp/hard.txt" {
		t.Fatalf("expected hard-words path")
	}
	if cfg.Game.EasyWords != nil {
		t.Fatalf("expected easy-words unset")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nvolume = 11\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "typerush", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultLogDir(); got != filepath.Join("/state", "typerush") {
		t.Fatalf("unexpected log dir %q", got)
	}
}
