package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[model]
default_probability = 1e-9

[cli]
default_limit = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Model.DefaultProbability != 1e-9 {
		t.Errorf("DefaultProbability = %v, want 1e-9", cfg.Model.DefaultProbability)
	}
	if cfg.CLI.DefaultLimit != 5 {
		t.Errorf("DefaultLimit = %d, want 5", cfg.CLI.DefaultLimit)
	}
	// Untouched sections keep their defaults.
	if want := DefaultConfig().Server.MaxTextLen; cfg.Server.MaxTextLen != want {
		t.Errorf("MaxTextLen = %d, want default %d", cfg.Server.MaxTextLen, want)
	}
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig error: %v", err)
	}
	if cfg.Model.NgramOrder != DefaultConfig().Model.NgramOrder {
		t.Errorf("InitConfig returned non-default config")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	// Second init loads the file it just wrote.
	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("second InitConfig error: %v", err)
	}
	if *again != *cfg {
		t.Errorf("reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig on invalid file: want error")
	}
}
