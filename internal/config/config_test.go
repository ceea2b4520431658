package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Grid.StartHour != 6 || cfg.Grid.EndHour != 21 {
		t.Errorf("default grid range = %d-%d, want 6-21", cfg.Grid.StartHour, cfg.Grid.EndHour)
	}
	if cfg.Grid.CompactStartHour != 15 {
		t.Errorf("default compact start = %d, want 15", cfg.Grid.CompactStartHour)
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Errorf("expected default base url, got %s", cfg.API.BaseURL)
	}
}

func TestLoadFrom_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "https://studio.example.com/v1"
timeout_seconds = 30

[grid]
start_hour = 7
end_hour = 22
compact_start_hour = 16

[ui]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.API.BaseURL != "https://studio.example.com/v1" {
		t.Errorf("base url = %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d", cfg.API.TimeoutSeconds)
	}
	if cfg.Grid.StartHour != 7 || cfg.Grid.EndHour != 22 {
		t.Errorf("grid range = %d-%d", cfg.Grid.StartHour, cfg.Grid.EndHour)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %s", cfg.UI.Theme)
	}
	// Unset sections keep defaults.
	if cfg.Storage.DBPath == "" {
		t.Error("storage defaults lost")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("STUDIOGRID_API_BASE_URL", "https://env.example.com/v1")
	t.Setenv("STUDIOGRID_API_TOKEN", "secret")
	t.Setenv("STUDIOGRID_UI_THEME", "light")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com/v1" {
		t.Errorf("base url = %s", cfg.API.BaseURL)
	}
	if cfg.API.Token != "secret" {
		t.Errorf("token = %s", cfg.API.Token)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %s", cfg.UI.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.API.TimeoutSeconds = 0 }},
		{"start after end", func(c *Config) { c.Grid.StartHour = 22; c.Grid.EndHour = 6 }},
		{"hour out of range", func(c *Config) { c.Grid.EndHour = 24 }},
		{"compact outside grid", func(c *Config) { c.Grid.CompactStartHour = 2 }},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.API.BaseURL = "https://saved.example.com/v1"
	cfg.UI.Theme = "dark"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.API.BaseURL != cfg.API.BaseURL {
		t.Errorf("base url = %s, want %s", loaded.API.BaseURL, cfg.API.BaseURL)
	}
	if loaded.UI.Theme != "dark" {
		t.Errorf("theme = %s", loaded.UI.Theme)
	}
}
