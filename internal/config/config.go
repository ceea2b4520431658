// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Grid    GridConfig    `toml:"grid"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// APIConfig holds studio backend settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`        // e.g., "https://api.example.com/v1"
	Token          string `toml:"token"`           // bearer token, usually set via env
	TimeoutSeconds int    `toml:"timeout_seconds"` // per-request timeout
}

// GridConfig holds selection grid settings. The grid always covers the
// full hour range; the compact window is only what views show by
// default before the user expands them.
type GridConfig struct {
	StartHour        int `toml:"start_hour"`         // e.g., 6
	EndHour          int `toml:"end_hour"`           // e.g., 21 (inclusive)
	CompactStartHour int `toml:"compact_start_hour"` // first hour shown before expanding
}

// StorageConfig holds the local template database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "auto", "dark", "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080/v1",
			TimeoutSeconds: 15,
		},
		Grid: GridConfig{
			StartHour:        6,
			EndHour:          21,
			CompactStartHour: 15, // afternoon/evening window by default
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// defaultDBPath returns the default template database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "studiogrid.db"
	}
	return filepath.Join(home, ".local", "share", "studiogrid", "studiogrid.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "studiogrid", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STUDIOGRID_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("STUDIOGRID_API_TOKEN"); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv("STUDIOGRID_API_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("STUDIOGRID_GRID_START_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Grid.StartHour = n
		}
	}
	if v := os.Getenv("STUDIOGRID_GRID_END_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Grid.EndHour = n
		}
	}
	if v := os.Getenv("STUDIOGRID_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("STUDIOGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api base_url must be set")
	}
	if c.API.TimeoutSeconds < 1 {
		return errors.New("api timeout_seconds must be at least 1")
	}
	if c.Grid.StartHour < 0 || c.Grid.StartHour > 23 {
		return fmt.Errorf("grid start_hour out of range: %d", c.Grid.StartHour)
	}
	if c.Grid.EndHour < 0 || c.Grid.EndHour > 23 {
		return fmt.Errorf("grid end_hour out of range: %d", c.Grid.EndHour)
	}
	if c.Grid.StartHour >= c.Grid.EndHour {
		return errors.New("grid start_hour must be before end_hour")
	}
	if c.Grid.CompactStartHour < c.Grid.StartHour || c.Grid.CompactStartHour > c.Grid.EndHour {
		return errors.New("grid compact_start_hour must be within the grid hour range")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("invalid ui theme: %s", c.UI.Theme)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
