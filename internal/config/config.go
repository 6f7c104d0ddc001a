// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Storage  StorageConfig  `toml:"storage"`
	Owner    OwnerConfig    `toml:"owner"`
}

// ScheduleConfig holds the scheduling constraints applied to every placement.
type ScheduleConfig struct {
	ActiveStart string `toml:"active_start"` // e.g., "09:00"
	ActiveEnd   string `toml:"active_end"`   // e.g., "17:00"
	RestDay     string `toml:"rest_day"`     // "saturday" or "sunday"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// OwnerConfig identifies whose calendar this is.
type OwnerConfig struct {
	ID string `toml:"id"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			ActiveStart: "09:00",
			ActiveEnd:   "17:00",
			RestDay:     "sunday",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Owner: OwnerConfig{
			ID: defaultOwnerID(),
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rocinante.db"
	}
	return filepath.Join(home, ".local", "share", "rocinante", "rocinante.db")
}

// defaultOwnerID falls back to the OS user name.
func defaultOwnerID() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "default"
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rocinante", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

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
	if v := os.Getenv("ROCINANTE_ACTIVE_START"); v != "" {
		cfg.Schedule.ActiveStart = v
	}
	if v := os.Getenv("ROCINANTE_ACTIVE_END"); v != "" {
		cfg.Schedule.ActiveEnd = v
	}
	if v := os.Getenv("ROCINANTE_REST_DAY"); v != "" {
		cfg.Schedule.RestDay = v
	}
	if v := os.Getenv("ROCINANTE_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("ROCINANTE_OWNER_ID"); v != "" {
		cfg.Owner.ID = v
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
	if err := validateTime(c.Schedule.ActiveStart, "active_start"); err != nil {
		return err
	}
	if err := validateTime(c.Schedule.ActiveEnd, "active_end"); err != nil {
		return err
	}
	if c.Schedule.ActiveStart >= c.Schedule.ActiveEnd {
		return errors.New("active_start must be before active_end")
	}
	switch strings.ToLower(c.Schedule.RestDay) {
	case "saturday", "sunday":
	default:
		return fmt.Errorf("rest_day must be 'saturday' or 'sunday', got %q", c.Schedule.RestDay)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
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
