// Package daemon manages the Lingo service lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/globallingo/lingo/internal/infra/redisstore"
	"github.com/globallingo/lingo/internal/logger"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds all daemon configuration.
type Config struct {
	API       APIConfig         `toml:"api"`
	Store     StoreConfig       `toml:"store"`
	Redis     redisstore.Config `toml:"redis"`
	Logging   logger.Config     `toml:"logging"`
	Telemetry TelemetryConfig   `toml:"telemetry"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StoreConfig selects where the progression blob lives. Notifications are
// always kept in the SQLite database under the Lingo home.
type StoreConfig struct {
	Backend string `toml:"backend"`
}

// TelemetryConfig controls the /metrics endpoint.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8421,
		},
		Store: StoreConfig{
			Backend: BackendSQLite,
		},
		Redis: redisstore.DefaultConfig(),
		Logging: logger.Config{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Validate rejects configurations the daemon cannot start with.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("store.backend %q: want %q or %q", c.Store.Backend, BackendSQLite, BackendRedis)
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("api.port %d out of range", c.API.Port)
	}
	return nil
}

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.API.Host, c.API.Port)
}

// LoadConfig reads config from ~/.lingo/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	return loadConfigFrom(ConfigPath())
}

func loadConfigFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.lingo/config.toml.
func SaveConfig(cfg Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// ConfigPath is the config file location.
func ConfigPath() string {
	return filepath.Join(LingoHome(), "config.toml")
}

// LingoHome returns the Lingo data directory.
func LingoHome() string {
	if env := os.Getenv("LINGO_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".lingo")
}
