// Package config loads braidkit configuration from a TOML file.
//
// Configuration is optional: every field has a default, and the CLI and the
// API server both run without a file present. The file lives at
// $XDG_CONFIG_HOME/braidkit/config.toml (falling back to
// ~/.config/braidkit/config.toml) unless a path is given explicitly.
//
// Example:
//
//	[cache]
//	backend = "file"
//	ttl_hours = 720
//
//	[server]
//	addr = ":8080"
//	max_genus = 6
//
//	[catalog]
//	uri = "mongodb://localhost:27017"
//	database = "braidkit"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/braidkit/braidkit/pkg/cache"
	"github.com/braidkit/braidkit/pkg/errors"
)

// Config is the full braidkit configuration.
type Config struct {
	Cache   CacheConfig   `toml:"cache"`
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file cache directory. Empty uses the XDG default.
	Dir string `toml:"dir"`

	// TTLHours bounds the lifetime of cached entries. Enumeration results
	// never go stale, so this only limits disk/memory usage.
	TTLHours int `toml:"ttl_hours"`

	// Redis configures the redis backend.
	Redis cache.RedisConfig `toml:"redis"`
}

// TTL returns the entry lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// ServerConfig configures the API server.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`

	// MaxGenus caps the genus the API will compute on demand. Higher
	// requests are rejected: the search space grows too fast to run
	// arbitrary genera inside a request.
	MaxGenus int `toml:"max_genus"`
}

// CatalogConfig configures the MongoDB catalog. An empty URI disables it.
type CatalogConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend:  "file",
			TTLHours: 24 * 30,
			Redis:    cache.RedisConfig{Addr: "localhost:6379"},
		},
		Server: ServerConfig{
			Addr:     ":8080",
			MaxGenus: 6,
		},
		Catalog: CatalogConfig{
			Database:   "braidkit",
			Collection: "runs",
		},
	}
}

// Path returns the default config file location following the XDG standard.
func Path() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "braidkit", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "braidkit", "config.toml")
}

// Load reads the config file at path, layered over the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing config %s", path)
	}
	return cfg, nil
}
