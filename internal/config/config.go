// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store driver names.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the application configuration. It can be loaded from a JSON
// file, overlaid with environment variables; missing values use defaults.
type Config struct {
	// Store
	StoreDriver string `json:"store_driver,omitempty"` // file | postgres | memory
	StoreDir    string `json:"store_dir,omitempty"`    // directory for the file driver
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"`

	// Auth: bcrypt hash of the access passphrase accepted by /auth/token.
	// Empty disables auth entirely (local single-user mode).
	PassphraseHash string `json:"passphrase_hash,omitempty"`
}

// Load reads configuration from an optional JSON file and applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{
		StoreDriver: DriverFile,
		StoreDir:    defaultStoreDir(),
		Port:        8080,
	}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		c.StoreDriver = v
	}
	if v := os.Getenv("STORE_DIR"); v != "" {
		c.StoreDir = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("ACCESS_PASSPHRASE_HASH"); v != "" {
		c.PassphraseHash = v
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverFile:
		if c.StoreDir == "" {
			return fmt.Errorf("config error: 'store_dir' is required for the file driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config error: unknown store driver %q", c.StoreDriver)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	return nil
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".placement-readiness"
	}
	return filepath.Join(home, ".placement-readiness")
}
