// Package config provides configuration types, loading, and validation for
// the minidns server.
//
// Configuration is read from a YAML file resolved via the -config flag or
// the MINIDNS_CONFIG environment variable. A missing file is not an error;
// defaults produce a fully working single-node setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable consulted when no config path
// is given explicitly.
const EnvConfigPath = "MINIDNS_CONFIG"

// Defaults for a zero-value configuration.
const (
	DefaultHost   = "0.0.0.0"
	DefaultPort   = 8080
	DefaultDBPath = "minidns.db"
)

// ResolveConfigPath returns the explicit path if non-empty, otherwise the
// value of MINIDNS_CONFIG (which may also be empty).
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads configuration from the given YAML file and validates it.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDBPath
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}
