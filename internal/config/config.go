// Package config handles global configuration for the extractor.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/refx/config.yml.
type Config struct {
	S2APIKey       string  `yaml:"s2_api_key,omitempty"`
	CachePath      string  `yaml:"cache_path,omitempty"`
	RequestTimeout int     `yaml:"request_timeout_seconds,omitempty"`
	RateLimit      float64 `yaml:"rate_limit_per_sec,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "refx"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// CacheFile is the default author-cache database name.
	CacheFile = "authors.db"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/refx/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load loads the configuration file. A missing file yields an empty config,
// not an error. Environment variables override file values: REFX_S2_API_KEY
// or S2_API_KEY for the key.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	cfg := &Config{}

	if path := Path(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if key := os.Getenv("REFX_S2_API_KEY"); key != "" {
		cfg.S2APIKey = key
	} else if key := os.Getenv("S2_API_KEY"); key != "" {
		cfg.S2APIKey = key
	}

	configCache = cfg
	return cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// DefaultCachePath returns the configured cache path, or the default under
// the config directory when unset.
func (c *Config) DefaultCachePath() string {
	if c.CachePath != "" {
		return c.CachePath
	}
	path := Path()
	if path == "" {
		return CacheFile
	}
	return filepath.Join(filepath.Dir(path), CacheFile)
}
