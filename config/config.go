// Package config loads tool configuration from the environment, with an
// optional YAML file for settings shared across invocations.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for opening a store.
type Config struct {
	// StorePath is the path of the SQLite database file.
	StorePath string `yaml:"store_path"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
	// LogFormat is "json" or "console".
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from the COLLABD_* environment variables.
func Load() *Config {
	return &Config{
		StorePath: getEnv("COLLABD_STORE", "collabd.db"),
		LogLevel:  getEnv("COLLABD_LOG_LEVEL", "info"),
		LogFormat: getEnv("COLLABD_LOG_FORMAT", "console"),
	}
}

// LoadFile reads configuration from a YAML file and fills unset fields from
// the environment.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	defaults := Load()
	if cfg.StorePath == "" {
		cfg.StorePath = defaults.StorePath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaults.LogFormat
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
