// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the seashade client configuration.
//
// Configuration is a small YAML file at ~/.config/seashade/config.yaml
// holding defaults that rarely change (the backend URL, poll cadence).
// Anything session-specific lives in the session file instead. The
// precedence order, highest first:
//
//  1. command-line flags
//  2. environment variables (SEASHADE_API_URL)
//  3. the config file
//  4. built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIURL is the backend used when nothing else is configured.
	DefaultAPIURL = "http://localhost:8080"

	// DefaultPollInterval is how often the ticket board refreshes.
	DefaultPollInterval = 15 * time.Second

	// DefaultElapsedTick is how often elapsed-time labels re-render.
	DefaultElapsedTick = 60 * time.Second
)

// Config is the parsed client configuration.
type Config struct {
	// APIURL is the base URL of the SeaShade backend.
	APIURL string `yaml:"api_url"`

	// PollInterval is the ticket board refresh cadence.
	PollInterval time.Duration `yaml:"poll_interval"`
}

// FilePath returns the config file location, honoring XDG_CONFIG_HOME.
func FilePath() string {
	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("/tmp", "seashade-config.yaml")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "seashade", "config.yaml")
}

// Load reads the config file if present and applies environment
// overrides. A missing file is not an error: defaults apply.
func Load() (*Config, error) {
	return LoadFrom(FilePath())
}

// LoadFrom reads configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		APIURL:       DefaultAPIURL,
		PollInterval: DefaultPollInterval,
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if envURL := os.Getenv("SEASHADE_API_URL"); envURL != "" {
		cfg.APIURL = envURL
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	return cfg, nil
}
