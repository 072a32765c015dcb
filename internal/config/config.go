// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Workers int    `yaml:"workers"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Reference data location
	Dictionaries struct {
		Path string `yaml:"path"`
	} `yaml:"dictionaries"`

	// Postal provider settings
	Postal struct {
		AuthURL        string  `yaml:"auth_url"`
		ValidateURL    string  `yaml:"validate_url"`
		RatePerSecond  float64 `yaml:"rate_per_second"`
		Burst          int     `yaml:"burst"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		MaxRetries     int     `yaml:"max_retries"`
	} `yaml:"postal"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{}
	config.Defaults.Format = "text"
	config.Defaults.Workers = 4
	config.Dictionaries.Path = "dictionaries"
	config.Postal.AuthURL = "https://apis.usps.com/oauth2/v3/token"
	config.Postal.ValidateURL = "https://apis.usps.com/addresses/v3/address"
	config.Postal.RatePerSecond = 2
	config.Postal.Burst = 2
	config.Postal.TimeoutSeconds = 15
	config.Postal.MaxRetries = 3

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig checks settings a bad config file could break.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if config.Defaults.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", config.Defaults.Workers)
	}
	if config.Postal.RatePerSecond < 0 {
		return fmt.Errorf("postal rate_per_second must be non-negative, got %v", config.Postal.RatePerSecond)
	}
	if config.Postal.MaxRetries < 0 {
		return fmt.Errorf("postal max_retries must be non-negative, got %d", config.Postal.MaxRetries)
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("datacleanse.yaml") {
		return "datacleanse.yaml"
	}
	if fileExists("datacleanse.yml") {
		return "datacleanse.yml"
	}

	// Project-specific config
	if fileExists(".datacleanse.yaml") {
		return ".datacleanse.yaml"
	}
	if fileExists(".datacleanse.yml") {
		return ".datacleanse.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "datacleanse", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "datacleanse", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns a default configuration so callers never crash on a missing or
// bad config file.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}
