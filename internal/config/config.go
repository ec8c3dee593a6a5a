// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads engine configuration: code defaults first, then an
// optional YAML file layered on top. Every tunable heuristic parameter
// (ID shape, page budget, context window, scoring weights, retry policy)
// lives here so it can be recalibrated without touching matching code.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"folder-namer/internal/resilience"
	"folder-namer/internal/subjectname"
)

// Config represents the application configuration.
type Config struct {
	Defaults struct {
		IDPattern     string `yaml:"id_pattern"`     // identifying prefix shape for child folders
		PageBudget    int    `yaml:"page_budget"`    // leading PDF pages read per document
		ContextWindow int    `yaml:"context_window"` // chars inspected around a match
		Workers       int    `yaml:"workers"`        // parallel folder workers
		NoColor       bool   `yaml:"no_color"`
		Debug         bool   `yaml:"debug"`
	} `yaml:"defaults"`

	Retry struct {
		MaxRetries int `yaml:"max_retries"`
		IntervalMs int `yaml:"interval_ms"`
	} `yaml:"retry"`

	// Scoring weights, preserved as the default policy but exposed so they
	// can be recalibrated against a labeled dataset.
	Weights subjectname.Weights `yaml:"weights"`

	// LexiconFile overrides the embedded stopword/allow-list vocabulary.
	LexiconFile string `yaml:"lexicon_file"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	config.Defaults.IDPattern = `^\d{8}`
	config.Defaults.PageBudget = 3
	config.Defaults.ContextWindow = subjectname.DefaultContextWindow
	config.Defaults.Workers = 1
	retry := resilience.RenameRetryConfig()
	config.Retry.MaxRetries = retry.MaxRetries
	config.Retry.IntervalMs = int(retry.Interval / time.Millisecond)
	config.Weights = subjectname.DefaultWeights()

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

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that file-supplied values are usable.
func (c *Config) Validate() error {
	if _, err := regexp.Compile(c.Defaults.IDPattern); err != nil {
		return fmt.Errorf("invalid id_pattern: %w", err)
	}
	if c.Defaults.PageBudget < 1 {
		return fmt.Errorf("page_budget must be at least 1, got %d", c.Defaults.PageBudget)
	}
	if c.Defaults.ContextWindow < 1 {
		return fmt.Errorf("context_window must be at least 1, got %d", c.Defaults.ContextWindow)
	}
	if c.Defaults.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Defaults.Workers)
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative, got %d", c.Retry.MaxRetries)
	}
	if c.Retry.IntervalMs < 0 {
		return fmt.Errorf("interval_ms must not be negative, got %d", c.Retry.IntervalMs)
	}
	return nil
}

// RetryInterval returns the rename retry delay as a duration.
func (c *Config) RetryInterval() time.Duration {
	return time.Duration(c.Retry.IntervalMs) * time.Millisecond
}

// FindConfigFile looks for a configuration file in standard locations.
// Returns an empty string when none exists.
func FindConfigFile() string {
	candidates := []string{
		"folder-namer.yaml",
		"folder-namer.yml",
		".folder-namer.yaml",
		".folder-namer.yml",
	}
	for _, name := range candidates {
		if fileExists(name) {
			return name
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "folder-namer", "config.yaml")
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
