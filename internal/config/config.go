// -----------------------------------------------------------------------------
// Copyright (c) 2025 TEENet Technology (Hong Kong) Limited. All Rights Reserved.
//
// This software and its associated documentation files (the "Software") are
// the proprietary and confidential information of TEENet Technology (Hong Kong) Limited.
// Unauthorized copying of this file, via any medium, is strictly prohibited.
//
// No license, express or implied, is hereby granted, except by written agreement
// with TEENet Technology (Hong Kong) Limited. Use of this software without permission
// is a violation of applicable laws.
//
// -----------------------------------------------------------------------------

// Package config loads the adapter configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fouzhe/cryptofuzz/internal/classify"
	"github.com/fouzhe/cryptofuzz/internal/types"
)

// Config represents the YAML configuration of the adapter.
type Config struct {
	// Classification replaces the embedded classification table when set.
	Classification *classify.Spec `yaml:"classification,omitempty"`

	// Features toggles the disabled code paths of the adapter.
	Features types.AdapterOptions `yaml:"features"`

	table *classify.Table
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{table: classify.Default()}
}

// Load loads the configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration and compiles its classification table.
func (c *Config) Validate() error {
	if c.Classification == nil {
		c.table = classify.Default()
		return nil
	}

	t, err := classify.Compile(*c.Classification)
	if err != nil {
		return fmt.Errorf("classification: %w", err)
	}
	c.table = t
	return nil
}

// Table returns the compiled classification table.
func (c *Config) Table() *classify.Table {
	if c.table == nil {
		return classify.Default()
	}
	return c.table
}
