// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Structgen Authors

// Package config handles structgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultFileName is the config file structgen looks for in the
// working directory.
const DefaultFileName = "structgen.yaml"

// Config represents the structgen.yaml project configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Format  string `yaml:"format,omitempty"`
	Strict  bool   `yaml:"strict,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
// knownFormats are the registered translator names.
func (c *Config) Validate(knownFormats []string) error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Format == "" {
		return nil
	}
	for _, name := range knownFormats {
		if c.Format == name {
			return nil
		}
	}
	return fmt.Errorf("unknown format in config: %s", c.Format)
}
