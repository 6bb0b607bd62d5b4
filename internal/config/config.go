// Package config loads the optional YAML configuration of the inspection CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the inspection CLI configuration. Command line flags override
// the values loaded from file.
type Config struct {
	Version string      `yaml:"version" validate:"required,oneof=1"`
	Log     LogConfig   `yaml:"log"`
	Load    LoadConfig  `yaml:"load"`
	Dump    DumpConfig  `yaml:"dump"`
	Check   CheckConfig `yaml:"check"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

type LoadConfig struct {
	// Concurrency bounds the difficulty files decoded at once.
	Concurrency int `yaml:"concurrency" validate:"gte=1,lte=64"`
}

type DumpConfig struct {
	Format string `yaml:"format" validate:"oneof=yaml json spew"`
}

type CheckConfig struct {
	// FailOn is the lowest severity that makes the check command fail.
	FailOn string `yaml:"fail_on" validate:"oneof=info warning error"`
	// Disabled lists diagnostic codes that are not reported.
	Disabled []string `yaml:"disabled" validate:"dive,required"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)

	return &cfg
}

// LoadFile loads, defaults and validates a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses YAML data into a Config. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if cfg.Load.Concurrency == 0 {
		cfg.Load.Concurrency = 4
	}

	if cfg.Dump.Format == "" {
		cfg.Dump.Format = "yaml"
	}

	if cfg.Check.FailOn == "" {
		cfg.Check.FailOn = "error"
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
