// Package config loads application configuration from an optional YAML
// file with environment-variable overrides (NBS_ prefix), and validates
// the result before anything touches the store.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"nbsrates/pkg/contracts/domain"
)

// Config is the complete application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database" envconfig:"DATABASE"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Sources  []SourceConfig `yaml:"sources" ignored:"true" validate:"dive"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path" envconfig:"PATH" validate:"required"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
}

// SourceConfig names one workbook sheet to ingest and the category it
// feeds. Downloading and caching the workbook is outside this program;
// File points at an already-fetched copy.
type SourceConfig struct {
	File     string `yaml:"file" validate:"required"`
	Sheet    string `yaml:"sheet" validate:"required"`
	Category string `yaml:"category" validate:"required"`
}

// ParsedCategory returns the source's category as a domain value.
func (s SourceConfig) ParsedCategory() (domain.Category, error) {
	return domain.ParseCategory(s.Category)
}

func defaults() Config {
	return Config{
		Database: DatabaseConfig{Path: "data/nbsrates.db"},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration: built-in defaults, then the YAML file when
// path is non-empty, then NBS_-prefixed environment variables, which win.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := envconfig.Process("NBS", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints plus the category names of every
// source.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	for i, source := range c.Sources {
		if _, err := source.ParsedCategory(); err != nil {
			return fmt.Errorf("sources[%d]: %w", i, err)
		}
	}
	return nil
}
