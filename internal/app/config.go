package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config holds application configuration
type Config struct {
	InputPath   string `yaml:"-"`
	OutputPath  string `yaml:"output"`
	Format      string `yaml:"format"`
	Gzip        bool   `yaml:"gzip"`
	Strict      bool   `yaml:"strict"`
	Verbose     bool   `yaml:"verbose"`
	ShowVersion bool   `yaml:"-"`
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{Format: FormatCSV}
}

// LoadFile overlays values from a YAML config file onto the receiver.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q (expected %q or %q)", c.Format, FormatCSV, FormatJSON)
	}
	if c.Gzip && c.OutputPath == "" {
		return fmt.Errorf("gzip output requires an output file")
	}
	return nil
}
