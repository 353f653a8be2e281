// Package config handles code-prompt configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/Omodaka9375/code-prompt/internal/errors"
	"gopkg.in/yaml.v3"
)

// DefaultsConfig holds default answers applied when the user skips a
// universal question.
type DefaultsConfig struct {
	OutputFormat string `yaml:"output_format,omitempty"`
	Complexity   string `yaml:"complexity,omitempty"`
}

// ExportConfig holds document export settings.
type ExportConfig struct {
	Format string `yaml:"format,omitempty"` // "text" or "markdown"
	Dir    string `yaml:"dir,omitempty"`    // default directory for saved prompts
}

// Config represents the code-prompt configuration file. Everything is
// optional; a missing config file means built-in defaults.
type Config struct {
	Version  int            `yaml:"version"`
	Color    *bool          `yaml:"color,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Export   ExportConfig   `yaml:"export,omitempty"`
}

// ColorEnabled reports whether colored output is on. Unset means on.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Default values.
const (
	DefaultVersion      = 1
	DefaultOutputFormat = "code"
	DefaultComplexity   = "intermediate"
	DefaultExportFormat = "text"
)

// Load reads and validates config from the default location.
// A missing file is not an error; built-in defaults are returned.
func Load() (*Config, error) {
	paths := NewPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to the default location.
func Save(cfg *Config) error {
	paths := NewPaths()
	return SaveTo(cfg, paths.ConfigFile)
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks config for valid enum values.
func (c *Config) Validate() error {
	if !oneOf(c.Defaults.OutputFormat, "code", "code-comments", "explanation", "step-by-step") {
		return errors.ConfigInvalid("defaults.output_format must be one of: code, code-comments, explanation, step-by-step")
	}
	if !oneOf(c.Defaults.Complexity, "simple", "intermediate", "production") {
		return errors.ConfigInvalid("defaults.complexity must be one of: simple, intermediate, production")
	}
	if !oneOf(c.Export.Format, "text", "markdown") {
		return errors.ConfigInvalid("export.format must be one of: text, markdown")
	}
	return nil
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.Defaults.OutputFormat == "" {
		c.Defaults.OutputFormat = DefaultOutputFormat
	}
	if c.Defaults.Complexity == "" {
		c.Defaults.Complexity = DefaultComplexity
	}
	if c.Export.Format == "" {
		c.Export.Format = DefaultExportFormat
	}
}

// Exists checks if a config file exists at the default location.
func Exists() bool {
	paths := NewPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

func oneOf(val string, allowed ...string) bool {
	for _, a := range allowed {
		if val == a {
			return true
		}
	}
	return false
}
