// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Output formats for analysis results.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Defaults applied by MergeWithDefaults and Default.
const (
	DefaultPort          = 8080
	DefaultMaxInputBytes = 10 << 20 // 10 MiB
	DefaultTopKeywords   = 10
	DefaultConcurrency   = 4
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty" yaml:"resume,omitempty"` // Path to résumé text file
	Job    string `json:"job,omitempty" yaml:"job,omitempty"`       // Path to job description text file

	// Output
	Out    string `json:"out,omitempty" yaml:"out,omitempty"`       // Output file; stdout when empty
	Format string `json:"format,omitempty" yaml:"format,omitempty"` // json or text

	// Limits
	TopKeywords   int   `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`       // Keywords reported per analysis
	MaxInputBytes int64 `json:"max_input_bytes,omitempty" yaml:"max_input_bytes,omitempty"` // Per-document size cap
	Concurrency   int   `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`         // Batch worker count

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print the human-readable report as well
}

// Default returns a Config with every default filled in.
func Default() Config {
	return Config{
		Format:        FormatJSON,
		TopKeywords:   DefaultTopKeywords,
		MaxInputBytes: DefaultMaxInputBytes,
		Concurrency:   DefaultConcurrency,
		Port:          DefaultPort,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
	}
}

// LoadConfig loads configuration from a JSON or YAML file. YAML is chosen by a
// .yaml or .yml extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Format != "" && c.Format != FormatJSON && c.Format != FormatText {
		return fmt.Errorf("config error: 'format' must be %q or %q, got %q", FormatJSON, FormatText, c.Format)
	}

	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
			return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
		}
	}
	if c.LogFormat != "" && !strings.EqualFold(c.LogFormat, logging.FormatJSON) && !strings.EqualFold(c.LogFormat, logging.FormatPretty) {
		return fmt.Errorf("config error: 'log_format' must be %q or %q, got %q", logging.FormatJSON, logging.FormatPretty, c.LogFormat)
	}

	// Validate numeric ranges
	if c.TopKeywords < 0 {
		return fmt.Errorf("config error: 'top_keywords' must be non-negative")
	}
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("config error: 'max_input_bytes' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Numeric fields: use default if zero
	if result.TopKeywords == 0 {
		result.TopKeywords = defaults.TopKeywords
	}
	if result.MaxInputBytes == 0 {
		result.MaxInputBytes = defaults.MaxInputBytes
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
