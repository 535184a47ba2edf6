// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default retry bounds for the phase executor.
const (
	DefaultValidationRetries = 2
	DefaultQARetries         = 1
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job        string `json:"job,omitempty"`         // Path to the job description file (.txt/.md/.html)
	Catalog    string `json:"catalog,omitempty"`     // Path to the source catalog JSON
	OutputRoot string `json:"output_root,omitempty"` // Applications folder holding per-run job folders

	// Behavior
	APIKey               string `json:"api_key,omitempty"`                // Gemini API key
	DatabaseURL          string `json:"database_url,omitempty"`           // PostgreSQL connection URL for the artifact mirror
	MaxValidationRetries int    `json:"max_validation_retries,omitempty"` // Draft regeneration bound in Phase 2
	MaxQARetries         int    `json:"max_qa_retries,omitempty"`         // QA re-edit bound in Phase 3
	SkipStyleEdit        bool   `json:"skip_style_edit,omitempty"`        // Skip the Phase 3 style-edit task
	GeneratePDF          bool   `json:"generate_pdf,omitempty"`           // Render the final draft to PDF
	Verbose              bool   `json:"verbose,omitempty"`                // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxValidationRetries < 0 {
		return fmt.Errorf("config error: 'max_validation_retries' must be non-negative")
	}
	if c.MaxQARetries < 0 {
		return fmt.Errorf("config error: 'max_qa_retries' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.OutputRoot == "" {
		result.OutputRoot = defaults.OutputRoot
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero. A zero retry bound is expressed by
	// the flag layer via Changed, not through the config file.
	if result.MaxValidationRetries == 0 {
		result.MaxValidationRetries = defaults.MaxValidationRetries
	}
	if result.MaxQARetries == 0 {
		result.MaxQARetries = defaults.MaxQARetries
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
