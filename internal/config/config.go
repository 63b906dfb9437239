// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlenSaijo/career-roadmap-generator/internal/gaps"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Pipeline defaults
	HoursPerDay          int    `json:"hours_per_day,omitempty"`          // Default study hours per roadmap day
	FutureSkillsCategory string `json:"future_skills_category,omitempty"` // Future-skills table category

	// Paths
	ReportSchema string `json:"report_schema,omitempty"` // Path to the report JSON Schema

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print formatted report summaries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.HoursPerDay < 0 {
		return fmt.Errorf("config error: 'hours_per_day' must be non-negative")
	}
	if c.FutureSkillsCategory != "" && len(gaps.SuggestFutureSkills(c.FutureSkillsCategory)) == 0 {
		return fmt.Errorf("config error: unknown 'future_skills_category' %q", c.FutureSkillsCategory)
	}
	if c.ReportSchema != "" {
		if _, err := os.Stat(c.ReportSchema); os.IsNotExist(err) {
			return fmt.Errorf("config error: report schema file not found: %s", c.ReportSchema)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.HoursPerDay == 0 {
		result.HoursPerDay = defaults.HoursPerDay
	}
	if result.FutureSkillsCategory == "" {
		if defaults.FutureSkillsCategory != "" {
			result.FutureSkillsCategory = defaults.FutureSkillsCategory
		} else {
			result.FutureSkillsCategory = gaps.DefaultCategory
		}
	}
	if result.ReportSchema == "" {
		result.ReportSchema = defaults.ReportSchema
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
