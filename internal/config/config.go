// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variable names honored as fallbacks for their config fields.
const (
	EnvSkillTaxonomy     = "RANKRITE_SKILL_TAXONOMY"
	EnvEducationTaxonomy = "RANKRITE_EDUCATION_TAXONOMY"
	EnvJobTitle          = "RANKRITE_JOB_TITLE"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Paths
	Job               string `json:"job,omitempty"`                // Job description text file
	SkillTaxonomy     string `json:"skill_taxonomy,omitempty"`     // Custom skill taxonomy JSON
	EducationTaxonomy string `json:"education_taxonomy,omitempty"` // Custom education taxonomy JSON
	Out               string `json:"out,omitempty"`                // Output file for JSON results

	// Labels
	JobTitle string `json:"job_title,omitempty"` // Position name used in reports

	// Behavior
	Workers int  `json:"workers,omitempty"` // Ranking worker pool size
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	for _, file := range []struct {
		label, path string
	}{
		{"job", c.Job},
		{"skill_taxonomy", c.SkillTaxonomy},
		{"education_taxonomy", c.EducationTaxonomy},
	} {
		if file.path == "" {
			continue
		}
		if _, err := os.Stat(file.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", file.label, file.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.SkillTaxonomy == "" {
		result.SkillTaxonomy = defaults.SkillTaxonomy
	}
	if result.EducationTaxonomy == "" {
		result.EducationTaxonomy = defaults.EducationTaxonomy
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: unset and false are indistinguishable, so CLI flags win.

	return result
}

// ApplyEnv fills still-empty fields from the environment. Called after the
// config file merge so explicit configuration wins over the environment.
func (c *Config) ApplyEnv() {
	if c.SkillTaxonomy == "" {
		c.SkillTaxonomy = os.Getenv(EnvSkillTaxonomy)
	}
	if c.EducationTaxonomy == "" {
		c.EducationTaxonomy = os.Getenv(EnvEducationTaxonomy)
	}
	if c.JobTitle == "" {
		c.JobTitle = os.Getenv(EnvJobTitle)
	}
}
