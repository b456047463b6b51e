// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional at load time; each subcommand validates
// the fields it needs after merging flags and environment.
type Config struct {
	InputDir    string `json:"input_dir,omitempty" validate:"omitempty,dir"`      // Directory holding the cleaned CSV inputs
	OutputDir   string `json:"output_dir,omitempty"`                              // Directory for transformed CSV output
	DatabaseURL string `json:"database_url,omitempty" validate:"omitempty,min=1"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`                                 // Print detailed debug information
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// FromEnv fills unset fields from the environment. godotenv has already
// populated the environment from .env by the time this runs.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks field formats without enforcing per-command requirements.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// RequireInput validates the fields the extract and transform commands need.
func (c *Config) RequireInput() error {
	if c.InputDir == "" {
		return fmt.Errorf("config error: input directory is required (--input or 'input_dir')")
	}
	return c.Validate()
}

// RequireDatabase validates the fields the load command needs.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database URL is required (--database-url, DATABASE_URL, or 'database_url')")
	}
	return c.Validate()
}
