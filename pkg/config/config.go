// Package config provides configuration management for the expense tracker.
// It loads configuration from environment variables, .env files, and an
// optional YAML settings file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultDBPath is the database location used when nothing overrides it,
// relative to the working directory.
const DefaultDBPath = "expenses.db"

// defaultSettingsFile is looked up in the working directory when
// EXPENSES_CONFIG is not set.
const defaultSettingsFile = "expenses.yaml"

// Config represents the application configuration.
type Config struct {
	DBPath string
}

// settingsFile represents the optional YAML settings file.
type settingsFile struct {
	DBPath string `yaml:"db_path"`
}

// Load loads configuration. Precedence, lowest to highest: built-in default,
// YAML settings file, environment variables. A .env file is loaded first so
// its entries are visible as environment variables; you can optionally
// specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	// Load .env file
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		DBPath: DefaultDBPath,
	}

	settings, err := loadSettings(os.Getenv("EXPENSES_CONFIG"))
	if err != nil {
		return nil, err
	}
	if settings != nil && settings.DBPath != "" {
		config.DBPath = settings.DBPath
	}

	if v := os.Getenv("EXPENSES_DB_PATH"); v != "" {
		config.DBPath = v
	}

	return config, nil
}

// loadSettings reads the YAML settings file. When path is empty the default
// file is tried and its absence is not an error; an explicitly named file
// must exist.
func loadSettings(path string) (*settingsFile, error) {
	explicit := path != ""
	if !explicit {
		path = defaultSettingsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings settingsFile
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &settings, nil
}
