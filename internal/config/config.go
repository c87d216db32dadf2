package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// SeriesOverride defines a recurring rehearsal series scheduled from a named
// template.
type SeriesOverride struct {
	TemplateTitle string `yaml:"templateTitle" validate:"required"`
	RRule         string `yaml:"rrule" validate:"required"`
	Count         *int   `yaml:"count,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL            string           `yaml:"databaseURL" validate:"required"`
	DefaultLocation        string           `yaml:"defaultLocation,omitempty"`
	DefaultDurationMinutes int              `yaml:"defaultDurationMinutes,omitempty" validate:"omitempty,min=15"`
	RehearsalSeries        []SeriesOverride `yaml:"rehearsalSeries,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from choir_registry_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each series
	for i, series := range cfg.RehearsalSeries {
		if _, err := rrule.StrToRRule(series.RRule); err != nil {
			return fmt.Errorf("invalid rrule in rehearsalSeries[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for choir_registry_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "choir_registry_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
