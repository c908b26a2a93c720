// Package config loads the traceability CLI configuration from defaults,
// an optional local JSON config file, and TRACE_-prefixed environment
// variables, in ascending priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the traceability CLI configuration.
type Configuration struct {
	SpecsDir     string `koanf:"specs_dir" validate:"required"`
	PlansDir     string `koanf:"plans_dir" validate:"required"`
	TasksDir     string `koanf:"tasks_dir" validate:"required"`
	NoColor      bool   `koanf:"no_color"`      // Disable colored output
	ShowProgress bool   `koanf:"show_progress"` // Show a spinner while scanning (TTY only)
	Quiet        bool   `koanf:"quiet"`         // Suppress the summary, print errors only
}

// Load loads configuration from defaults, the local config file, and
// environment variables. Priority: environment > local config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", localConfigPath, err)
			}
		}
	}

	// Environment variables win over everything else.
	k.Load(env.Provider("TRACE_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.SpecsDir = expandHomePath(cfg.SpecsDir)
	cfg.PlansDir = expandHomePath(cfg.PlansDir)
	cfg.TasksDir = expandHomePath(cfg.TasksDir)

	// NO_COLOR is honored as an alias for no_color.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: TRACE_SPECS_DIR -> specs_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "TRACE_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
