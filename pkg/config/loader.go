package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the expected configuration file name.
const ConfigFileName = "calbridge.yaml"

// Initialize loads configuration for the application. The file is optional:
// when configDir has no calbridge.yaml the defaults apply, overridden only by
// environment variables.
func Initialize(configDir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(configDir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(cfg, *fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
		slog.Info("Loaded configuration file", "path", path)
	} else {
		slog.Info("No configuration file found, using defaults", "path", path)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// Environment variables take precedence over both defaults and the file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CALBRIDGE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("BRIDGE_BASE_URL"); v != "" {
		cfg.Bridge.BaseURL = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("DEFAULT_TIMEZONE"); v != "" {
		cfg.Scheduler.Timezone = v
	}
}

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return NewValidationError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.LLM.BaseURL == "" {
		return NewValidationError("llm.base_url", "must not be empty")
	}
	if c.LLM.Model == "" {
		return NewValidationError("llm.model", "must not be empty")
	}
	if c.Bridge.BaseURL == "" {
		return NewValidationError("bridge.base_url", "must not be empty")
	}
	if c.Database.Path == "" {
		return NewValidationError("database.path", "must not be empty")
	}
	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return NewValidationError("scheduler.timezone", fmt.Sprintf("unknown IANA zone %q", c.Scheduler.Timezone))
	}
	if c.Scheduler.WorkStartHour < 0 || c.Scheduler.WorkStartHour > 23 {
		return NewValidationError("scheduler.work_start_hour", "must be between 0 and 23")
	}
	if c.Scheduler.WorkEndHour <= c.Scheduler.WorkStartHour || c.Scheduler.WorkEndHour > 24 {
		return NewValidationError("scheduler.work_end_hour", "must be after work_start_hour and at most 24")
	}
	if c.Scheduler.MinGapMinutes < 0 {
		return NewValidationError("scheduler.min_gap_minutes", "must not be negative")
	}
	if c.Scheduler.MaxTasksPerDay < 0 {
		return NewValidationError("scheduler.max_tasks_per_day", "must not be negative")
	}
	return nil
}
