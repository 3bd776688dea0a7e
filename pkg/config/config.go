// Package config loads and validates application configuration from
// calbridge.yaml plus environment variables, with built-in defaults merged
// underneath user values.
package config

import "time"

// Config is the complete runtime configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Bridge    BridgeConfig    `yaml:"bridge"`
	Database  DatabaseConfig  `yaml:"database"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LLMConfig configures the LLM bridge client.
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// BridgeConfig configures the calendar bridge client.
type BridgeConfig struct {
	BaseURL string `yaml:"base_url"`
}

// DatabaseConfig configures the local task store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SchedulerConfig configures task placement.
type SchedulerConfig struct {
	// Timezone is the default IANA zone for requests that do not carry one.
	Timezone string `yaml:"timezone"`
	// WorkStartHour and WorkEndHour bound the daily scheduling window
	// (24-hour clock).
	WorkStartHour int `yaml:"work_start_hour"`
	WorkEndHour   int `yaml:"work_end_hour"`
	// MinGapMinutes is the cooldown carved out between consecutive subtasks
	// of a complex task.
	MinGapMinutes int `yaml:"min_gap_minutes"`
	// MaxTasksPerDay caps placements per calendar day. Zero means unlimited.
	MaxTasksPerDay int `yaml:"max_tasks_per_day"`
}
