package config

import "time"

// DefaultConfig returns the built-in configuration. User values from
// calbridge.yaml override these.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		LLM: LLMConfig{
			BaseURL: "http://127.0.0.1:11434",
			Model:   "llama3.1",
		},
		Bridge: BridgeConfig{
			BaseURL: "http://127.0.0.1:8765",
		},
		Database: DatabaseConfig{
			Path: "calbridge.db",
		},
		Scheduler: SchedulerConfig{
			Timezone:      "America/New_York",
			WorkStartHour: 6,
			WorkEndHour:   23,
			MinGapMinutes: 5,
		},
	}
}
