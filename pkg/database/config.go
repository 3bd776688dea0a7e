package database

import "os"

// Config holds database configuration.
type Config struct {
	// Path is the SQLite database file. ":memory:" gives an ephemeral
	// in-process database.
	Path string
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Path: getEnvOrDefault("DB_PATH", "calbridge.db"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
