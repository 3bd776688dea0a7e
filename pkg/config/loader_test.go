package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "calbridge.db", cfg.Database.Path)
	assert.Equal(t, "America/New_York", cfg.Scheduler.Timezone)
	assert.Equal(t, 6, cfg.Scheduler.WorkStartHour)
	assert.Equal(t, 23, cfg.Scheduler.WorkEndHour)
	assert.Equal(t, 5, cfg.Scheduler.MinGapMinutes)
	assert.Equal(t, 0, cfg.Scheduler.MaxTasksPerDay)
}

func TestInitializeFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 9090
llm:
  model: mistral
scheduler:
  timezone: Europe/Berlin
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mistral", cfg.LLM.Model)
	assert.Equal(t, "Europe/Berlin", cfg.Scheduler.Timezone)
	// Untouched sections keep defaults.
	assert.Equal(t, "calbridge.db", cfg.Database.Path)
	assert.Equal(t, 6, cfg.Scheduler.WorkStartHour)
}

func TestInitializeEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "database:\n  path: from-file.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	t.Setenv("DB_PATH", "from-env.db")
	t.Setenv("LLM_MODEL", "phi3")

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database.Path)
	assert.Equal(t, "phi3", cfg.LLM.Model)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("server: [not a map"), 0o644))

	_, err := Initialize(dir)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, field: "server.port"},
		{name: "empty llm url", mutate: func(c *Config) { c.LLM.BaseURL = "" }, field: "llm.base_url"},
		{name: "empty model", mutate: func(c *Config) { c.LLM.Model = "" }, field: "llm.model"},
		{name: "empty bridge url", mutate: func(c *Config) { c.Bridge.BaseURL = "" }, field: "bridge.base_url"},
		{name: "empty db path", mutate: func(c *Config) { c.Database.Path = "" }, field: "database.path"},
		{name: "unknown timezone", mutate: func(c *Config) { c.Scheduler.Timezone = "Nowhere/Null" }, field: "scheduler.timezone"},
		{name: "work window inverted", mutate: func(c *Config) { c.Scheduler.WorkEndHour = 5 }, field: "scheduler.work_end_hour"},
		{name: "negative min gap", mutate: func(c *Config) { c.Scheduler.MinGapMinutes = -1 }, field: "scheduler.min_gap_minutes"},
		{name: "negative daily cap", mutate: func(c *Config) { c.Scheduler.MaxTasksPerDay = -2 }, field: "scheduler.max_tasks_per_day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
