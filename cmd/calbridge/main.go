// CalBridge server — turns natural-language utterances into calendar events
// through the local calendar bridge, and serves the task management API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zubairatha/CalBridge/pkg/agent"
	"github.com/zubairatha/CalBridge/pkg/api"
	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/config"
	"github.com/zubairatha/CalBridge/pkg/database"
	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/scheduler"
	"github.com/zubairatha/CalBridge/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "."),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting CalBridge",
		"port", cfg.Server.Port,
		"timezone", cfg.Scheduler.Timezone,
		"config_dir", *configDir)

	// 2. Initialize database
	dbClient, err := database.NewClient(ctx, database.Config{Path: cfg.Database.Path})
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Database ready", "path", cfg.Database.Path)

	// 3. Bridge clients
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.Model)
	bridgeClient := calbridge.NewClient(cfg.Bridge.BaseURL)
	slog.Info("Bridge clients initialized",
		"llm", cfg.LLM.BaseURL, "model", cfg.LLM.Model,
		"calendar", cfg.Bridge.BaseURL)

	// 4. Pipeline, allotter, services
	pipeline := agent.NewPipeline(llmClient, bridgeClient, cfg.Scheduler.Timezone)
	allotter := scheduler.NewAllotter(bridgeClient, scheduler.Options{
		WorkStartHour:  cfg.Scheduler.WorkStartHour,
		WorkEndHour:    cfg.Scheduler.WorkEndHour,
		MinGapMinutes:  cfg.Scheduler.MinGapMinutes,
		MaxTasksPerDay: cfg.Scheduler.MaxTasksPerDay,
	})
	creator := services.NewEventCreator(dbClient, bridgeClient)
	scheduleService := services.NewScheduleService(pipeline, allotter, creator)
	taskService := services.NewTaskService(dbClient)
	slog.Info("Services initialized")

	// 5. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, scheduleService, taskService, creator)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr())
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
}
