// Package api exposes the HTTP surface: health, scheduling, and task
// management endpoints.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zubairatha/CalBridge/pkg/config"
	"github.com/zubairatha/CalBridge/pkg/database"
	"github.com/zubairatha/CalBridge/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	cfg       *config.Config
	db        *database.Client
	schedules *services.ScheduleService
	tasks     *services.TaskService
	creator   *services.EventCreator
	http      *http.Server
}

// NewServer creates the API server with its routes registered.
func NewServer(cfg *config.Config, db *database.Client, schedules *services.ScheduleService, tasks *services.TaskService, creator *services.EventCreator) *Server {
	s := &Server{
		cfg:       cfg,
		db:        db,
		schedules: schedules,
		tasks:     tasks,
		creator:   creator,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())
	s.registerRoutes(router)

	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/api/v1/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	v1.POST("/schedule", s.scheduleHandler)
	v1.GET("/tasks", s.listTasksHandler)
	v1.GET("/tasks/:id", s.getTaskHandler)
	v1.DELETE("/tasks/:id", s.deleteTaskHandler)
	v1.DELETE("/tasks/parent/:id", s.deleteParentHandler)
}

// Start serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return s.http.Addr
}
