package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/config"
	"github.com/zubairatha/CalBridge/pkg/database"
	"github.com/zubairatha/CalBridge/pkg/models"
	"github.com/zubairatha/CalBridge/pkg/services"
)

// newTestServer wires a server over a fresh database and the given bridge
// handler. The LLM-facing schedule service is left nil; schedule endpoint
// tests stop at input validation.
func newTestServer(t *testing.T, bridgeHandler http.HandlerFunc) *Server {
	t.Helper()

	db, err := database.NewClient(context.Background(), database.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	bridge := httptest.NewServer(bridgeHandler)
	t.Cleanup(bridge.Close)

	creator := services.NewEventCreator(db, calbridge.NewClient(bridge.URL))
	tasks := services.NewTaskService(db)
	return NewServer(config.DefaultConfig(), db, nil, tasks, creator)
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, req)
	return rec
}

func scheduledFixture(id string) *models.ScheduledSimple {
	start := time.Date(2025, time.June, 12, 9, 0, 0, 0, time.UTC)
	return &models.ScheduledSimple{
		Calendar: "work-1",
		Type:     models.TaskTypeSimple,
		Title:    "Write the summary",
		Slot:     models.Slot{Start: start, End: start.Add(time.Hour)},
		ID:       id,
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := doRequest(s, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, healthStatusHealthy, health.Status)
	assert.Equal(t, healthStatusHealthy, health.Checks["database"].Status)
}

func TestScheduleEndpointRejectsMissingQuery(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := doRequest(s, http.MethodPost, "/api/v1/schedule", `{"timezone": "America/New_York"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, http.MethodPost, "/api/v1/schedule", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskEndpoints(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/add":
			_ = json.NewEncoder(w).Encode(calbridge.Event{ID: "evt-1"})
		case "/delete":
			_ = json.NewEncoder(w).Encode(calbridge.DeleteResponse{Deleted: true})
		}
	})

	t.Run("empty list", func(t *testing.T) {
		rec := doRequest(s, http.MethodGet, "/api/v1/tasks", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Tasks []services.TaskRecord `json:"tasks"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Tasks)
	})

	t.Run("unknown task is 404", func(t *testing.T) {
		rec := doRequest(s, http.MethodGet, "/api/v1/tasks/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deleting an unknown task reports skipped", func(t *testing.T) {
		rec := doRequest(s, http.MethodDelete, "/api/v1/tasks/nope", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var result services.DeleteResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, "not_found", result.Skipped[0].Reason)
	})

	t.Run("delete round trip", func(t *testing.T) {
		// Seed through the creator the handlers use.
		scheduled := scheduledFixture("task-1")
		_, err := s.creator.CreateSimple(context.Background(), scheduled)
		require.NoError(t, err)

		rec := doRequest(s, http.MethodGet, "/api/v1/tasks/task-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(s, http.MethodDelete, "/api/v1/tasks/task-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var result services.DeleteResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Len(t, result.Deleted, 1)

		rec = doRequest(s, http.MethodGet, "/api/v1/tasks/task-1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := doRequest(s, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
