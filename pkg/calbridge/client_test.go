package calbridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendars(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars", r.URL.Path)
		payload := []Calendar{
			{ID: "work-1", Title: "Work", AllowsModifications: true},
			{ID: "holidays", Title: "US Holidays", AllowsModifications: false},
		}
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	calendars, err := client.Calendars(context.Background())
	require.NoError(t, err)
	require.Len(t, calendars, 2)
	assert.Equal(t, "work-1", calendars[0].ID)
	assert.True(t, calendars[0].AllowsModifications)
}

func TestEventsClampsDays(t *testing.T) {
	tests := []struct {
		name string
		days int
		want string
	}{
		{name: "below minimum", days: 0, want: "1"},
		{name: "negative", days: -3, want: "1"},
		{name: "in range", days: 14, want: "14"},
		{name: "above cap", days: 1000, want: "365"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotDays string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotDays = r.URL.Query().Get("days")
				require.NoError(t, json.NewEncoder(w).Encode([]Event{}))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.Events(context.Background(), tt.days, "cal-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, gotDays)
		})
	}
}

func TestAddEvent(t *testing.T) {
	t.Run("returns bridge event", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/add", r.URL.Path)
			var req AddEventRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Standup", req.Title)

			require.NoError(t, json.NewEncoder(w).Encode(Event{ID: "evt-1", Title: req.Title}))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		event, err := client.AddEvent(context.Background(), AddEventRequest{
			CalendarID: "work-1",
			Title:      "Standup",
			StartISO:   "2026-03-02T09:00:00-05:00",
			EndISO:     "2026-03-02T09:30:00-05:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "evt-1", event.ID)
	})

	t.Run("missing event ID is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewEncoder(w).Encode(Event{Title: "Standup"}))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.AddEvent(context.Background(), AddEventRequest{CalendarID: "work-1", Title: "Standup"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "event ID")
	})
}

func TestDeleteEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/delete", r.URL.Path)
		assert.Equal(t, "evt-1", r.URL.Query().Get("event_id"))
		require.NoError(t, json.NewEncoder(w).Encode(DeleteResponse{Deleted: true}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.DeleteEvent(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.True(t, resp.Deleted)
}

func TestErrorClassification(t *testing.T) {
	t.Run("404 is not found and not transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such event", http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.DeleteEvent(context.Background(), "gone")
		require.Error(t, err)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.Code)
		assert.True(t, IsNotFound(err))
		assert.False(t, IsTransient(err))
	})

	t.Run("500 is transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bridge crashed", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.Status(context.Background())
		require.Error(t, err)
		assert.True(t, IsTransient(err))
		assert.False(t, IsNotFound(err))
	})

	t.Run("transport failure is transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		client := NewClient(server.URL)
		_, err := client.Status(context.Background())
		require.Error(t, err)
		assert.True(t, IsTransient(err))
	})
}
