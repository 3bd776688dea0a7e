package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/pkg/agent"
	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/scheduler"
)

// scriptedModel answers each stage prompt with canned JSON.
func scriptedModel(t *testing.T, byStage map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []llm.Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)
		prompt := req.Messages[0].Content

		var content string
		switch {
		case strings.Contains(prompt, "slot extractor"):
			content = byStage["extract"]
		case strings.Contains(prompt, "Absolute Resolver"):
			content = byStage["resolve"]
		case strings.Contains(prompt, "Task Difficulty Analyzer"):
			content = byStage["classify"]
		case strings.Contains(prompt, "task decomposer"):
			content = byStage["decompose"]
		default:
			t.Errorf("unexpected prompt: %.80s", prompt)
		}
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]string{"content": content},
		}))
	}))
}

// scriptedBridge serves calendars, an empty busy list, and event writes.
func scriptedBridge(t *testing.T) *httptest.Server {
	t.Helper()
	eventSeq := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendars":
			require.NoError(t, json.NewEncoder(w).Encode([]calbridge.Calendar{
				{ID: "work-1", Title: "Work", AllowsModifications: true},
				{ID: "home-1", Title: "Home", AllowsModifications: true},
			}))
		case "/events":
			require.NoError(t, json.NewEncoder(w).Encode([]calbridge.Event{}))
		case "/add":
			eventSeq++
			var req calbridge.AddEventRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.NoError(t, json.NewEncoder(w).Encode(calbridge.Event{
				ID:    "evt-" + string(rune('0'+eventSeq)),
				Title: req.Title,
			}))
		default:
			t.Errorf("unexpected bridge path %s", r.URL.Path)
		}
	}))
}

func newScheduleService(t *testing.T, model, bridge *httptest.Server) (*ScheduleService, *TaskService) {
	t.Helper()
	db := newTestDB(t)

	llmClient := llm.NewClient(model.URL, "test-model")
	bridgeClient := calbridge.NewClient(bridge.URL)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, time.June, 11, 10, 30, 0, 0, loc)

	pipeline := agent.NewPipeline(llmClient, bridgeClient, "America/New_York").
		WithClock(func() time.Time { return now })
	allotter := scheduler.NewAllotter(bridgeClient, scheduler.DefaultOptions())
	creator := NewEventCreator(db, bridgeClient)
	creator.sleep = func(time.Duration) {}

	return NewScheduleService(pipeline, allotter, creator), NewTaskService(db)
}

func TestScheduleSimpleEndToEnd(t *testing.T) {
	model := scriptedModel(t, map[string]string{
		"extract":  `{"start_text": "tomorrow morning", "end_text": null, "duration": "1 hour"}`,
		"resolve":  `{"start_text": "June 12, 2025 09:00 am", "end_text": "June 12, 2025 05:00 pm", "duration": "1 hour"}`,
		"classify": `{"calendar": "work-1", "type": "simple", "title": "Write the summary", "duration": "PT1H"}`,
	})
	defer model.Close()
	bridge := scriptedBridge(t)
	defer bridge.Close()

	service, tasks := newScheduleService(t, model, bridge)

	outcome, err := service.Schedule(context.Background(), "write the summary tomorrow morning for an hour", "")
	require.NoError(t, err)

	require.NotNil(t, outcome.Simple)
	assert.Nil(t, outcome.Complex)
	assert.Equal(t, "work-1", outcome.Simple.Calendar)
	assert.Equal(t, 60, outcome.Simple.Slot.Minutes())

	require.NotNil(t, outcome.Result)
	require.Len(t, outcome.Result.Created, 1)
	assert.Empty(t, outcome.Result.Failed)

	record, err := tasks.Get(context.Background(), outcome.Simple.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write the summary", record.Title)
	require.NotNil(t, record.CalendarEventID)
}

func TestScheduleComplexEndToEnd(t *testing.T) {
	model := scriptedModel(t, map[string]string{
		"extract": `{"start_text": null, "end_text": "by Friday", "duration": null}`,
		"resolve": `{"start_text": "June 11, 2025 10:30 am", "end_text": "June 13, 2025 11:59 pm", "duration": null}`,
		"classify": `{"calendar": "work-1", "type": "complex", "title": "Prepare the launch", "duration": null}`,
		"decompose": `{"subtasks": [
			{"title": "Draft the announcement", "duration": "PT1H"},
			{"title": "Review with the team", "duration": "PT45M"}
		]}`,
	})
	defer model.Close()
	bridge := scriptedBridge(t)
	defer bridge.Close()

	service, tasks := newScheduleService(t, model, bridge)

	outcome, err := service.Schedule(context.Background(), "prepare the launch by Friday", "")
	require.NoError(t, err)

	require.NotNil(t, outcome.Complex)
	assert.Nil(t, outcome.Simple)
	require.Len(t, outcome.Complex.Subtasks, 2)
	require.Len(t, outcome.Result.Created, 2)

	children, err := tasks.Children(context.Background(), outcome.Complex.ID)
	require.NoError(t, err)
	assert.Len(t, children, 2)

	// The parent row exists without an event of its own.
	parent, err := tasks.Get(context.Background(), outcome.Complex.ID)
	require.NoError(t, err)
	assert.Nil(t, parent.CalendarEventID)
}
