package agent

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

	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// scriptedLLM routes /api/chat calls to canned JSON by recognizing which
// stage prompt arrived.
func scriptedLLM(t *testing.T, byStage map[string]string) *httptest.Server {
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
		resp := map[string]any{"message": map[string]string{"content": content}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestPipelineSimpleTask(t *testing.T) {
	model := scriptedLLM(t, map[string]string{
		"extract":  `{"start_text": "tomorrow at 2pm", "end_text": null, "duration": "2 hours"}`,
		"resolve":  `{"start_text": "June 12, 2025 02:00 pm", "end_text": "June 12, 2025 11:59 pm", "duration": "2 hours"}`,
		"classify": `{"calendar": "work-1", "type": "simple", "title": "Work on the deck", "duration": "PT2H"}`,
	})
	defer model.Close()
	bridge := bridgeStub(t, defaultCalendars())
	defer bridge.Close()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, time.June, 11, 10, 30, 0, 0, loc)

	pipeline := NewPipeline(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL), "America/New_York").
		WithClock(func() time.Time { return now })

	out, err := pipeline.Run(context.Background(), "work on the deck tomorrow at 2pm for 2 hours", "")
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", out.Query.Timezone)
	require.NotNil(t, out.Slots.StartText)
	assert.Equal(t, "tomorrow at 2pm", *out.Slots.StartText)

	assert.Equal(t, time.Date(2025, time.June, 12, 14, 0, 0, 0, loc), out.Standardized.Start)
	assert.Equal(t, time.Date(2025, time.June, 12, 23, 59, 59, 0, loc), out.Standardized.End)
	require.NotNil(t, out.Standardized.Duration)
	assert.Equal(t, "PT2H", *out.Standardized.Duration)

	assert.Equal(t, models.TaskTypeSimple, out.Classification.Type)
	assert.Nil(t, out.Decomposition)
}

func TestPipelineComplexTask(t *testing.T) {
	model := scriptedLLM(t, map[string]string{
		"extract": `{"start_text": null, "end_text": "by end of week", "duration": null}`,
		"resolve": `{"start_text": "June 11, 2025 10:30 am", "end_text": "June 15, 2025 11:59 pm", "duration": null}`,
		"classify": `{"calendar": "work-1", "type": "complex", "title": "Write the quarterly report", "duration": null}`,
		"decompose": `{"subtasks": [
			{"title": "Gather the numbers", "duration": "PT1H"},
			{"title": "Draft the report", "duration": "PT2H"},
			{"title": "Review with the team", "duration": "PT45M"}
		]}`,
	})
	defer model.Close()
	bridge := bridgeStub(t, defaultCalendars())
	defer bridge.Close()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, time.June, 11, 10, 30, 0, 0, loc)

	pipeline := NewPipeline(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL), "America/New_York").
		WithClock(func() time.Time { return now })

	out, err := pipeline.Run(context.Background(), "write the quarterly report by end of week", "")
	require.NoError(t, err)

	assert.Equal(t, models.TaskTypeComplex, out.Classification.Type)
	require.NotNil(t, out.Decomposition)
	require.Len(t, out.Decomposition.Subtasks, 3)
	assert.Equal(t, "Gather the numbers", out.Decomposition.Subtasks[0].Title)
	assert.Equal(t, 59, out.Standardized.End.Second())
}

func TestPipelineDegradesWhenModelDown(t *testing.T) {
	model := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer model.Close()
	bridge := bridgeStub(t, defaultCalendars())
	defer bridge.Close()

	now := time.Date(2025, time.June, 11, 10, 30, 0, 0, time.UTC)
	pipeline := NewPipeline(llm.NewClient(model.URL, "test-model"), calbridge.NewClient(bridge.URL), "UTC").
		WithClock(func() time.Time { return now })

	out, err := pipeline.Run(context.Background(), "send the signed NDA to the client", "UTC")
	require.NoError(t, err)

	// Every model-backed stage degraded: today's window, keyword calendar,
	// the default plan.
	assert.True(t, out.Standardized.Start.Equal(now))
	assert.Equal(t, 23, out.Standardized.End.Hour())
	assert.Equal(t, 59, out.Standardized.End.Second())

	assert.Equal(t, models.TaskTypeComplex, out.Classification.Type)
	require.NotNil(t, out.Classification.Calendar)
	assert.Equal(t, "work-1", *out.Classification.Calendar)

	require.NotNil(t, out.Decomposition)
	assert.Len(t, out.Decomposition.Subtasks, 2)
}

func TestPipelineRejectsEmptyQuery(t *testing.T) {
	pipeline := NewPipeline(nil, nil, "America/New_York")
	_, err := pipeline.Run(context.Background(), "   ", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UQ")
}
