package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// llmStub returns an httptest server whose /api/chat endpoint replies with
// the given assistant content.
func llmStub(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{"message": map[string]string{"content": content}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestExtract(t *testing.T) {
	server := llmStub(t, `{"start_text": "tomorrow at 2pm", "end_text": null, "duration": "2 hours"}`)
	defer server.Close()

	extractor := NewSlotExtractor(llm.NewClient(server.URL, "test-model"))
	slots := extractor.Extract(context.Background(), models.UserQuery{
		Query:    "work on the deck tomorrow at 2pm for 2 hours",
		Timezone: "America/New_York",
	})

	require.NotNil(t, slots.StartText)
	assert.Equal(t, "tomorrow at 2pm", *slots.StartText)
	assert.Nil(t, slots.EndText)
	require.NotNil(t, slots.Duration)
	assert.Equal(t, "2 hours", *slots.Duration)
}

func TestExtractDegradesToEmptySlots(t *testing.T) {
	t.Run("bridge failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		}))
		defer server.Close()

		extractor := NewSlotExtractor(llm.NewClient(server.URL, "test-model"))
		slots := extractor.Extract(context.Background(), models.UserQuery{Query: "call mom", Timezone: "America/New_York"})
		assert.Equal(t, models.Slots{}, slots)
	})

	t.Run("non-JSON output", func(t *testing.T) {
		server := llmStub(t, "I could not find any time phrases.")
		defer server.Close()

		extractor := NewSlotExtractor(llm.NewClient(server.URL, "test-model"))
		slots := extractor.Extract(context.Background(), models.UserQuery{Query: "call mom", Timezone: "America/New_York"})
		assert.Equal(t, models.Slots{}, slots)
	})
}
