package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/models"
)

func TestDecompose(t *testing.T) {
	server := llmStub(t, `{"subtasks": [
		{"title": "Outline the proposal", "duration": "PT45M"},
		{"title": "Draft the document", "duration": "PT2H"},
		{"title": "Review and polish", "duration": "PT30M"}
	]}`)
	defer server.Close()

	decomposer := NewDecomposer(llm.NewClient(server.URL, "test-model"))
	cal := "work-1"
	dec, err := decomposer.Decompose(context.Background(), models.Classification{
		Calendar: &cal,
		Type:     models.TaskTypeComplex,
		Title:    "Write the proposal",
	})
	require.NoError(t, err)

	assert.Equal(t, "Write the proposal", dec.Title)
	assert.Equal(t, models.TaskTypeComplex, dec.Type)
	require.Len(t, dec.Subtasks, 3)
	assert.Equal(t, "Outline the proposal", dec.Subtasks[0].Title)
	assert.Equal(t, "PT2H", dec.Subtasks[1].Duration)
}

func TestDecomposeRejectsInput(t *testing.T) {
	decomposer := NewDecomposer(nil)

	t.Run("simple task", func(t *testing.T) {
		_, err := decomposer.Decompose(context.Background(), models.Classification{
			Type:  models.TaskTypeSimple,
			Title: "Call mom",
		})
		assert.Error(t, err)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := decomposer.Decompose(context.Background(), models.Classification{
			Type: models.TaskTypeComplex,
		})
		assert.Error(t, err)
	})
}

func TestDecomposeModelFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	decomposer := NewDecomposer(llm.NewClient(server.URL, "test-model"))
	cal := "work-1"
	dec, err := decomposer.Decompose(context.Background(), models.Classification{
		Calendar: &cal,
		Type:     models.TaskTypeComplex,
		Title:    "Write the proposal",
	})
	require.NoError(t, err)
	assert.Equal(t, defaultSubtasks(), dec.Subtasks)
}

func TestSanitizeSubtasks(t *testing.T) {
	t.Run("drops short titles and bad durations", func(t *testing.T) {
		got := sanitizeSubtasks([]models.Subtask{
			{Title: "ab", Duration: "PT30M"},
			{Title: "Research the topic", Duration: "soon"},
			{Title: "Write the draft", Duration: "PT1H"},
			{Title: "Edit the draft", Duration: "PT45M"},
		})
		require.Len(t, got, 2)
		assert.Equal(t, "Write the draft", got[0].Title)
	})

	t.Run("caps long durations at three hours", func(t *testing.T) {
		got := sanitizeSubtasks([]models.Subtask{
			{Title: "Deep work block", Duration: "PT6H"},
			{Title: "Wrap up", Duration: "PT30M"},
		})
		require.Len(t, got, 2)
		assert.Equal(t, "PT3H", got[0].Duration)
	})

	t.Run("fewer than two valid yields default plan", func(t *testing.T) {
		got := sanitizeSubtasks([]models.Subtask{
			{Title: "Only step", Duration: "PT1H"},
		})
		assert.Equal(t, defaultSubtasks(), got)
	})

	t.Run("truncates to five", func(t *testing.T) {
		raw := make([]models.Subtask, 8)
		for i := range raw {
			raw[i] = models.Subtask{Title: "Step number long enough", Duration: "PT30M"}
		}
		got := sanitizeSubtasks(raw)
		assert.Len(t, got, 5)
	})

	t.Run("empty input yields default plan", func(t *testing.T) {
		assert.Equal(t, defaultSubtasks(), sanitizeSubtasks(nil))
	})
}
