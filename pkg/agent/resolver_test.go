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

func TestResolve(t *testing.T) {
	clock := fixedClock(t)
	server := llmStub(t, `{"start_text": "June 12, 2025 02:00 pm", "end_text": "June 12, 2025 04:00 pm", "duration": "2 hours"}`)
	defer server.Close()

	resolver := NewAbsoluteResolver(llm.NewClient(server.URL, "test-model"))
	res := resolver.Resolve(context.Background(), models.Slots{
		StartText: str("tomorrow at 2pm"),
		Duration:  str("2 hours"),
	}, clock)

	assert.Equal(t, "June 12, 2025 02:00 pm", res.StartText)
	assert.Equal(t, "June 12, 2025 04:00 pm", res.EndText)
	require.NotNil(t, res.Duration)
	assert.Equal(t, "2 hours", *res.Duration)
}

func TestResolveFallback(t *testing.T) {
	clock := fixedClock(t)

	t.Run("model failure yields today's window", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		resolver := NewAbsoluteResolver(llm.NewClient(server.URL, "test-model"))
		res := resolver.Resolve(context.Background(), models.Slots{Duration: str("45 minutes")}, clock)

		assert.Equal(t, clock.NowCanonical(), res.StartText)
		assert.Equal(t, clock.EndOfToday, res.EndText)
		// Duration survives the fallback.
		require.NotNil(t, res.Duration)
		assert.Equal(t, "45 minutes", *res.Duration)
	})

	t.Run("empty anchors yield today's window", func(t *testing.T) {
		server := llmStub(t, `{"start_text": "", "end_text": "", "duration": null}`)
		defer server.Close()

		resolver := NewAbsoluteResolver(llm.NewClient(server.URL, "test-model"))
		res := resolver.Resolve(context.Background(), models.Slots{}, clock)

		assert.Equal(t, clock.NowCanonical(), res.StartText)
		assert.Equal(t, clock.EndOfToday, res.EndText)
		assert.Nil(t, res.Duration)
	})
}
