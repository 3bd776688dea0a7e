package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatServer returns an httptest server answering /api/chat with the given
// assistant content.
func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])
		assert.Equal(t, false, req["stream"])

		resp := map[string]any{"message": map[string]string{"content": content}}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestChat(t *testing.T) {
	server := chatServer(t, "hello there")
	defer server.Close()

	client := NewClient(server.URL, "test-model")
	got, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 0.7)
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)
}

func TestChatServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model")
	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 0.7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestChatJSON(t *testing.T) {
	t.Run("decodes fenced output", func(t *testing.T) {
		server := chatServer(t, "```json\n{\"value\": 42}\n```")
		defer server.Close()

		client := NewClient(server.URL, "test-model")
		var target struct {
			Value int `json:"value"`
		}
		err := client.ChatJSON(context.Background(), []Message{{Role: "user", Content: "go"}}, 0.2, &target)
		require.NoError(t, err)
		assert.Equal(t, 42, target.Value)
	})

	t.Run("non-JSON output fails", func(t *testing.T) {
		server := chatServer(t, "I cannot answer in JSON, sorry.")
		defer server.Close()

		client := NewClient(server.URL, "test-model")
		var target map[string]any
		err := client.ChatJSON(context.Background(), []Message{{Role: "user", Content: "go"}}, 0.2, &target)
		assert.ErrorIs(t, err, ErrNoJSON)
	})

	t.Run("malformed JSON after repair fails", func(t *testing.T) {
		server := chatServer(t, `{"value": }`)
		defer server.Close()

		client := NewClient(server.URL, "test-model")
		var target map[string]any
		err := client.ChatJSON(context.Background(), []Message{{Role: "user", Content: "go"}}, 0.2, &target)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})
}
