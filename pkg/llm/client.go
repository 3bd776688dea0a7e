// Package llm provides the HTTP client for the LLM bridge (an Ollama-style
// JSON chat API) plus the deterministic repair pass applied to model output
// before it reaches typed structs.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Stage-specific sampling temperatures. Extraction and resolution tolerate
// some variety; classification and decomposition need near-deterministic JSON.
const (
	TemperatureExtractor  = 0.7
	TemperatureResolver   = 0.7
	TemperatureDifficulty = 0.2
	TemperatureDecomposer = 0.3
)

// requestTimeout bounds a single chat call.
const requestTimeout = 120 * time.Second

// Message is one turn of the chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client calls the LLM bridge chat endpoint.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
}

// NewClient creates an LLM client for the given bridge base URL and model.
func NewClient(baseURL, model string) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

type chatRequest struct {
	Model    string      `json:"model"`
	Messages []Message   `json:"messages"`
	Options  chatOptions `json:"options"`
	Stream   bool        `json:"stream"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Chat sends the conversation to the bridge and returns the assistant text.
// The call is cancelable through ctx; stream mode is never used.
func (c *Client) Chat(ctx context.Context, messages []Message, temperature float64) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: messages,
		Options:  chatOptions{Temperature: temperature},
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM bridge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("LLM bridge returned %d: %s", resp.StatusCode, payload)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}

	slog.Debug("LLM chat completed",
		"model", c.model,
		"temperature", temperature,
		"duration_ms", time.Since(start).Milliseconds())

	return chat.Message.Content, nil
}

// ChatJSON runs Chat, repairs the raw output, and decodes it into target.
// Every LLM-facing stage goes through this path so malformed output fails in
// one place.
func (c *Client) ChatJSON(ctx context.Context, messages []Message, temperature float64, target any) error {
	raw, err := c.Chat(ctx, messages, temperature)
	if err != nil {
		return err
	}
	repaired, err := RepairJSON(raw)
	if err != nil {
		return fmt.Errorf("LLM output is not JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), target); err != nil {
		return fmt.Errorf("LLM output failed to decode: %w", err)
	}
	return nil
}
