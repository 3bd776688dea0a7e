package agent

import (
	"context"
	"log/slog"

	"github.com/zubairatha/CalBridge/pkg/agent/prompt"
	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// SlotExtractor pulls verbatim time phrases out of the user query. It never
// normalizes or infers: the query's own words, or nil.
type SlotExtractor struct {
	llm *llm.Client
}

// NewSlotExtractor creates the extraction stage.
func NewSlotExtractor(client *llm.Client) *SlotExtractor {
	return &SlotExtractor{llm: client}
}

// Extract returns the extracted slots. A degraded model response yields
// all-nil slots rather than an error: the resolver's no-time-info path
// handles that case, so extraction failure never aborts the pipeline.
func (e *SlotExtractor) Extract(ctx context.Context, query models.UserQuery) models.Slots {
	messages := []llm.Message{
		{Role: "user", Content: prompt.SlotExtractor(query.Query, query.Timezone)},
	}

	var slots models.Slots
	if err := e.llm.ChatJSON(ctx, messages, llm.TemperatureExtractor, &slots); err != nil {
		slog.Warn("Slot extraction failed, continuing with empty slots",
			"query", query.Query,
			"error", err)
		return models.Slots{}
	}
	return slots
}
