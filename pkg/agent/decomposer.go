package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zubairatha/CalBridge/pkg/agent/prompt"
	"github.com/zubairatha/CalBridge/pkg/llm"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// maxSubtasks bounds a decomposition; fewer than minSubtasks valid entries
// triggers the default two-phase plan.
const (
	minSubtasks = 2
	maxSubtasks = 5
)

// defaultSubtasks is the fallback when the model produced fewer than two
// usable subtasks.
func defaultSubtasks() []models.Subtask {
	return []models.Subtask{
		{Title: "Plan and outline", Duration: "PT45M"},
		{Title: "Execute and finalize", Duration: "PT1H"},
	}
}

// Decomposer splits a complex task into 2-5 ordered subtasks, each capped
// at three hours.
type Decomposer struct {
	llm *llm.Client
}

// NewDecomposer creates the decomposition stage.
func NewDecomposer(client *llm.Client) *Decomposer {
	return &Decomposer{llm: client}
}

// Decompose breaks the classified complex task into subtasks. Calendar,
// type, and title carry over from the classification unchanged. A model
// failure degrades to the default plan rather than failing the run.
func (d *Decomposer) Decompose(ctx context.Context, cls models.Classification) (models.Decomposition, error) {
	if cls.Type != models.TaskTypeComplex {
		return models.Decomposition{}, NewStageError(StageDecomposer,
			fmt.Errorf("decomposition requires a complex task, got %q", cls.Type))
	}
	if cls.Title == "" {
		return models.Decomposition{}, NewStageError(StageDecomposer,
			fmt.Errorf("task title must not be empty"))
	}

	calendar := "N/A"
	if cls.Calendar != nil {
		calendar = *cls.Calendar
	}
	messages := []llm.Message{
		{Role: "user", Content: prompt.Decomposer(cls.Title, string(cls.Type), calendar)},
	}

	var raw struct {
		Subtasks []models.Subtask `json:"subtasks"`
	}
	if err := d.llm.ChatJSON(ctx, messages, llm.TemperatureDecomposer, &raw); err != nil {
		slog.Warn("Decomposition failed, falling back to the default plan", "error", err)
		raw.Subtasks = nil
	}

	return models.Decomposition{
		Calendar: cls.Calendar,
		Type:     cls.Type,
		Title:    cls.Title,
		Subtasks: sanitizeSubtasks(raw.Subtasks),
	}, nil
}

// sanitizeSubtasks drops entries with unusable titles or durations, caps
// each duration at three hours, substitutes the default plan when fewer
// than two survive, and truncates to five.
func sanitizeSubtasks(raw []models.Subtask) []models.Subtask {
	valid := make([]models.Subtask, 0, len(raw))
	for _, st := range raw {
		title := strings.TrimSpace(st.Title)
		if len(title) < 3 {
			continue
		}
		capped, err := models.CapSubtaskDuration(st.Duration)
		if err != nil {
			continue
		}
		valid = append(valid, models.Subtask{Title: title, Duration: capped})
	}

	if len(valid) < minSubtasks {
		return defaultSubtasks()
	}
	if len(valid) > maxSubtasks {
		valid = valid[:maxSubtasks]
	}
	return valid
}
