// Package models defines the data exchanged between pipeline stages and
// returned by the API. Stage outputs are plain structs with JSON tags; the
// LLM-facing stages decode into them after the repair pass in pkg/llm.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TaskType classifies a task as a single event or a decomposable parent.
type TaskType string

const (
	TaskTypeSimple  TaskType = "simple"
	TaskTypeComplex TaskType = "complex"
)

// UserQuery is the validated pipeline input. Immutable once created.
type UserQuery struct {
	Query    string `json:"query"`
	Timezone string `json:"timezone"`
}

// Slots holds verbatim time phrases extracted from the query by the slot
// extractor. Nil means the user did not state that component.
type Slots struct {
	StartText *string `json:"start_text"`
	EndText   *string `json:"end_text"`
	Duration  *string `json:"duration"`
}

// Resolution holds canonical absolute datetime strings produced by the
// absolute resolver, in the form "Month DD, YYYY HH:MM am/pm". Duration is
// copied through unchanged — it is metadata and never moves start or end.
type Resolution struct {
	StartText string  `json:"start_text"`
	EndText   string  `json:"end_text"`
	Duration  *string `json:"duration"`
}

// Standardized is the time standardizer output: timezone-aware instants with
// start <= end, and the duration normalized to ISO-8601 (or nil).
type Standardized struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration *string   `json:"duration"`
}

// Classification is the task difficulty analyzer output.
// Invariant: Duration != nil implies Type == TaskTypeSimple, and Duration is
// byte-identical to the standardizer's duration.
type Classification struct {
	Calendar *string  `json:"calendar"`
	Type     TaskType `json:"type"`
	Title    string   `json:"title"`
	Duration *string  `json:"duration"`
}

// Subtask is one ordered step of a decomposed complex task.
type Subtask struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// Decomposition is the decomposer output for a complex task:
// 2-5 ordered subtasks, each at most three hours.
type Decomposition struct {
	Calendar *string   `json:"calendar"`
	Type     TaskType  `json:"type"`
	Title    string    `json:"title"`
	Subtasks []Subtask `json:"subtasks"`
}

// Slot is a concrete [start, end] interval. It serializes as a two-element
// array of RFC3339 strings with offset, matching the calendar bridge wire
// format.
type Slot struct {
	Start time.Time
	End   time.Time
}

// MarshalJSON encodes the slot as ["start", "end"].
func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{
		s.Start.Format(time.RFC3339),
		s.End.Format(time.RFC3339),
	})
}

// UnmarshalJSON decodes a ["start", "end"] pair.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	start, err := time.Parse(time.RFC3339, pair[0])
	if err != nil {
		return fmt.Errorf("invalid slot start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, pair[1])
	if err != nil {
		return fmt.Errorf("invalid slot end: %w", err)
	}
	s.Start = start
	s.End = end
	return nil
}

// Minutes returns the slot length in whole minutes.
func (s Slot) Minutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// ScheduledSimple is a placed simple task, ready for the event creator.
type ScheduledSimple struct {
	Calendar string   `json:"calendar"`
	Type     TaskType `json:"type"`
	Title    string   `json:"title"`
	Slot     Slot     `json:"slot"`
	ID       string   `json:"id"`
	ParentID *string  `json:"parent_id"`
}

// ScheduledSubtask is a placed subtask of a complex task.
type ScheduledSubtask struct {
	Title    string `json:"title"`
	Slot     Slot   `json:"slot"`
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
}

// ScheduledComplex is a placed complex task. The parent itself has no slot
// and no calendar event; only subtasks are written to the bridge.
type ScheduledComplex struct {
	Calendar string             `json:"calendar"`
	Type     TaskType           `json:"type"`
	Title    string             `json:"title"`
	ID       string             `json:"id"`
	ParentID *string            `json:"parent_id"`
	Subtasks []ScheduledSubtask `json:"subtasks"`
}
