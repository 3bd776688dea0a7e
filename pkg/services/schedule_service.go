// Package services implements the application services over the pipeline,
// the scheduler, the calendar bridge, and the local task store.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zubairatha/CalBridge/pkg/agent"
	"github.com/zubairatha/CalBridge/pkg/models"
	"github.com/zubairatha/CalBridge/pkg/scheduler"
)

// ScheduleOutcome is the full result of one utterance-to-calendar run:
// every stage artifact, the placed task, and the write report.
type ScheduleOutcome struct {
	Stages  *agent.StageOutputs      `json:"stages"`
	Simple  *models.ScheduledSimple  `json:"simple,omitempty"`
	Complex *models.ScheduledComplex `json:"complex,omitempty"`
	Result  *CreateResult            `json:"result"`
}

// ScheduleService runs the end-to-end flow: understand the utterance, place
// it into free time, write the events, persist the linkage.
type ScheduleService struct {
	pipeline *agent.Pipeline
	allotter *scheduler.Allotter
	creator  *EventCreator
}

// NewScheduleService wires the end-to-end scheduling flow.
func NewScheduleService(pipeline *agent.Pipeline, allotter *scheduler.Allotter, creator *EventCreator) *ScheduleService {
	return &ScheduleService{pipeline: pipeline, allotter: allotter, creator: creator}
}

// Schedule processes one utterance. The understanding stages run first;
// placement and event creation follow the task's type.
func (s *ScheduleService) Schedule(ctx context.Context, query, timezone string) (*ScheduleOutcome, error) {
	stages, err := s.pipeline.Run(ctx, query, timezone)
	if err != nil {
		return nil, err
	}
	outcome := &ScheduleOutcome{Stages: stages}

	switch stages.Classification.Type {
	case models.TaskTypeSimple:
		placed, err := s.allotter.ScheduleSimple(ctx, stages.Classification, stages.Standardized)
		if err != nil {
			return nil, agent.NewStageError(agent.StageAllotter, err)
		}
		outcome.Simple = placed

		result, err := s.creator.CreateSimple(ctx, placed)
		if err != nil {
			return nil, agent.NewStageError(agent.StageCreator, err)
		}
		outcome.Result = result

	case models.TaskTypeComplex:
		placed, err := s.allotter.ScheduleComplex(ctx, *stages.Decomposition, stages.Standardized)
		if err != nil {
			return nil, agent.NewStageError(agent.StageAllotter, err)
		}
		outcome.Complex = placed

		result, err := s.creator.CreateComplex(ctx, placed)
		if err != nil {
			return nil, agent.NewStageError(agent.StageCreator, err)
		}
		outcome.Result = result

	default:
		return nil, fmt.Errorf("unknown task type %q", stages.Classification.Type)
	}

	slog.Info("Schedule request completed",
		"query", query,
		"type", stages.Classification.Type,
		"created", len(outcome.Result.Created),
		"failed", len(outcome.Result.Failed))
	return outcome, nil
}
