package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// complexGapMinutes is the cooldown carved out between consecutive subtasks
// of a complex task.
const complexGapMinutes = 5

// Allotter schedules classified tasks into free calendar time. It fetches
// busy events from the bridge, computes free slots inside the task window,
// runs the constrained scheduler, and validates every produced slot before
// handing the result to the event creator.
type Allotter struct {
	bridge *calbridge.Client
	opts   Options
}

// NewAllotter creates an allotter with the given work-window options.
func NewAllotter(bridge *calbridge.Client, opts Options) *Allotter {
	return &Allotter{bridge: bridge, opts: opts}
}

// ScheduleSimple places one simple task inside its standardized window.
// Duration precedence: standardizer, then classifier, then the 30-minute
// default.
func (a *Allotter) ScheduleSimple(ctx context.Context, cls models.Classification, std models.Standardized) (*models.ScheduledSimple, error) {
	if cls.Type != models.TaskTypeSimple {
		return nil, fmt.Errorf("expected simple task, got %q", cls.Type)
	}
	if cls.Calendar == nil {
		return nil, errors.New("calendar ID is required for scheduling")
	}
	if cls.Title == "" {
		return nil, errors.New("task title is required for scheduling")
	}

	durationISO := models.DefaultSimpleDuration
	if std.Duration != nil {
		durationISO = *std.Duration
	} else if cls.Duration != nil {
		durationISO = *cls.Duration
	}
	durationMin, err := models.ParseISODuration(durationISO)
	if err != nil {
		return nil, fmt.Errorf("invalid task duration: %w", err)
	}

	window, busy, free, err := a.availability(ctx, *cls.Calendar, std)
	if err != nil {
		return nil, err
	}

	assignments, _, err := Schedule([]int{durationMin}, free, window.End, nil, a.opts)
	if err != nil {
		return nil, err
	}
	if len(assignments) != 1 {
		return nil, fmt.Errorf("scheduler returned %d assignments, expected 1", len(assignments))
	}

	slot := models.Slot{Start: assignments[0].Start, End: assignments[0].End}
	if err := validateSlot(slot, durationMin, window, busy); err != nil {
		return nil, fmt.Errorf("scheduled slot failed validation: %w", err)
	}

	scheduled := &models.ScheduledSimple{
		Calendar: *cls.Calendar,
		Type:     models.TaskTypeSimple,
		Title:    cls.Title,
		Slot:     slot,
		ID:       uuid.New().String(),
		ParentID: nil,
	}
	slog.Info("Scheduled simple task",
		"title", scheduled.Title,
		"start", slot.Start,
		"end", slot.End)
	return scheduled, nil
}

// ScheduleComplex places every subtask of a complex task in order, with a
// cooldown between consecutive subtasks. The parent gets an ID but no slot.
func (a *Allotter) ScheduleComplex(ctx context.Context, dec models.Decomposition, std models.Standardized) (*models.ScheduledComplex, error) {
	if dec.Type != models.TaskTypeComplex {
		return nil, fmt.Errorf("expected complex task, got %q", dec.Type)
	}
	if len(dec.Subtasks) < 2 {
		return nil, fmt.Errorf("complex task must have at least 2 subtasks, got %d", len(dec.Subtasks))
	}
	if dec.Calendar == nil {
		return nil, errors.New("calendar ID is required for scheduling")
	}
	if dec.Title == "" {
		return nil, errors.New("task title is required for scheduling")
	}

	durations := make([]int, len(dec.Subtasks))
	for i, st := range dec.Subtasks {
		minutes, err := models.ParseISODuration(st.Duration)
		if err != nil {
			return nil, fmt.Errorf("subtask %q has invalid duration: %w", st.Title, err)
		}
		durations[i] = minutes
	}

	window, busy, free, err := a.availability(ctx, *dec.Calendar, std)
	if err != nil {
		return nil, err
	}

	constraints := NewConstraints().
		SetMinGapMinutes(a.opts.MinGapMinutes).
		SetMaxTasksPerDay(a.opts.MaxTasksPerDay)
	assignments, _, err := Schedule(durations, free, window.End, constraints, a.opts)
	if err != nil {
		return nil, err
	}
	if len(assignments) != len(dec.Subtasks) {
		return nil, fmt.Errorf("scheduler returned %d assignments, expected %d", len(assignments), len(dec.Subtasks))
	}

	// Back to subtask order for validation and output.
	byIndex := make([]Assignment, len(assignments))
	for _, asg := range assignments {
		byIndex[asg.TaskIndex] = asg
	}

	slots := make([]models.Slot, len(byIndex))
	for i, asg := range byIndex {
		slots[i] = models.Slot{Start: asg.Start, End: asg.End}
		if err := validateSlot(slots[i], durations[i], window, busy); err != nil {
			return nil, fmt.Errorf("subtask %d failed validation: %w", i, err)
		}
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Start.Before(slots[i-1].End) {
			return nil, fmt.Errorf("precedence violation: subtask %d starts before subtask %d ends", i, i-1)
		}
	}
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].Start.Before(slots[j].End) && slots[i].End.After(slots[j].Start) {
				return nil, fmt.Errorf("overlap between subtasks %d and %d", i, j)
			}
		}
	}

	parentID := uuid.New().String()
	scheduledSubtasks := make([]models.ScheduledSubtask, len(dec.Subtasks))
	for i, st := range dec.Subtasks {
		scheduledSubtasks[i] = models.ScheduledSubtask{
			Title:    st.Title,
			Slot:     slots[i],
			ID:       uuid.New().String(),
			ParentID: parentID,
		}
	}

	scheduled := &models.ScheduledComplex{
		Calendar: *dec.Calendar,
		Type:     models.TaskTypeComplex,
		Title:    dec.Title,
		ID:       parentID,
		ParentID: nil,
		Subtasks: scheduledSubtasks,
	}
	slog.Info("Scheduled complex task",
		"title", scheduled.Title,
		"subtasks", len(scheduledSubtasks))
	return scheduled, nil
}

// availability fetches busy events for the window's calendar and computes
// free slots. All times are converted into the window's timezone so the
// interval algebra sees one consistent local clock.
func (a *Allotter) availability(ctx context.Context, calendarID string, std models.Standardized) (Interval, []busyEvent, []Interval, error) {
	loc := std.Start.Location()
	window := Interval{Start: std.Start, End: std.End.In(loc)}

	days := int(window.End.Sub(window.Start).Hours()/24) + 1
	events, err := a.bridge.Events(ctx, days, calendarID)
	if err != nil {
		return Interval{}, nil, nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	busy, err := parseBusyEvents(events, window)
	if err != nil {
		return Interval{}, nil, nil, err
	}
	for i := range busy {
		busy[i].start = busy[i].start.In(loc)
		busy[i].end = busy[i].end.In(loc)
	}

	free := freeSlots(busy, window)
	if len(free) == 0 {
		return Interval{}, nil, nil, errors.New("no free time slots available within window")
	}
	return window, busy, free, nil
}

// validateSlot checks a scheduled slot against the window and busy events:
// inside bounds, exact duration, no busy overlap.
func validateSlot(slot models.Slot, requiredMin int, window Interval, busy []busyEvent) error {
	if slot.Start.Before(window.Start) {
		return fmt.Errorf("slot starts before window")
	}
	if slot.End.After(window.End) {
		return fmt.Errorf("slot ends after window")
	}
	if !slot.Start.Before(slot.End) {
		return fmt.Errorf("slot start is not before end")
	}
	if got := int(slot.End.Sub(slot.Start) / time.Minute); got != requiredMin {
		return fmt.Errorf("duration mismatch: expected %d min, got %d min", requiredMin, got)
	}
	for _, ev := range busy {
		if slot.Start.Before(ev.end) && slot.End.After(ev.start) {
			return fmt.Errorf("overlaps busy event %q", ev.title)
		}
	}
	return nil
}
