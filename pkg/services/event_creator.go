package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zubairatha/CalBridge/ent"
	"github.com/zubairatha/CalBridge/ent/eventmap"
	"github.com/zubairatha/CalBridge/ent/task"
	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/database"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// retryBackoffs are the delays between bridge write attempts. Three
// attempts total; only 5xx and transport failures retry.
var retryBackoffs = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, 2 * time.Second}

const maxAttempts = 3

// CreatedEvent records one successful external write.
type CreatedEvent struct {
	TaskID          string `json:"task_id"`
	CalendarEventID string `json:"calendar_event_id"`
}

// FailedEvent records one subtask whose external write failed.
type FailedEvent struct {
	TaskID string `json:"task_id"`
	Reason string `json:"reason"`
}

// CreateResult reports the outcome of writing a scheduled task. For complex
// tasks the write is partial-tolerant: Created holds the subtasks that made
// it to the calendar, Failed the ones that did not.
type CreateResult struct {
	Stage   string         `json:"stage"`
	Kind    string         `json:"kind"`
	TaskID  string         `json:"task_id"`
	Created []CreatedEvent `json:"created"`
	Failed  []FailedEvent  `json:"failed"`
}

// SkippedDeletion records a task whose external event was already gone.
type SkippedDeletion struct {
	TaskID string `json:"task_id"`
	Reason string `json:"reason"`
}

// FailedDeletion records a task whose deletion failed; its rows remain.
type FailedDeletion struct {
	TaskID string `json:"task_id"`
	Reason string `json:"reason"`
}

// DeleteResult reports the outcome of a deletion, aggregated per task.
type DeleteResult struct {
	Stage   string            `json:"stage"`
	Kind    string            `json:"kind"`
	Target  string            `json:"target"`
	Deleted []CreatedEvent    `json:"deleted"`
	Skipped []SkippedDeletion `json:"skipped"`
	Errors  []FailedDeletion  `json:"errors"`
}

func newDeleteResult(target string) *DeleteResult {
	return &DeleteResult{
		Stage:   "EC",
		Kind:    "delete",
		Target:  target,
		Deleted: []CreatedEvent{},
		Skipped: []SkippedDeletion{},
		Errors:  []FailedDeletion{},
	}
}

// EventCreator writes scheduled tasks to the calendar bridge and records the
// task-to-event linkage. External writes happen first; the database commits
// only what the bridge confirmed.
type EventCreator struct {
	db     *database.Client
	bridge *calbridge.Client

	// sleep is swapped out in tests to avoid real backoff waits.
	sleep func(time.Duration)
}

// NewEventCreator creates the event creation service.
func NewEventCreator(db *database.Client, bridge *calbridge.Client) *EventCreator {
	return &EventCreator{db: db, bridge: bridge, sleep: time.Sleep}
}

// CreateSimple writes one event for a simple task and persists the task and
// event_map rows in a single transaction.
func (s *EventCreator) CreateSimple(ctx context.Context, scheduled *models.ScheduledSimple) (*CreateResult, error) {
	if err := validateSimple(scheduled); err != nil {
		return nil, err
	}

	event, err := s.addEventWithRetry(ctx, calbridge.AddEventRequest{
		CalendarID: scheduled.Calendar,
		Title:      scheduled.Title,
		StartISO:   scheduled.Slot.Start.Format(time.RFC3339),
		EndISO:     scheduled.Slot.End.Format(time.RFC3339),
		Notes:      eventNotes(scheduled.ID, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event for task %s: %w", scheduled.ID, err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertTask(ctx, tx, scheduled.ID, scheduled.Title, nil); err != nil {
		return nil, err
	}
	if err := upsertEventMap(ctx, tx, scheduled.ID, scheduled.Calendar, event.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	slog.Info("Created simple task event",
		"task_id", scheduled.ID,
		"calendar_event_id", event.ID)

	return &CreateResult{
		Stage:   "EC",
		Kind:    "create",
		TaskID:  scheduled.ID,
		Created: []CreatedEvent{{TaskID: scheduled.ID, CalendarEventID: event.ID}},
		Failed:  []FailedEvent{},
	}, nil
}

// CreateComplex writes one event per subtask (none for the parent) and
// persists the parent plus the successfully written subtasks. Per-subtask
// failures are reported but do not abort the batch.
func (s *EventCreator) CreateComplex(ctx context.Context, scheduled *models.ScheduledComplex) (*CreateResult, error) {
	if err := validateComplex(scheduled); err != nil {
		return nil, err
	}

	result := &CreateResult{
		Stage:   "EC",
		Kind:    "create",
		TaskID:  scheduled.ID,
		Created: []CreatedEvent{},
		Failed:  []FailedEvent{},
	}
	createdTitles := make(map[string]string, len(scheduled.Subtasks))

	for _, st := range scheduled.Subtasks {
		event, err := s.addEventWithRetry(ctx, calbridge.AddEventRequest{
			CalendarID: scheduled.Calendar,
			Title:      st.Title,
			StartISO:   st.Slot.Start.Format(time.RFC3339),
			EndISO:     st.Slot.End.Format(time.RFC3339),
			Notes:      eventNotes(st.ID, &st.ParentID),
		})
		if err != nil {
			slog.Warn("Subtask event creation failed",
				"task_id", st.ID,
				"error", err)
			result.Failed = append(result.Failed, FailedEvent{TaskID: st.ID, Reason: err.Error()})
			continue
		}
		result.Created = append(result.Created, CreatedEvent{TaskID: st.ID, CalendarEventID: event.ID})
		createdTitles[st.ID] = st.Title
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Parent row carries metadata only: no event, no event_map.
	if err := upsertTask(ctx, tx, scheduled.ID, scheduled.Title, nil); err != nil {
		return nil, err
	}
	for _, created := range result.Created {
		parentID := scheduled.ID
		if err := upsertTask(ctx, tx, created.TaskID, createdTitles[created.TaskID], &parentID); err != nil {
			return nil, err
		}
		if err := upsertEventMap(ctx, tx, created.TaskID, scheduled.Calendar, created.CalendarEventID); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	slog.Info("Created complex task events",
		"parent_id", scheduled.ID,
		"created", len(result.Created),
		"failed", len(result.Failed))
	return result, nil
}

// DeleteByID removes the task's external event and rows. If id is a parent,
// the deletion cascades over its children before removing the parent row.
func (s *EventCreator) DeleteByID(ctx context.Context, id string) (*DeleteResult, error) {
	result := newDeleteResult("id")

	exists, err := s.db.Task.Query().Where(task.ID(id)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}
	if !exists {
		result.Skipped = append(result.Skipped, SkippedDeletion{TaskID: id, Reason: "not_found"})
		return result, nil
	}

	children, err := s.db.Task.Query().Where(task.ParentID(id)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up children: %w", err)
	}

	if len(children) > 0 {
		if err := s.deleteChildrenThenParent(ctx, id, children, result); err != nil {
			return nil, err
		}
		return result, nil
	}

	s.deleteLeaf(ctx, id, result)
	return result, nil
}

// DeleteByParentID removes every child of the parent, then the parent row.
func (s *EventCreator) DeleteByParentID(ctx context.Context, parentID string) (*DeleteResult, error) {
	result := newDeleteResult("parent_id")

	exists, err := s.db.Task.Query().Where(task.ID(parentID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up parent: %w", err)
	}
	if !exists {
		result.Skipped = append(result.Skipped, SkippedDeletion{TaskID: parentID, Reason: "not_found"})
		return result, nil
	}

	children, err := s.db.Task.Query().Where(task.ParentID(parentID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up children: %w", err)
	}
	if err := s.deleteChildrenThenParent(ctx, parentID, children, result); err != nil {
		return nil, err
	}
	return result, nil
}

// deleteChildrenThenParent cascades over the children and removes the parent
// row only once every child row is gone. Children whose deletion failed keep
// their rows and still reference the parent, so it stays too and lands in
// Errors.
func (s *EventCreator) deleteChildrenThenParent(ctx context.Context, parentID string, children []*ent.Task, result *DeleteResult) error {
	errsBefore := len(result.Errors)
	for _, child := range children {
		s.deleteLeaf(ctx, child.ID, result)
	}
	if len(result.Errors) > errsBefore {
		result.Errors = append(result.Errors, FailedDeletion{TaskID: parentID, Reason: "children still present"})
		return nil
	}
	return s.deleteTaskRow(ctx, parentID)
}

// deleteLeaf removes one leaf task: its external event (404 and
// already-gone responses count as skipped, not errors), then its rows.
// A bridge failure leaves the rows in place and lands in Errors.
func (s *EventCreator) deleteLeaf(ctx context.Context, id string, result *DeleteResult) {
	mapping, err := s.db.EventMap.Query().Where(eventmap.ID(id)).Only(ctx)
	if ent.IsNotFound(err) {
		// No external event was ever confirmed for this task.
		if err := s.deleteTaskRow(ctx, id); err != nil {
			result.Errors = append(result.Errors, FailedDeletion{TaskID: id, Reason: err.Error()})
			return
		}
		result.Skipped = append(result.Skipped, SkippedDeletion{TaskID: id, Reason: "not_found"})
		return
	}
	if err != nil {
		result.Errors = append(result.Errors, FailedDeletion{TaskID: id, Reason: err.Error()})
		return
	}

	alreadyGone, err := s.deleteEventWithRetry(ctx, mapping.CalendarEventID)
	if err != nil {
		result.Errors = append(result.Errors, FailedDeletion{TaskID: id, Reason: err.Error()})
		return
	}

	if err := s.deleteLeafRows(ctx, id); err != nil {
		result.Errors = append(result.Errors, FailedDeletion{TaskID: id, Reason: err.Error()})
		return
	}

	if alreadyGone {
		result.Skipped = append(result.Skipped, SkippedDeletion{TaskID: id, Reason: "already_deleted"})
	} else {
		result.Deleted = append(result.Deleted, CreatedEvent{TaskID: id, CalendarEventID: mapping.CalendarEventID})
	}
}

func (s *EventCreator) deleteLeafRows(ctx context.Context, id string) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.EventMap.Delete().Where(eventmap.ID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event mapping: %w", err)
	}
	if _, err := tx.Task.Delete().Where(task.ID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete task row: %w", err)
	}
	return tx.Commit()
}

func (s *EventCreator) deleteTaskRow(ctx context.Context, id string) error {
	if _, err := s.db.Task.Delete().Where(task.ID(id)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete task row: %w", err)
	}
	return nil
}

// addEventWithRetry posts one event to the bridge, retrying transient
// failures with increasing backoff. 4xx responses fail immediately.
func (s *EventCreator) addEventWithRetry(ctx context.Context, req calbridge.AddEventRequest) (*calbridge.Event, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		event, err := s.bridge.AddEvent(ctx, req)
		if err == nil {
			return event, nil
		}
		lastErr = err
		if !calbridge.IsTransient(err) {
			return nil, err
		}
		if attempt < maxAttempts-1 {
			s.sleep(retryBackoffs[attempt])
		}
	}
	return nil, lastErr
}

// deleteEventWithRetry removes a bridge event. It returns alreadyGone=true
// when the bridge reports the event missing (404, or deleted=false).
func (s *EventCreator) deleteEventWithRetry(ctx context.Context, eventID string) (alreadyGone bool, err error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := s.bridge.DeleteEvent(ctx, eventID)
		if err == nil {
			return !resp.Deleted, nil
		}
		if calbridge.IsNotFound(err) {
			return true, nil
		}
		lastErr = err
		if !calbridge.IsTransient(err) {
			return false, err
		}
		if attempt < maxAttempts-1 {
			s.sleep(retryBackoffs[attempt])
		}
	}
	return false, lastErr
}

func upsertTask(ctx context.Context, tx *ent.Tx, id, title string, parentID *string) error {
	err := tx.Task.Create().
		SetID(id).
		SetTitle(title).
		SetNillableParentID(parentID).
		OnConflictColumns(task.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert task %s: %w", id, err)
	}
	return nil
}

func upsertEventMap(ctx context.Context, tx *ent.Tx, taskID, calendarID, calendarEventID string) error {
	err := tx.EventMap.Create().
		SetID(taskID).
		SetCalendarID(calendarID).
		SetCalendarEventID(calendarEventID).
		OnConflictColumns(eventmap.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert event mapping for task %s: %w", taskID, err)
	}
	return nil
}

// eventNotes renders the linkage stored in the calendar event's notes.
func eventNotes(taskID string, parentID *string) string {
	parent := "null"
	if parentID != nil {
		parent = *parentID
	}
	return fmt.Sprintf("id:%s, parent_id:%s", taskID, parent)
}

func validateSimple(scheduled *models.ScheduledSimple) error {
	if scheduled == nil {
		return NewValidationError("task", "scheduled task is required")
	}
	if scheduled.Type != models.TaskTypeSimple {
		return NewValidationError("type", fmt.Sprintf("expected simple, got %q", scheduled.Type))
	}
	if scheduled.Calendar == "" {
		return NewValidationError("calendar", "calendar ID is required")
	}
	if scheduled.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if scheduled.ID == "" {
		return NewValidationError("id", "task ID is required")
	}
	if scheduled.ParentID != nil {
		return NewValidationError("parent_id", "simple task must have parent_id = null")
	}
	if !scheduled.Slot.Start.Before(scheduled.Slot.End) {
		return NewValidationError("slot", "slot start must be before end")
	}
	return nil
}

func validateComplex(scheduled *models.ScheduledComplex) error {
	if scheduled == nil {
		return NewValidationError("task", "scheduled task is required")
	}
	if scheduled.Type != models.TaskTypeComplex {
		return NewValidationError("type", fmt.Sprintf("expected complex, got %q", scheduled.Type))
	}
	if scheduled.Calendar == "" {
		return NewValidationError("calendar", "calendar ID is required")
	}
	if scheduled.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if scheduled.ID == "" {
		return NewValidationError("id", "parent task ID is required")
	}
	if scheduled.ParentID != nil {
		return NewValidationError("parent_id", "parent task must have parent_id = null")
	}
	if len(scheduled.Subtasks) < 1 || len(scheduled.Subtasks) > 5 {
		return NewValidationError("subtasks", fmt.Sprintf("complex task must have 1-5 subtasks, got %d", len(scheduled.Subtasks)))
	}
	for i, st := range scheduled.Subtasks {
		if st.Title == "" {
			return NewValidationError("subtasks", fmt.Sprintf("subtask %d missing title", i+1))
		}
		if st.ID == "" {
			return NewValidationError("subtasks", fmt.Sprintf("subtask %d missing ID", i+1))
		}
		if st.ParentID != scheduled.ID {
			return NewValidationError("subtasks", fmt.Sprintf("subtask %d parent_id must match parent ID", i+1))
		}
		if !st.Slot.Start.Before(st.Slot.End) {
			return NewValidationError("subtasks", fmt.Sprintf("subtask %d slot start must be before end", i+1))
		}
	}
	return nil
}
