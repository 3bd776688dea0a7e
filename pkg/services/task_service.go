package services

import (
	"context"
	"fmt"

	"github.com/zubairatha/CalBridge/ent"
	"github.com/zubairatha/CalBridge/ent/eventmap"
	"github.com/zubairatha/CalBridge/ent/task"
	"github.com/zubairatha/CalBridge/pkg/database"
)

// TaskRecord is a stored task joined with its calendar linkage, if any.
// Parents and never-confirmed tasks have no CalendarEventID.
type TaskRecord struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	ParentID        *string `json:"parent_id"`
	CalendarID      *string `json:"calendar_id,omitempty"`
	CalendarEventID *string `json:"calendar_event_id,omitempty"`
}

// TaskService reads the local task store.
type TaskService struct {
	db *database.Client
}

// NewTaskService creates the task read service.
func NewTaskService(db *database.Client) *TaskService {
	return &TaskService{db: db}
}

// Get returns one task with its event linkage. ErrNotFound when absent.
func (s *TaskService) Get(ctx context.Context, id string) (*TaskRecord, error) {
	row, err := s.db.Task.Query().Where(task.ID(id)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	record := toRecord(row)
	if err := s.attachMapping(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns every stored task, parents included, ordered by ID.
func (s *TaskService) List(ctx context.Context) ([]*TaskRecord, error) {
	rows, err := s.db.Task.Query().Order(ent.Asc(task.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	records := make([]*TaskRecord, 0, len(rows))
	for _, row := range rows {
		record := toRecord(row)
		if err := s.attachMapping(ctx, record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Children returns the subtasks stored under a parent ID.
func (s *TaskService) Children(ctx context.Context, parentID string) ([]*TaskRecord, error) {
	rows, err := s.db.Task.Query().Where(task.ParentID(parentID)).Order(ent.Asc(task.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	records := make([]*TaskRecord, 0, len(rows))
	for _, row := range rows {
		record := toRecord(row)
		if err := s.attachMapping(ctx, record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *TaskService) attachMapping(ctx context.Context, record *TaskRecord) error {
	mapping, err := s.db.EventMap.Query().Where(eventmap.ID(record.ID)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load event mapping: %w", err)
	}
	record.CalendarID = &mapping.CalendarID
	record.CalendarEventID = &mapping.CalendarEventID
	return nil
}

func toRecord(row *ent.Task) *TaskRecord {
	return &TaskRecord{
		ID:       row.ID,
		Title:    row.Title,
		ParentID: row.ParentID,
	}
}
