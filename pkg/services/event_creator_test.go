package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/ent/eventmap"
	"github.com/zubairatha/CalBridge/ent/task"
	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/database"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// newTestDB opens a fresh migrated SQLite database in a temp directory.
func newTestDB(t *testing.T) *database.Client {
	t.Helper()
	db, err := database.NewClient(context.Background(), database.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// newTestCreator wires an event creator against the given bridge handler,
// with backoff sleeps disabled.
func newTestCreator(t *testing.T, db *database.Client, handler http.HandlerFunc) *EventCreator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creator := NewEventCreator(db, calbridge.NewClient(server.URL))
	creator.sleep = func(time.Duration) {}
	return creator
}

func slotAt(hour int, minutes int) models.Slot {
	start := time.Date(2025, time.June, 12, hour, 0, 0, 0, time.UTC)
	return models.Slot{Start: start, End: start.Add(time.Duration(minutes) * time.Minute)}
}

func simpleScheduled(id string) *models.ScheduledSimple {
	return &models.ScheduledSimple{
		Calendar: "work-1",
		Type:     models.TaskTypeSimple,
		Title:    "Write the summary",
		Slot:     slotAt(9, 60),
		ID:       id,
	}
}

func complexScheduled(parentID string) *models.ScheduledComplex {
	return &models.ScheduledComplex{
		Calendar: "work-1",
		Type:     models.TaskTypeComplex,
		Title:    "Write the report",
		ID:       parentID,
		Subtasks: []models.ScheduledSubtask{
			{Title: "Gather data", Slot: slotAt(9, 60), ID: parentID + "-a", ParentID: parentID},
			{Title: "Write draft", Slot: slotAt(11, 120), ID: parentID + "-b", ParentID: parentID},
		},
	}
}

// addStub answers /add with a deterministic event ID derived from the title.
func addStub(t *testing.T, nextID func(title string) (string, int)) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/add", r.URL.Path)
		var req calbridge.AddEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		id, status := nextID(req.Title)
		if status != http.StatusOK {
			http.Error(w, "rejected", status)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(calbridge.Event{ID: id, Title: req.Title}))
	}
}

func TestCreateSimple(t *testing.T) {
	db := newTestDB(t)
	var gotNotes string
	creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {
		var req calbridge.AddEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotNotes = req.Notes
		require.NoError(t, json.NewEncoder(w).Encode(calbridge.Event{ID: "evt-1"}))
	})

	result, err := creator.CreateSimple(context.Background(), simpleScheduled("task-1"))
	require.NoError(t, err)

	assert.Equal(t, "EC", result.Stage)
	assert.Equal(t, "create", result.Kind)
	require.Len(t, result.Created, 1)
	assert.Equal(t, "evt-1", result.Created[0].CalendarEventID)
	assert.Empty(t, result.Failed)
	assert.Equal(t, "id:task-1, parent_id:null", gotNotes)

	row, err := db.Task.Query().Where(task.ID("task-1")).Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Write the summary", row.Title)
	assert.Nil(t, row.ParentID)

	mapping, err := db.EventMap.Query().Where(eventmap.ID("task-1")).Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "work-1", mapping.CalendarID)
	assert.Equal(t, "evt-1", mapping.CalendarEventID)
}

func TestCreateSimpleIdempotentRerun(t *testing.T) {
	db := newTestDB(t)
	calls := 0
	creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, json.NewEncoder(w).Encode(calbridge.Event{ID: "evt-1"}))
	})

	scheduled := simpleScheduled("task-1")
	_, err := creator.CreateSimple(context.Background(), scheduled)
	require.NoError(t, err)
	_, err = creator.CreateSimple(context.Background(), scheduled)
	require.NoError(t, err)

	// Rows are upserted, not duplicated.
	count, err := db.Task.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, calls)
}

func TestCreateSimplePermanentFailure(t *testing.T) {
	db := newTestDB(t)
	attempts := 0
	creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := creator.CreateSimple(context.Background(), simpleScheduled("task-1"))
	require.Error(t, err)
	// 4xx never retries.
	assert.Equal(t, 1, attempts)

	count, err := db.Task.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateSimpleRetriesTransient(t *testing.T) {
	db := newTestDB(t)
	attempts := 0
	creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(calbridge.Event{ID: "evt-1"}))
	})

	result, err := creator.CreateSimple(context.Background(), simpleScheduled("task-1"))
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	require.Len(t, result.Created, 1)
}

func TestCreateSimpleExhaustsRetries(t *testing.T) {
	db := newTestDB(t)
	attempts := 0
	creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	_, err := creator.CreateSimple(context.Background(), simpleScheduled("task-1"))
	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestCreateSimpleValidation(t *testing.T) {
	creator := NewEventCreator(nil, nil)

	t.Run("wrong type", func(t *testing.T) {
		scheduled := simpleScheduled("task-1")
		scheduled.Type = models.TaskTypeComplex
		_, err := creator.CreateSimple(context.Background(), scheduled)
		assert.True(t, IsValidationError(err))
	})

	t.Run("parent_id must be null", func(t *testing.T) {
		scheduled := simpleScheduled("task-1")
		parent := "someone"
		scheduled.ParentID = &parent
		_, err := creator.CreateSimple(context.Background(), scheduled)
		assert.True(t, IsValidationError(err))
	})

	t.Run("inverted slot", func(t *testing.T) {
		scheduled := simpleScheduled("task-1")
		scheduled.Slot.Start, scheduled.Slot.End = scheduled.Slot.End, scheduled.Slot.Start
		_, err := creator.CreateSimple(context.Background(), scheduled)
		assert.True(t, IsValidationError(err))
	})
}

func TestCreateComplex(t *testing.T) {
	db := newTestDB(t)
	creator := newTestCreator(t, db, addStub(t, func(title string) (string, int) {
		return "evt-" + title[:1], http.StatusOK
	}))

	result, err := creator.CreateComplex(context.Background(), complexScheduled("parent-1"))
	require.NoError(t, err)

	assert.Equal(t, "parent-1", result.TaskID)
	assert.Len(t, result.Created, 2)
	assert.Empty(t, result.Failed)

	// Parent row exists with no event mapping.
	parentRow, err := db.Task.Query().Where(task.ID("parent-1")).Only(context.Background())
	require.NoError(t, err)
	assert.Nil(t, parentRow.ParentID)
	exists, err := db.EventMap.Query().Where(eventmap.ID("parent-1")).Exist(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)

	children, err := db.Task.Query().Where(task.ParentID("parent-1")).All(context.Background())
	require.NoError(t, err)
	assert.Len(t, children, 2)
}

func TestCreateComplexPartialFailure(t *testing.T) {
	db := newTestDB(t)
	creator := newTestCreator(t, db, addStub(t, func(title string) (string, int) {
		if title == "Write draft" {
			return "", http.StatusBadRequest
		}
		return "evt-ok", http.StatusOK
	}))

	result, err := creator.CreateComplex(context.Background(), complexScheduled("parent-1"))
	require.NoError(t, err)

	require.Len(t, result.Created, 1)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "parent-1-b", result.Failed[0].TaskID)

	// Only the confirmed subtask got rows; the failed one left nothing.
	exists, err := db.Task.Query().Where(task.ID("parent-1-a")).Exist(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = db.Task.Query().Where(task.ID("parent-1-b")).Exist(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

// deleteStub answers /add with sequential IDs and /delete with the given
// handler.
func createThenDeleteEnv(t *testing.T, onDelete http.HandlerFunc) (*EventCreator, *database.Client) {
	t.Helper()
	db := newTestDB(t)
	seq := 0
	creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/add":
			seq++
			require.NoError(t, json.NewEncoder(w).Encode(calbridge.Event{ID: "evt-" + string(rune('0'+seq))}))
		case "/delete":
			onDelete(w, r)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	return creator, db
}

func TestDeleteByID(t *testing.T) {
	t.Run("unknown task is skipped", func(t *testing.T) {
		db := newTestDB(t)
		creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {})

		result, err := creator.DeleteByID(context.Background(), "nope")
		require.NoError(t, err)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, "not_found", result.Skipped[0].Reason)
		assert.Equal(t, "id", result.Target)
		assert.Empty(t, result.Deleted)
		assert.Empty(t, result.Errors)
	})

	t.Run("simple task deleted with its event", func(t *testing.T) {
		creator, db := createThenDeleteEnv(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewEncoder(w).Encode(calbridge.DeleteResponse{Deleted: true}))
		})
		_, err := creator.CreateSimple(context.Background(), simpleScheduled("task-1"))
		require.NoError(t, err)

		result, err := creator.DeleteByID(context.Background(), "task-1")
		require.NoError(t, err)
		require.Len(t, result.Deleted, 1)
		assert.Equal(t, "task-1", result.Deleted[0].TaskID)

		exists, err := db.Task.Query().Where(task.ID("task-1")).Exist(context.Background())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("bridge 404 counts as already deleted", func(t *testing.T) {
		creator, db := createThenDeleteEnv(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such event", http.StatusNotFound)
		})
		_, err := creator.CreateSimple(context.Background(), simpleScheduled("task-1"))
		require.NoError(t, err)

		result, err := creator.DeleteByID(context.Background(), "task-1")
		require.NoError(t, err)
		assert.Empty(t, result.Deleted)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, "already_deleted", result.Skipped[0].Reason)

		// Rows are removed either way.
		exists, err := db.Task.Query().Where(task.ID("task-1")).Exist(context.Background())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("bridge failure leaves rows in place", func(t *testing.T) {
		creator, db := createThenDeleteEnv(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		})
		_, err := creator.CreateSimple(context.Background(), simpleScheduled("task-1"))
		require.NoError(t, err)

		result, err := creator.DeleteByID(context.Background(), "task-1")
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Empty(t, result.Deleted)

		exists, err := db.Task.Query().Where(task.ID("task-1")).Exist(context.Background())
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("parent cascades over children", func(t *testing.T) {
		creator, db := createThenDeleteEnv(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewEncoder(w).Encode(calbridge.DeleteResponse{Deleted: true}))
		})
		_, err := creator.CreateComplex(context.Background(), complexScheduled("parent-1"))
		require.NoError(t, err)

		result, err := creator.DeleteByID(context.Background(), "parent-1")
		require.NoError(t, err)
		assert.Len(t, result.Deleted, 2)

		count, err := db.Task.Query().Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestDeleteCascadeKeepsParentWhenChildrenFail(t *testing.T) {
	creator, db := createThenDeleteEnv(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	_, err := creator.CreateComplex(context.Background(), complexScheduled("parent-1"))
	require.NoError(t, err)

	result, err := creator.DeleteByID(context.Background(), "parent-1")
	require.NoError(t, err)

	// Both child deletions failed, so the parent row must survive too:
	// removing it would orphan the children's parent_id references.
	assert.Empty(t, result.Deleted)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, "parent-1", result.Errors[2].TaskID)
	assert.Equal(t, "children still present", result.Errors[2].Reason)

	count, err := db.Task.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDeleteByParentID(t *testing.T) {
	creator, db := createThenDeleteEnv(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(calbridge.DeleteResponse{Deleted: true}))
	})
	_, err := creator.CreateComplex(context.Background(), complexScheduled("parent-1"))
	require.NoError(t, err)

	result, err := creator.DeleteByParentID(context.Background(), "parent-1")
	require.NoError(t, err)
	assert.Equal(t, "parent_id", result.Target)
	assert.Len(t, result.Deleted, 2)

	count, err := db.Task.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteTaskWithoutMapping(t *testing.T) {
	db := newTestDB(t)
	creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {
		t.Error("bridge should not be called for an unmapped task")
	})

	// A task row with no event_map: scheduled but never confirmed.
	require.NoError(t, db.Task.Create().SetID("ghost").SetTitle("Ghost").Exec(context.Background()))

	result, err := creator.DeleteByID(context.Background(), "ghost")
	require.NoError(t, err)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "not_found", result.Skipped[0].Reason)

	exists, err := db.Task.Query().Where(task.ID("ghost")).Exist(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}
