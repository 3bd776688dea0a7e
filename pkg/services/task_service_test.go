package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/pkg/calbridge"
)

func TestTaskServiceGet(t *testing.T) {
	db := newTestDB(t)
	creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(calbridge.Event{ID: "evt-1"}))
	})
	service := NewTaskService(db)

	t.Run("missing task is ErrNotFound", func(t *testing.T) {
		_, err := service.Get(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("created task comes back with mapping", func(t *testing.T) {
		_, err := creator.CreateSimple(context.Background(), simpleScheduled("task-1"))
		require.NoError(t, err)

		record, err := service.Get(context.Background(), "task-1")
		require.NoError(t, err)
		assert.Equal(t, "Write the summary", record.Title)
		assert.Nil(t, record.ParentID)
		require.NotNil(t, record.CalendarEventID)
		assert.Equal(t, "evt-1", *record.CalendarEventID)
		require.NotNil(t, record.CalendarID)
		assert.Equal(t, "work-1", *record.CalendarID)
	})
}

func TestTaskServiceListAndChildren(t *testing.T) {
	db := newTestDB(t)
	creator := newTestCreator(t, db, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(calbridge.Event{ID: "evt-x"}))
	})
	service := NewTaskService(db)

	_, err := creator.CreateComplex(context.Background(), complexScheduled("parent-1"))
	require.NoError(t, err)

	records, err := service.List(context.Background())
	require.NoError(t, err)
	// Parent plus two subtasks.
	require.Len(t, records, 3)

	children, err := service.Children(context.Background(), "parent-1")
	require.NoError(t, err)
	require.Len(t, children, 2)
	for _, child := range children {
		require.NotNil(t, child.ParentID)
		assert.Equal(t, "parent-1", *child.ParentID)
		assert.NotNil(t, child.CalendarEventID)
	}

	// The parent itself has no event linkage.
	parent, err := service.Get(context.Background(), "parent-1")
	require.NoError(t, err)
	assert.Nil(t, parent.CalendarEventID)
}
