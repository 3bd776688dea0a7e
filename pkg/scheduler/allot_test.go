package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/pkg/calbridge"
	"github.com/zubairatha/CalBridge/pkg/models"
)

// eventsStub serves /events with the given list.
func eventsStub(t *testing.T, events []calbridge.Event) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(events))
	}))
}

func simpleClassification(calendar string) models.Classification {
	dur := "PT1H"
	return models.Classification{
		Calendar: &calendar,
		Type:     models.TaskTypeSimple,
		Title:    "Write the summary",
		Duration: &dur,
	}
}

func TestScheduleSimpleTaskPlacement(t *testing.T) {
	server := eventsStub(t, nil)
	defer server.Close()

	allotter := NewAllotter(calbridge.NewClient(server.URL), DefaultOptions())
	std := models.Standardized{
		Start:    day(10, 9, 0),
		End:      day(10, 17, 0),
		Duration: str("PT1H"),
	}

	scheduled, err := allotter.ScheduleSimple(context.Background(), simpleClassification("work-1"), std)
	require.NoError(t, err)

	assert.Equal(t, "work-1", scheduled.Calendar)
	assert.Equal(t, models.TaskTypeSimple, scheduled.Type)
	assert.NotEmpty(t, scheduled.ID)
	assert.Nil(t, scheduled.ParentID)
	assert.Equal(t, day(10, 9, 0), scheduled.Slot.Start)
	assert.Equal(t, day(10, 10, 0), scheduled.Slot.End)
}

func TestScheduleSimpleAvoidsBusyTime(t *testing.T) {
	server := eventsStub(t, []calbridge.Event{
		{Title: "Standup", Calendar: "Work", StartISO: "2025-06-10T09:00:00Z", EndISO: "2025-06-10T10:00:00Z"},
	})
	defer server.Close()

	allotter := NewAllotter(calbridge.NewClient(server.URL), DefaultOptions())
	std := models.Standardized{Start: day(10, 9, 0), End: day(10, 17, 0), Duration: str("PT1H")}

	scheduled, err := allotter.ScheduleSimple(context.Background(), simpleClassification("work-1"), std)
	require.NoError(t, err)
	assert.Equal(t, day(10, 10, 0), scheduled.Slot.Start)
}

func TestScheduleSimpleDurationPrecedence(t *testing.T) {
	server := eventsStub(t, nil)
	defer server.Close()
	allotter := NewAllotter(calbridge.NewClient(server.URL), DefaultOptions())

	t.Run("classifier duration when standardizer has none", func(t *testing.T) {
		cls := simpleClassification("work-1")
		std := models.Standardized{Start: day(10, 9, 0), End: day(10, 17, 0)}

		scheduled, err := allotter.ScheduleSimple(context.Background(), cls, std)
		require.NoError(t, err)
		assert.Equal(t, 60, scheduled.Slot.Minutes())
	})

	t.Run("default 30 minutes when nobody knows", func(t *testing.T) {
		cls := simpleClassification("work-1")
		cls.Duration = nil
		std := models.Standardized{Start: day(10, 9, 0), End: day(10, 17, 0)}

		scheduled, err := allotter.ScheduleSimple(context.Background(), cls, std)
		require.NoError(t, err)
		assert.Equal(t, 30, scheduled.Slot.Minutes())
	})
}

func TestScheduleSimpleRejectsInput(t *testing.T) {
	allotter := NewAllotter(nil, DefaultOptions())
	std := models.Standardized{Start: day(10, 9, 0), End: day(10, 17, 0)}

	t.Run("complex type", func(t *testing.T) {
		cls := simpleClassification("work-1")
		cls.Type = models.TaskTypeComplex
		_, err := allotter.ScheduleSimple(context.Background(), cls, std)
		assert.Error(t, err)
	})

	t.Run("missing calendar", func(t *testing.T) {
		cls := simpleClassification("work-1")
		cls.Calendar = nil
		_, err := allotter.ScheduleSimple(context.Background(), cls, std)
		assert.Error(t, err)
	})

	t.Run("missing title", func(t *testing.T) {
		cls := simpleClassification("work-1")
		cls.Title = ""
		_, err := allotter.ScheduleSimple(context.Background(), cls, std)
		assert.Error(t, err)
	})
}

func TestScheduleSimpleMalformedBusyEventFails(t *testing.T) {
	server := eventsStub(t, []calbridge.Event{
		{Title: "Broken", Calendar: "Work", StartISO: "garbage", EndISO: "2025-06-10T10:00:00Z"},
	})
	defer server.Close()

	allotter := NewAllotter(calbridge.NewClient(server.URL), DefaultOptions())
	std := models.Standardized{Start: day(10, 9, 0), End: day(10, 17, 0), Duration: str("PT1H")}

	_, err := allotter.ScheduleSimple(context.Background(), simpleClassification("work-1"), std)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestScheduleComplexTaskPlacement(t *testing.T) {
	server := eventsStub(t, nil)
	defer server.Close()

	allotter := NewAllotter(calbridge.NewClient(server.URL), DefaultOptions())
	cal := "work-1"
	dec := models.Decomposition{
		Calendar: &cal,
		Type:     models.TaskTypeComplex,
		Title:    "Write the report",
		Subtasks: []models.Subtask{
			{Title: "Gather data", Duration: "PT1H"},
			{Title: "Write draft", Duration: "PT2H"},
		},
	}
	std := models.Standardized{Start: day(10, 0, 0), End: day(12, 0, 0)}

	scheduled, err := allotter.ScheduleComplex(context.Background(), dec, std)
	require.NoError(t, err)

	assert.Equal(t, "Write the report", scheduled.Title)
	assert.NotEmpty(t, scheduled.ID)
	assert.Nil(t, scheduled.ParentID)
	require.Len(t, scheduled.Subtasks, 2)

	for i, st := range scheduled.Subtasks {
		assert.Equal(t, scheduled.ID, st.ParentID, "subtask %d", i)
		assert.NotEmpty(t, st.ID)
		assert.NotEqual(t, scheduled.ID, st.ID)
	}
	// Subtasks come back in decomposition order and never overlap.
	assert.Equal(t, "Gather data", scheduled.Subtasks[0].Title)
	assert.False(t, scheduled.Subtasks[1].Slot.Start.Before(scheduled.Subtasks[0].Slot.End))
}

func TestScheduleComplexHonorsConfiguredGap(t *testing.T) {
	server := eventsStub(t, nil)
	defer server.Close()

	opts := DefaultOptions()
	opts.MinGapMinutes = 30
	allotter := NewAllotter(calbridge.NewClient(server.URL), opts)
	cal := "work-1"
	dec := models.Decomposition{
		Calendar: &cal,
		Type:     models.TaskTypeComplex,
		Title:    "Write the report",
		Subtasks: []models.Subtask{
			{Title: "Gather data", Duration: "PT1H"},
			{Title: "Write draft", Duration: "PT1H"},
		},
	}
	std := models.Standardized{Start: day(10, 6, 0), End: day(10, 23, 0)}

	scheduled, err := allotter.ScheduleComplex(context.Background(), dec, std)
	require.NoError(t, err)
	require.Len(t, scheduled.Subtasks, 2)

	assert.Equal(t, day(10, 6, 0), scheduled.Subtasks[0].Slot.Start)
	assert.Equal(t, day(10, 7, 0), scheduled.Subtasks[0].Slot.End)
	// The configured cooldown, not the default, separates the subtasks.
	assert.Equal(t, day(10, 7, 30), scheduled.Subtasks[1].Slot.Start)
}

func TestScheduleComplexHonorsDailyCap(t *testing.T) {
	server := eventsStub(t, nil)
	defer server.Close()

	opts := DefaultOptions()
	opts.MaxTasksPerDay = 1
	allotter := NewAllotter(calbridge.NewClient(server.URL), opts)
	cal := "work-1"
	dec := models.Decomposition{
		Calendar: &cal,
		Type:     models.TaskTypeComplex,
		Title:    "Write the report",
		Subtasks: []models.Subtask{
			{Title: "Gather data", Duration: "PT1H"},
			{Title: "Write draft", Duration: "PT1H"},
		},
	}

	t.Run("one-day window cannot hold two subtasks", func(t *testing.T) {
		std := models.Standardized{Start: day(10, 6, 0), End: day(10, 23, 0)}
		_, err := allotter.ScheduleComplex(context.Background(), dec, std)
		require.Error(t, err)

		var placement *PlacementError
		require.True(t, errors.As(err, &placement))
		assert.Equal(t, 1, placement.TaskIndex)
	})

	t.Run("two-day window spreads one per day", func(t *testing.T) {
		std := models.Standardized{Start: day(10, 6, 0), End: day(11, 23, 0)}
		scheduled, err := allotter.ScheduleComplex(context.Background(), dec, std)
		require.NoError(t, err)
		require.Len(t, scheduled.Subtasks, 2)
		assert.Equal(t, 10, scheduled.Subtasks[0].Slot.Start.Day())
		assert.Equal(t, 11, scheduled.Subtasks[1].Slot.Start.Day())
	})
}

func TestScheduleComplexRejectsSingleSubtask(t *testing.T) {
	allotter := NewAllotter(nil, DefaultOptions())
	cal := "work-1"
	dec := models.Decomposition{
		Calendar: &cal,
		Type:     models.TaskTypeComplex,
		Title:    "Thin plan",
		Subtasks: []models.Subtask{{Title: "Only step", Duration: "PT1H"}},
	}
	_, err := allotter.ScheduleComplex(context.Background(), dec, models.Standardized{Start: day(10, 0, 0), End: day(12, 0, 0)})
	assert.Error(t, err)
}

func TestValidateSlot(t *testing.T) {
	window := Interval{Start: day(10, 9, 0), End: day(10, 17, 0)}
	busy := []busyEvent{{title: "Standup", start: day(10, 12, 0), end: day(10, 13, 0)}}

	t.Run("valid slot passes", func(t *testing.T) {
		slot := models.Slot{Start: day(10, 9, 0), End: day(10, 10, 0)}
		assert.NoError(t, validateSlot(slot, 60, window, busy))
	})

	t.Run("outside window", func(t *testing.T) {
		slot := models.Slot{Start: day(10, 8, 0), End: day(10, 9, 0)}
		assert.Error(t, validateSlot(slot, 60, window, busy))
	})

	t.Run("wrong duration", func(t *testing.T) {
		slot := models.Slot{Start: day(10, 9, 0), End: day(10, 10, 0)}
		assert.Error(t, validateSlot(slot, 90, window, busy))
	})

	t.Run("busy overlap", func(t *testing.T) {
		slot := models.Slot{Start: day(10, 12, 30), End: day(10, 13, 30)}
		assert.Error(t, validateSlot(slot, 60, window, busy))
	})
}

func str(s string) *string { return &s }
