package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/pkg/calbridge"
)

func TestParseBusyEvents(t *testing.T) {
	window := Interval{Start: day(10, 0, 0), End: day(12, 0, 0)}

	t.Run("keeps overlapping events", func(t *testing.T) {
		busy, err := parseBusyEvents([]calbridge.Event{
			{Title: "Standup", Calendar: "Work", StartISO: "2025-06-10T09:00:00Z", EndISO: "2025-06-10T09:30:00Z"},
			{Title: "Old", Calendar: "Work", StartISO: "2025-06-01T09:00:00Z", EndISO: "2025-06-01T10:00:00Z"},
		}, window)
		require.NoError(t, err)
		require.Len(t, busy, 1)
		assert.Equal(t, "Standup", busy[0].title)
	})

	t.Run("excludes holiday calendars", func(t *testing.T) {
		busy, err := parseBusyEvents([]calbridge.Event{
			{Title: "Juneteenth", Calendar: "US Holidays", StartISO: "2025-06-10T00:00:00Z", EndISO: "2025-06-11T00:00:00Z"},
		}, window)
		require.NoError(t, err)
		assert.Empty(t, busy)
	})

	t.Run("malformed timestamp is an error", func(t *testing.T) {
		_, err := parseBusyEvents([]calbridge.Event{
			{Title: "Broken", Calendar: "Work", StartISO: "not-a-time", EndISO: "2025-06-10T10:00:00Z"},
		}, window)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Broken")
	})
}

func TestFreeSlots(t *testing.T) {
	window := Interval{Start: day(10, 9, 0), End: day(10, 17, 0)}

	t.Run("no busy events yields whole window", func(t *testing.T) {
		free := freeSlots(nil, window)
		require.Len(t, free, 1)
		assert.Equal(t, window, free[0])
	})

	t.Run("gaps between events", func(t *testing.T) {
		busy := []busyEvent{
			{title: "a", start: day(10, 10, 0), end: day(10, 11, 0)},
			{title: "b", start: day(10, 13, 0), end: day(10, 14, 0)},
		}
		free := freeSlots(busy, window)
		require.Len(t, free, 3)
		assert.Equal(t, Interval{Start: day(10, 9, 0), End: day(10, 10, 0)}, free[0])
		assert.Equal(t, Interval{Start: day(10, 11, 0), End: day(10, 13, 0)}, free[1])
		assert.Equal(t, Interval{Start: day(10, 14, 0), End: day(10, 17, 0)}, free[2])
	})

	t.Run("overlapping events merge", func(t *testing.T) {
		busy := []busyEvent{
			{title: "a", start: day(10, 10, 0), end: day(10, 12, 0)},
			{title: "b", start: day(10, 11, 0), end: day(10, 13, 0)},
		}
		free := freeSlots(busy, window)
		require.Len(t, free, 2)
		assert.Equal(t, day(10, 10, 0), free[0].End)
		assert.Equal(t, day(10, 13, 0), free[1].Start)
	})

	t.Run("event covering the window leaves nothing", func(t *testing.T) {
		busy := []busyEvent{{title: "all-day", start: day(10, 0, 0), end: day(11, 0, 0)}}
		assert.Empty(t, freeSlots(busy, window))
	})

	t.Run("unsorted input handled", func(t *testing.T) {
		busy := []busyEvent{
			{title: "later", start: day(10, 14, 0), end: day(10, 15, 0)},
			{title: "earlier", start: day(10, 9, 30), end: day(10, 10, 0)},
		}
		free := freeSlots(busy, window)
		require.Len(t, free, 3)
		assert.Equal(t, day(10, 9, 0), free[0].Start)
		assert.Equal(t, day(10, 9, 30), free[0].End)
	})
}
