package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zubairatha/CalBridge/pkg/calbridge"
)

// busyEvent is a parsed bridge event used for free-slot math and slot
// validation.
type busyEvent struct {
	title string
	start time.Time
	end   time.Time
}

// isHolidayCalendar reports whether the event lives on a holiday calendar.
// All-day holiday entries would otherwise swallow entire days of
// availability.
func isHolidayCalendar(ev calbridge.Event) bool {
	return strings.Contains(strings.ToLower(ev.Calendar), "holiday")
}

// parseBusyEvents parses bridge events and keeps those that overlap the
// window, excluding holiday calendars. Events with malformed timestamps are
// reported, not skipped: silently ignoring busy time would double-book.
func parseBusyEvents(events []calbridge.Event, window Interval) ([]busyEvent, error) {
	busy := make([]busyEvent, 0, len(events))
	for _, ev := range events {
		if isHolidayCalendar(ev) {
			continue
		}
		start, err := time.Parse(time.RFC3339, ev.StartISO)
		if err != nil {
			return nil, fmt.Errorf("event %q has invalid start %q: %w", ev.Title, ev.StartISO, err)
		}
		end, err := time.Parse(time.RFC3339, ev.EndISO)
		if err != nil {
			return nil, fmt.Errorf("event %q has invalid end %q: %w", ev.Title, ev.EndISO, err)
		}
		if start.Before(window.End) && end.After(window.Start) {
			busy = append(busy, busyEvent{title: ev.Title, start: start, end: end})
		}
	}
	return busy, nil
}

// freeSlots sweeps the window and returns the gaps between busy events.
func freeSlots(busy []busyEvent, window Interval) []Interval {
	sorted := make([]busyEvent, len(busy))
	copy(sorted, busy)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].start.Before(sorted[j].start) })

	var free []Interval
	cursor := window.Start
	for _, ev := range sorted {
		if !ev.end.After(cursor) {
			continue
		}
		if cursor.Before(ev.start) {
			slotEnd := ev.start
			if window.End.Before(slotEnd) {
				slotEnd = window.End
			}
			if cursor.Before(slotEnd) {
				free = append(free, Interval{Start: cursor, End: slotEnd})
			}
		}
		if ev.end.After(cursor) {
			cursor = ev.end
		}
	}
	if cursor.Before(window.End) {
		free = append(free, Interval{Start: cursor, End: window.End})
	}
	return free
}
