package agent

import (
	"strings"
	"time"
)

// canonicalLayout is the exchange format for absolute datetimes between the
// resolver and the standardizer: "Month DD, YYYY HH:MM am/pm".
const canonicalLayout = "January 02, 2006 03:04 pm"

// ClockContext captures a request's view of "now" once at ingress and is
// threaded to the resolver unchanged, so a pipeline run is reproducible for
// a fixed clock.
type ClockContext struct {
	Now      time.Time
	Location *time.Location

	NowISO     string
	Timezone   string
	TodayHuman string
	EndOfToday string
	EndOfWeek  string
	EndOfMonth string
	NextMonday string
	// NextOccurrences maps weekday name to the date of its next occurrence,
	// always strictly in the future.
	NextOccurrences map[string]string
}

// NewClockContext builds the resolver context for the given instant and zone.
func NewClockContext(now time.Time, loc *time.Location) *ClockContext {
	now = now.In(loc)

	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, loc)

	// End of week: Sunday 23:59 of the current week.
	daysUntilSunday := (7 - int(now.Weekday())) % 7
	endOfWeek := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, loc).
		AddDate(0, 0, daysUntilSunday)

	// End of month: last day of the current month, 23:59.
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	lastOfMonth := firstOfNext.AddDate(0, 0, -1)
	endOfMonth := time.Date(lastOfMonth.Year(), lastOfMonth.Month(), lastOfMonth.Day(), 23, 59, 0, 0, loc)

	// Next Monday 09:00, always in the future.
	daysUntilMonday := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if daysUntilMonday == 0 {
		daysUntilMonday = 7
	}
	monday := now.AddDate(0, 0, daysUntilMonday)
	nextMonday := time.Date(monday.Year(), monday.Month(), monday.Day(), 9, 0, 0, 0, loc)

	occurrences := make(map[string]string, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		days := (int(wd) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		next := now.AddDate(0, 0, days)
		occurrences[wd.String()] = next.Format("January 02, 2006")
	}

	return &ClockContext{
		Now:             now,
		Location:        loc,
		NowISO:          now.Format(time.RFC3339),
		Timezone:        loc.String(),
		TodayHuman:      now.Format("Monday, January 02, 2006"),
		EndOfToday:      formatCanonical(endOfToday),
		EndOfWeek:       formatCanonical(endOfWeek),
		EndOfMonth:      formatCanonical(endOfMonth),
		NextMonday:      formatCanonical(nextMonday),
		NextOccurrences: occurrences,
	}
}

// NowCanonical renders the captured instant in the canonical exchange form.
func (c *ClockContext) NowCanonical() string {
	return formatCanonical(c.Now)
}

// formatCanonical renders t as "Month DD, YYYY HH:MM am/pm" with a lowercase
// meridiem, matching what the resolver prompt teaches the model to emit.
func formatCanonical(t time.Time) string {
	return strings.ToLower(t.Format(canonicalLayout))
}

