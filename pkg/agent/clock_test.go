package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, June 11, 2025 10:30 in America/New_York.
func fixedClock(t *testing.T) *ClockContext {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, time.June, 11, 10, 30, 0, 0, loc)
	require.Equal(t, time.Wednesday, now.Weekday())
	return NewClockContext(now, loc)
}

func TestNewClockContext(t *testing.T) {
	clock := fixedClock(t)

	assert.Equal(t, "America/New_York", clock.Timezone)
	assert.Equal(t, "Wednesday, June 11, 2025", clock.TodayHuman)
	assert.Equal(t, "june 11, 2025 11:59 pm", clock.EndOfToday)
	assert.Equal(t, "june 15, 2025 11:59 pm", clock.EndOfWeek)
	assert.Equal(t, "june 30, 2025 11:59 pm", clock.EndOfMonth)
	assert.Equal(t, "june 16, 2025 09:00 am", clock.NextMonday)
	assert.Equal(t, "june 11, 2025 10:30 am", clock.NowCanonical())
}

func TestNextOccurrencesStrictlyFuture(t *testing.T) {
	clock := fixedClock(t)

	require.Len(t, clock.NextOccurrences, 7)
	// Tomorrow.
	assert.Equal(t, "June 12, 2025", clock.NextOccurrences["Thursday"])
	// Today's weekday jumps a full week ahead.
	assert.Equal(t, "June 18, 2025", clock.NextOccurrences["Wednesday"])
	// Wraps past the weekend.
	assert.Equal(t, "June 17, 2025", clock.NextOccurrences["Tuesday"])
}

func TestNextMondayOnAMonday(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, time.June, 9, 8, 0, 0, 0, loc)
	require.Equal(t, time.Monday, now.Weekday())

	clock := NewClockContext(now, loc)
	assert.Equal(t, "june 16, 2025 09:00 am", clock.NextMonday)
}

func TestEndOfWeekOnSunday(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, loc)
	require.Equal(t, time.Sunday, now.Weekday())

	clock := NewClockContext(now, loc)
	assert.Equal(t, "june 15, 2025 11:59 pm", clock.EndOfWeek)
}

func TestEndOfMonthAcrossLengths(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	february := NewClockContext(time.Date(2025, time.February, 10, 9, 0, 0, 0, loc), loc)
	assert.Equal(t, "february 28, 2025 11:59 pm", february.EndOfMonth)

	leapFebruary := NewClockContext(time.Date(2024, time.February, 10, 9, 0, 0, 0, loc), loc)
	assert.Equal(t, "february 29, 2024 11:59 pm", leapFebruary.EndOfMonth)

	december := NewClockContext(time.Date(2025, time.December, 5, 9, 0, 0, 0, loc), loc)
	assert.Equal(t, "december 31, 2025 11:59 pm", december.EndOfMonth)
}
