package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubairatha/CalBridge/pkg/models"
)

func str(s string) *string { return &s }

func TestStandardizeCanonical(t *testing.T) {
	clock := fixedClock(t)
	s := NewTimeStandardizer()

	std := s.Standardize(models.Resolution{
		StartText: "June 12, 2025 02:00 pm",
		EndText:   "June 12, 2025 04:00 pm",
		Duration:  str("2 hours"),
	}, clock)

	assert.Equal(t, time.Date(2025, time.June, 12, 14, 0, 0, 0, clock.Location), std.Start)
	assert.Equal(t, time.Date(2025, time.June, 12, 16, 0, 0, 0, clock.Location), std.End)
	require.NotNil(t, std.Duration)
	assert.Equal(t, "PT2H", *std.Duration)
}

func TestStandardizeMeridiem(t *testing.T) {
	clock := fixedClock(t)
	s := NewTimeStandardizer()

	t.Run("noon stays 12", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "June 12, 2025 12:00 pm",
			EndText:   "June 12, 2025 01:00 pm",
		}, clock)
		assert.Equal(t, 12, std.Start.Hour())
	})

	t.Run("midnight becomes 0", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "June 12, 2025 12:30 am",
			EndText:   "June 12, 2025 02:00 am",
		}, clock)
		assert.Equal(t, 0, std.Start.Hour())
		assert.Equal(t, 30, std.Start.Minute())
	})
}

func TestStandardizeEndOfDaySeconds(t *testing.T) {
	clock := fixedClock(t)
	s := NewTimeStandardizer()

	t.Run("11:59 pm end includes the whole minute", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "June 12, 2025 09:00 am",
			EndText:   "June 12, 2025 11:59 pm",
		}, clock)
		assert.Equal(t, 59, std.End.Second())
		assert.Equal(t, 0, std.Start.Second())
	})

	t.Run("any other end gets zero seconds", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "June 12, 2025 09:00 am",
			EndText:   "June 12, 2025 05:00 pm",
		}, clock)
		assert.Equal(t, 0, std.End.Second())
	})
}

func TestStandardizeAnchorVariants(t *testing.T) {
	clock := fixedClock(t)
	s := NewTimeStandardizer()

	t.Run("weekday prefix accepted", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "Thursday, June 12, 2025 09:00 am",
			EndText:   "Thursday, June 12, 2025 10:00 am",
		}, clock)
		assert.Equal(t, 9, std.Start.Hour())
	})

	t.Run("RFC3339 offset discarded for user zone", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "2025-06-12T09:00:00+00:00",
			EndText:   "2025-06-12T17:00:00Z",
		}, clock)
		// The wall-clock fields survive; the zone is the user's.
		assert.Equal(t, 9, std.Start.Hour())
		assert.Equal(t, 17, std.End.Hour())
		assert.Equal(t, clock.Location, std.Start.Location())
	})
}

func TestStandardizePastAdjustment(t *testing.T) {
	clock := fixedClock(t) // Wednesday, June 11, 2025 10:30
	s := NewTimeStandardizer()

	t.Run("fully past window shifts one day forward", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "June 10, 2025 02:00 pm",
			EndText:   "June 10, 2025 04:00 pm",
		}, clock)
		assert.Equal(t, 11, std.Start.Day())
		assert.Equal(t, 11, std.End.Day())
		assert.Equal(t, 14, std.Start.Hour())
	})

	t.Run("past start clamps to now", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "June 11, 2025 09:00 am",
			EndText:   "June 11, 2025 05:00 pm",
		}, clock)
		assert.True(t, std.Start.Equal(clock.Now))
		assert.Equal(t, 17, std.End.Hour())
	})

	t.Run("past end snaps to start date keeping clock time", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "June 12, 2025 09:00 am",
			EndText:   "June 11, 2025 10:00 am",
		}, clock)
		assert.Equal(t, 12, std.End.Day())
		assert.Equal(t, 10, std.End.Hour())
	})
}

func TestStandardizeOrderingRepair(t *testing.T) {
	clock := fixedClock(t)
	s := NewTimeStandardizer()

	std := s.Standardize(models.Resolution{
		StartText: "June 12, 2025 05:00 pm",
		EndText:   "June 12, 2025 09:00 am",
	}, clock)
	assert.Equal(t, time.Date(2025, time.June, 12, 23, 59, 59, 0, clock.Location), std.End)
	assert.True(t, std.Start.Before(std.End))
}

func TestStandardizeIdempotent(t *testing.T) {
	clock := fixedClock(t)
	s := NewTimeStandardizer()

	first := s.Standardize(models.Resolution{
		StartText: "June 12, 2025 09:00 am",
		EndText:   "June 12, 2025 11:59 pm",
		Duration:  str("2 hours"),
	}, clock)

	// Feeding the output back through changes nothing.
	second := s.Standardize(models.Resolution{
		StartText: formatCanonical(first.Start),
		EndText:   formatCanonical(first.End),
		Duration:  first.Duration,
	}, clock)

	assert.True(t, second.Start.Equal(first.Start))
	assert.True(t, second.End.Equal(first.End))
	require.NotNil(t, second.Duration)
	assert.Equal(t, *first.Duration, *second.Duration)
}

func TestStandardizeFallsBackToTodaysWindow(t *testing.T) {
	clock := fixedClock(t) // Wednesday, June 11, 2025 10:30
	s := NewTimeStandardizer()
	endOfToday := time.Date(2025, time.June, 11, 23, 59, 59, 0, clock.Location)

	t.Run("missing anchors", func(t *testing.T) {
		std := s.Standardize(models.Resolution{Duration: str("45 minutes")}, clock)
		assert.True(t, std.Start.Equal(clock.Now))
		assert.True(t, std.End.Equal(endOfToday))
		require.NotNil(t, std.Duration)
		assert.Equal(t, "PT45M", *std.Duration)
	})

	t.Run("unrecognized anchor", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "sometime next week maybe",
			EndText:   "June 12, 2025 05:00 pm",
		}, clock)
		assert.True(t, std.Start.Equal(clock.Now))
		assert.True(t, std.End.Equal(endOfToday))
	})

	t.Run("unknown month", func(t *testing.T) {
		std := s.Standardize(models.Resolution{
			StartText: "Juney 12, 2025 05:00 pm",
			EndText:   "June 12, 2025 06:00 pm",
		}, clock)
		assert.True(t, std.End.Equal(endOfToday))
	})
}

func TestStandardizeUnparseableDurationDropped(t *testing.T) {
	clock := fixedClock(t)
	s := NewTimeStandardizer()

	std := s.Standardize(models.Resolution{
		StartText: "June 12, 2025 09:00 am",
		EndText:   "June 12, 2025 05:00 pm",
		Duration:  str("a while"),
	}, clock)
	assert.Nil(t, std.Duration)
}
