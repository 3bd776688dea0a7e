package scheduler

import "time"

// ClockSpan is a time-of-day range expressed as offsets from midnight.
type ClockSpan struct {
	Start time.Duration
	End   time.Duration
}

// Constraints layers optional rules on top of the baseline work window:
// recurring weekday blackouts, date-specific blackouts, a per-day task cap,
// and a cooldown after each placed task.
type Constraints struct {
	weeklyBlackouts map[time.Weekday][]ClockSpan
	dateBlackouts   map[string][]ClockSpan // keyed by YYYY-MM-DD
	maxTasksPerDay  int                    // 0 = unlimited
	minGapMinutes   int
}

// NewConstraints creates an empty constraint set.
func NewConstraints() *Constraints {
	return &Constraints{
		weeklyBlackouts: make(map[time.Weekday][]ClockSpan),
		dateBlackouts:   make(map[string][]ClockSpan),
	}
}

// AddWeeklyBlackout blocks the span on every occurrence of the weekday.
func (c *Constraints) AddWeeklyBlackout(day time.Weekday, span ClockSpan) *Constraints {
	c.weeklyBlackouts[day] = append(c.weeklyBlackouts[day], span)
	return c
}

// AddDateBlackout blocks the span on one specific date.
func (c *Constraints) AddDateBlackout(date time.Time, span ClockSpan) *Constraints {
	key := date.Format(time.DateOnly)
	c.dateBlackouts[key] = append(c.dateBlackouts[key], span)
	return c
}

// SetMaxTasksPerDay caps placements per calendar day. Zero or negative
// means unlimited.
func (c *Constraints) SetMaxTasksPerDay(cap int) *Constraints {
	if cap < 0 {
		cap = 0
	}
	c.maxTasksPerDay = cap
	return c
}

// SetMinGapMinutes sets the cooldown carved out after each placed task.
func (c *Constraints) SetMinGapMinutes(gap int) *Constraints {
	if gap < 0 {
		gap = 0
	}
	c.minGapMinutes = gap
	return c
}

// MinGapMinutes returns the configured cooldown.
func (c *Constraints) MinGapMinutes() int { return c.minGapMinutes }

// allowsAnother reports whether the per-day cap permits one more placement.
func (c *Constraints) allowsAnother(placed int) bool {
	return c.maxTasksPerDay == 0 || placed < c.maxTasksPerDay
}

// applyBlackouts subtracts this constraint set's blackout spans from each
// day's availability.
func (c *Constraints) applyBlackouts(dayWindows map[time.Time][]Interval) {
	for day, intervals := range dayWindows {
		var blocks []Interval
		for _, span := range c.weeklyBlackouts[day.Weekday()] {
			blocks = append(blocks, Interval{Start: day.Add(span.Start), End: day.Add(span.End)})
		}
		for _, span := range c.dateBlackouts[day.Format(time.DateOnly)] {
			blocks = append(blocks, Interval{Start: day.Add(span.Start), End: day.Add(span.End)})
		}
		for _, block := range blocks {
			intervals = subtractBlock(intervals, block)
		}
		dayWindows[day] = intervals
	}
}
