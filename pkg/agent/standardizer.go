package agent

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/zubairatha/CalBridge/pkg/models"
)

// Canonical "Month DD, YYYY HH:MM am/pm", an optional weekday-prefixed
// variant, and RFC3339 as a fallback for a resolver that ignored the format
// instruction.
var (
	canonicalPattern = regexp.MustCompile(`(?i)^([A-Za-z]+)\s+(\d{2}),\s+(\d{4})\s+(\d{2}):(\d{2})\s+(am|pm)$`)
	extendedPattern  = regexp.MustCompile(`(?i)^[A-Za-z]+,\s+([A-Za-z]+)\s+(\d{2}),\s+(\d{4})\s+(\d{2}):(\d{2})\s+(am|pm)$`)
	isoPattern       = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})([+-]\d{2}:\d{2}|Z)$`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// TimeStandardizer converts resolver output into timezone-aware instants.
// It is pure: no model calls, fully deterministic for a fixed clock.
type TimeStandardizer struct{}

// NewTimeStandardizer creates the standardization stage.
func NewTimeStandardizer() *TimeStandardizer {
	return &TimeStandardizer{}
}

// Standardize parses both anchors, localizes them, applies end-of-day
// second semantics, adjusts windows that fell into the past, and enforces
// start <= end. The duration is normalized to ISO-8601 or dropped. A
// missing or unparseable anchor degrades to the now-to-end-of-today window
// rather than failing the run.
func (s *TimeStandardizer) Standardize(res models.Resolution, clock *ClockContext) models.Standardized {
	start, end, err := parseWindow(res, clock.Location)
	if err != nil {
		slog.Warn("Window standardization failed, falling back to today's window", "error", err)
		start = withSeconds(clock.Now, 0)
		end = time.Date(clock.Now.Year(), clock.Now.Month(), clock.Now.Day(), 23, 59, 59, 0, clock.Location)
	}

	start, end = adjustPastTimes(start, end, clock.Now)
	start, end = enforceOrdering(start, end)

	return models.Standardized{
		Start:    start,
		End:      end,
		Duration: models.NormalizeDuration(res.Duration),
	}
}

// parseWindow parses and localizes both anchors and applies the end-of-day
// second rule.
func parseWindow(res models.Resolution, loc *time.Location) (time.Time, time.Time, error) {
	if res.StartText == "" || res.EndText == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("both start and end anchors are required")
	}

	start, err := parseAnchor(res.StartText, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start anchor: %w", err)
	}
	end, err := parseAnchor(res.EndText, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end anchor: %w", err)
	}

	// An end anchor of "11:59 pm" means end-of-day: include the whole final
	// minute. All other instants get zero seconds.
	start = withSeconds(start, 0)
	if strings.HasSuffix(strings.TrimSpace(res.EndText), "11:59 pm") && end.Hour() == 23 && end.Minute() == 59 {
		end = withSeconds(end, 59)
	} else {
		end = withSeconds(end, 0)
	}
	return start, end, nil
}

// parseAnchor tries the canonical form, the weekday-prefixed form, then
// RFC3339. The result is a naive local time attached to loc; any offset in
// an RFC3339 anchor is discarded in favor of the user's timezone.
func parseAnchor(text string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(text)

	if m := canonicalPattern.FindStringSubmatch(trimmed); m != nil {
		return buildCanonical(m, loc)
	}
	if m := extendedPattern.FindStringSubmatch(trimmed); m != nil {
		return buildCanonical(m, loc)
	}
	if m := isoPattern.FindStringSubmatch(trimmed); m != nil {
		fields := make([]int, 6)
		for i := range fields {
			fields[i], _ = strconv.Atoi(m[i+1])
		}
		return time.Date(fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5], 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", text)
}

func buildCanonical(m []string, loc *time.Location) (time.Time, error) {
	month, ok := monthsByName[strings.ToLower(m[1])]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month %q", m[1])
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	meridiem := strings.ToLower(m[6])
	if meridiem == "pm" && hour != 12 {
		hour += 12
	} else if meridiem == "am" && hour == 12 {
		hour = 0
	}
	if hour > 23 || minute > 59 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("out-of-range datetime fields")
	}
	return time.Date(year, month, day, hour, minute, 0, 0, loc), nil
}

func withSeconds(t time.Time, sec int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), sec, 0, t.Location())
}

// adjustPastTimes repairs windows that resolved into the past:
// start-only in the past clamps start to now; a fully past window shifts
// forward one day; a past end snaps to start's date keeping its clock time.
func adjustPastTimes(start, end, now time.Time) (time.Time, time.Time) {
	startPast := start.Before(now)
	endPast := end.Before(now)

	switch {
	case startPast && endPast:
		return start.AddDate(0, 0, 1), end.AddDate(0, 0, 1)
	case startPast:
		return now, end
	case endPast:
		repaired := time.Date(start.Year(), start.Month(), start.Day(),
			end.Hour(), end.Minute(), end.Second(), 0, end.Location())
		return start, repaired
	default:
		return start, end
	}
}

// enforceOrdering guarantees start <= end, repairing violations to
// end-of-day on start's date.
func enforceOrdering(start, end time.Time) (time.Time, time.Time) {
	if !start.After(end) {
		return start, end
	}
	return start, time.Date(start.Year(), start.Month(), start.Day(), 23, 59, 59, 0, start.Location())
}
