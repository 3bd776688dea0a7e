package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSimpleDuration is assumed when neither the standardizer nor the
// difficulty analyzer supplied a duration for a simple task.
const DefaultSimpleDuration = "PT30M"

// MaxSubtaskMinutes caps a single subtask duration (PT3H).
const MaxSubtaskMinutes = 180

// isoDurationPattern accepts the PT[nH][nM] grammar with at least one
// component. Seconds and larger units are deliberately rejected.
var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseISODuration converts an ISO-8601 duration of the form PT[nH][nM] to
// whole minutes. It is case-insensitive and rejects the bare "PT".
func ParseISODuration(iso string) (int, error) {
	m := isoDurationPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(iso)))
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", iso)
	}
	var minutes int
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		minutes += h * 60
	}
	if m[2] != "" {
		mm, _ := strconv.Atoi(m[2])
		minutes += mm
	}
	return minutes, nil
}

// FormatISODuration renders whole minutes as PT[nH][nM].
func FormatISODuration(minutes int) string {
	if minutes <= 0 {
		return "PT0M"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("PT%dH%dM", h, m)
	case h > 0:
		return fmt.Sprintf("PT%dH", h)
	default:
		return fmt.Sprintf("PT%dM", m)
	}
}

var (
	minutesPattern  = regexp.MustCompile(`^(\d+)\s*(?:m|min|mins|minute|minutes)$`)
	hoursPattern    = regexp.MustCompile(`^(\d+)\s*(?:h|hr|hrs|hour|hours)$`)
	compoundPattern = regexp.MustCompile(`^(\d+)\s*(?:h|hr|hrs|hour|hours)\s*(\d+)\s*(?:m|min|mins|minute|minutes)$`)
	decimalPattern  = regexp.MustCompile(`^(\d+\.\d+)\s*(?:h|hr|hrs|hour|hours)$`)
)

// NormalizeDuration converts a natural-language duration phrase to an
// ISO-8601 duration string. Unparseable phrases yield nil — the caller falls
// back to a default rather than guessing.
func NormalizeDuration(phrase *string) *string {
	if phrase == nil {
		return nil
	}
	d := strings.ToLower(strings.TrimSpace(*phrase))
	if d == "" {
		return nil
	}

	// Already ISO-8601
	if _, err := ParseISODuration(d); err == nil {
		iso := strings.ToUpper(d)
		return &iso
	}

	if m := minutesPattern.FindStringSubmatch(d); m != nil {
		n, _ := strconv.Atoi(m[1])
		iso := fmt.Sprintf("PT%dM", n)
		return &iso
	}
	if m := hoursPattern.FindStringSubmatch(d); m != nil {
		n, _ := strconv.Atoi(m[1])
		iso := fmt.Sprintf("PT%dH", n)
		return &iso
	}
	if m := compoundPattern.FindStringSubmatch(d); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		iso := fmt.Sprintf("PT%dH%dM", h, mm)
		return &iso
	}
	if m := decimalPattern.FindStringSubmatch(d); m != nil {
		f, _ := strconv.ParseFloat(m[1], 64)
		h := int(f)
		mm := int((f - float64(h)) * 60)
		iso := fmt.Sprintf("PT%dH%dM", h, mm)
		return &iso
	}

	switch d {
	case "half an hour", "half hour":
		iso := "PT30M"
		return &iso
	case "an hour", "one hour":
		iso := "PT1H"
		return &iso
	}
	return nil
}

// CapSubtaskDuration clamps an ISO duration to the three-hour subtask
// ceiling. Invalid input is reported so the decomposer validator can drop
// the subtask instead.
func CapSubtaskDuration(iso string) (string, error) {
	minutes, err := ParseISODuration(iso)
	if err != nil {
		return "", err
	}
	if minutes > MaxSubtaskMinutes {
		return "PT3H", nil
	}
	return strings.ToUpper(strings.TrimSpace(iso)), nil
}
