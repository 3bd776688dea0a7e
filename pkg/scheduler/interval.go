// Package scheduler places ordered tasks into free calendar time. The core
// is a deterministic interval algebra over naive local times; the Allotter
// on top of it talks to the calendar bridge and produces scheduled tasks.
package scheduler

import "time"

// Interval is a half-open [Start, End) span of naive local time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the interval length in whole minutes.
func (iv Interval) Minutes() int {
	return int(iv.End.Sub(iv.Start).Minutes())
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func nextMidnight(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, 1)
}

// splitByMidnight splits iv into day-contained pieces, none crossing
// midnight.
func splitByMidnight(iv Interval) []Interval {
	var out []Interval
	cur := iv.Start
	for cur.Before(iv.End) {
		end := nextMidnight(cur)
		if iv.End.Before(end) {
			end = iv.End
		}
		out = append(out, Interval{Start: cur, End: end})
		cur = end
	}
	return out
}

// intersect returns the overlap of two intervals, or false when disjoint.
func intersect(a, b Interval) (Interval, bool) {
	s := a.Start
	if b.Start.After(s) {
		s = b.Start
	}
	e := a.End
	if b.End.Before(e) {
		e = b.End
	}
	if !s.Before(e) {
		return Interval{}, false
	}
	return Interval{Start: s, End: e}, true
}

// subtractBlock removes [block.Start, block.End) from every interval and
// returns the result sorted and merged.
func subtractBlock(intervals []Interval, block Interval) []Interval {
	out := make([]Interval, 0, len(intervals)+1)
	for _, iv := range intervals {
		if !block.End.After(iv.Start) || !block.Start.Before(iv.End) {
			out = append(out, iv)
			continue
		}
		if iv.Start.Before(block.Start) {
			out = append(out, Interval{Start: iv.Start, End: block.Start})
		}
		if block.End.Before(iv.End) {
			out = append(out, Interval{Start: block.End, End: iv.End})
		}
	}
	sortIntervals(out)
	return mergeSorted(out)
}

func sortIntervals(ivs []Interval) {
	for i := 1; i < len(ivs); i++ {
		for j := i; j > 0 && ivs[j].Start.Before(ivs[j-1].Start); j-- {
			ivs[j], ivs[j-1] = ivs[j-1], ivs[j]
		}
	}
}

func mergeSorted(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return ivs
	}
	merged := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &merged[len(merged)-1]
		if last.End.Before(iv.Start) {
			merged = append(merged, iv)
		} else if iv.End.After(last.End) {
			last.End = iv.End
		}
	}
	return merged
}

// findEarliestBlock returns the first sub-interval of the given length, or
// false when none fits.
func findEarliestBlock(intervals []Interval, durationMin int) (Interval, bool) {
	need := time.Duration(durationMin) * time.Minute
	for _, iv := range intervals {
		if iv.End.Sub(iv.Start) >= need {
			return Interval{Start: iv.Start, End: iv.Start.Add(need)}, true
		}
	}
	return Interval{}, false
}

// evenSpreadTargets returns a target day index per task so tasks spread
// evenly over [0, numDays-1]. A single task lands mid-horizon.
func evenSpreadTargets(numTasks, numDays int) []int {
	if numTasks == 1 {
		return []int{numDays / 2}
	}
	targets := make([]int, numTasks)
	for i := range targets {
		// round(i * (numDays-1) / (numTasks-1))
		num := i * (numDays - 1)
		den := numTasks - 1
		targets[i] = (num + den/2) / den
	}
	return targets
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
