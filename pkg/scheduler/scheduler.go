package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Default daily work window.
const (
	DefaultWorkStartHour = 6
	DefaultWorkEndHour   = 23
)

// Options configures the daily work window applied to every eligible day.
type Options struct {
	WorkStartHour int
	WorkEndHour   int
	// MinGapMinutes and MaxTasksPerDay feed the constraint set the allotter
	// builds for complex tasks; Schedule itself reads only the work window.
	MinGapMinutes  int
	MaxTasksPerDay int
}

// DefaultOptions returns the 6 AM to 11 PM work window with the standard
// subtask cooldown and no per-day cap.
func DefaultOptions() Options {
	return Options{
		WorkStartHour: DefaultWorkStartHour,
		WorkEndHour:   DefaultWorkEndHour,
		MinGapMinutes: complexGapMinutes,
	}
}

// Assignment is one placed task.
type Assignment struct {
	TaskIndex   int
	DurationMin int
	Day         time.Time
	Start       time.Time
	End         time.Time
}

// ErrNoEligibleDays means no working-day availability survived the deadline
// cap and blackout subtraction.
var ErrNoEligibleDays = errors.New("no eligible working-day intervals before deadline after applying constraints")

// InfeasibleError reports that total demand exceeds total availability.
type InfeasibleError struct {
	NeedMin  int
	AvailMin int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("infeasible: need %d min but only %d min available", e.NeedMin, e.AvailMin)
}

// PlacementError reports that one task could not be placed even though the
// aggregate feasibility check passed.
type PlacementError struct {
	TaskIndex   int
	DurationMin int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("could not place task index %d (%d min) before deadline with current constraints", e.TaskIndex, e.DurationMin)
}

// Schedule places ordered tasks into the given free slots, respecting:
// no midnight crossing, the daily work window, the deadline, and any extra
// constraints. Placement is greedy in task order, spread evenly across
// eligible days with a fewest-tasks-per-day tie-break. Returned assignments
// are sorted by start time, then task index.
func Schedule(tasksMin []int, slots []Interval, deadline time.Time, constraints *Constraints, opts Options) ([]Assignment, map[time.Time]int, error) {
	if constraints == nil {
		constraints = NewConstraints()
	}

	// Day-contained availability pieces, capped at the deadline.
	var pieces []Interval
	for _, slot := range slots {
		if !slot.Start.Before(slot.End) {
			continue
		}
		pieces = append(pieces, splitByMidnight(slot)...)
	}
	var capped []Interval
	for _, piece := range pieces {
		if !piece.Start.Before(deadline) {
			continue
		}
		if piece.End.After(deadline) {
			piece.End = deadline
		}
		capped = append(capped, piece)
	}

	// Intersect each piece with its day's work window.
	dayWindows := make(map[time.Time][]Interval)
	for _, piece := range capped {
		d0 := dayStart(piece.Start)
		window := Interval{
			Start: d0.Add(time.Duration(opts.WorkStartHour) * time.Hour),
			End:   d0.Add(time.Duration(opts.WorkEndHour) * time.Hour),
		}
		if inter, ok := intersect(piece, window); ok {
			dayWindows[d0] = append(dayWindows[d0], inter)
		}
	}
	for day := range dayWindows {
		sortIntervals(dayWindows[day])
	}

	constraints.applyBlackouts(dayWindows)
	for day, intervals := range dayWindows {
		if len(intervals) == 0 {
			delete(dayWindows, day)
		}
	}

	eligibleDays := make([]time.Time, 0, len(dayWindows))
	for day := range dayWindows {
		eligibleDays = append(eligibleDays, day)
	}
	sort.Slice(eligibleDays, func(i, j int) bool { return eligibleDays[i].Before(eligibleDays[j]) })
	if len(eligibleDays) == 0 {
		return nil, nil, ErrNoEligibleDays
	}

	totalAvail := 0
	for _, day := range eligibleDays {
		for _, iv := range dayWindows[day] {
			totalAvail += iv.Minutes()
		}
	}
	totalNeed := 0
	for _, dur := range tasksMin {
		totalNeed += dur
	}
	if totalAvail < totalNeed {
		return nil, nil, &InfeasibleError{NeedMin: totalNeed, AvailMin: totalAvail}
	}

	targets := evenSpreadTargets(len(tasksMin), len(eligibleDays))

	assignments := make([]Assignment, 0, len(tasksMin))
	perDayCount := make(map[time.Time]int, len(eligibleDays))
	dayIndex := make(map[time.Time]int, len(eligibleDays))
	for i, day := range eligibleDays {
		perDayCount[day] = 0
		dayIndex[day] = i
	}

	for idx, dur := range tasksMin {
		target := targets[idx]

		ranked := make([]time.Time, len(eligibleDays))
		copy(ranked, eligibleDays)
		sort.SliceStable(ranked, func(i, j int) bool {
			di, dj := abs(dayIndex[ranked[i]]-target), abs(dayIndex[ranked[j]]-target)
			if di != dj {
				return di < dj
			}
			return perDayCount[ranked[i]] < perDayCount[ranked[j]]
		})

		placed := false
		for _, day := range ranked {
			if !constraints.allowsAnother(perDayCount[day]) {
				continue
			}
			block, ok := findEarliestBlock(dayWindows[day], dur)
			if !ok {
				continue
			}

			assignments = append(assignments, Assignment{
				TaskIndex:   idx,
				DurationMin: dur,
				Day:         day,
				Start:       block.Start,
				End:         block.End,
			})
			dayWindows[day] = subtractBlock(dayWindows[day], block)
			if gap := constraints.MinGapMinutes(); gap > 0 {
				cooldown := Interval{Start: block.End, End: block.End.Add(time.Duration(gap) * time.Minute)}
				dayWindows[day] = subtractBlock(dayWindows[day], cooldown)
			}
			perDayCount[day]++
			placed = true
			break
		}
		if !placed {
			return nil, nil, &PlacementError{TaskIndex: idx, DurationMin: dur}
		}
	}

	sort.SliceStable(assignments, func(i, j int) bool {
		if !assignments[i].Start.Equal(assignments[j].Start) {
			return assignments[i].Start.Before(assignments[j].Start)
		}
		return assignments[i].TaskIndex < assignments[j].TaskIndex
	})
	return assignments, perDayCount, nil
}
