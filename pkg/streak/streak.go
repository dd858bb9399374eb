// Package streak derives consecutive-day statistics from a habit's completion
// dates. Nothing here is persisted; results are recomputed on every query.
package streak

import "github.com/limbo/streakmate/pkg/localdate"

type Result struct {
	Current int `json:"currentStreak"`
	Best    int `json:"bestStreak"`
}

// Current counts consecutive days ending at reference. datesDesc must be
// canonical dates sorted descending. If reference itself has no completion
// the result is 0.
//
// Dates later than reference are skipped: they cannot extend or break a run
// that ends at reference. Repeated dates are skipped the same way.
func Current(datesDesc []string, reference string) int {
	expected := reference
	count := 0
	for _, date := range datesDesc {
		switch {
		case date == expected:
			count++
			prev, ok := localdate.PreviousDate(expected)
			if !ok {
				return count
			}
			expected = prev
		case date < expected:
			return count
		}
	}
	return count
}

// Best returns the longest run of consecutive calendar days in datesAsc,
// which must be sorted ascending.
func Best(datesAsc []string) int {
	best := 0
	run := 0
	last := ""
	for _, date := range datesAsc {
		if date == last {
			continue
		}
		prev, ok := localdate.PreviousDate(date)
		if ok && last != "" && prev == last {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
		last = date
	}
	return best
}

// Compute runs both calculations. The two inputs differ only in ordering and
// in the upper bound applied by the caller's queries.
func Compute(datesDesc, datesAsc []string, reference string) Result {
	return Result{
		Current: Current(datesDesc, reference),
		Best:    Best(datesAsc),
	}
}
