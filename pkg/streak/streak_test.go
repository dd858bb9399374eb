package streak_test

import (
	"testing"

	"github.com/limbo/streakmate/pkg/streak"
	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc      string
		Dates     []string
		Reference string
		Expected  int
	}{
		{
			Desc:      "empty history",
			Dates:     nil,
			Reference: "2024-05-03",
			Expected:  0,
		},
		{
			Desc:      "three days ending today",
			Dates:     []string{"2024-05-03", "2024-05-02", "2024-05-01"},
			Reference: "2024-05-03",
			Expected:  3,
		},
		{
			Desc:      "no completion on reference date",
			Dates:     []string{"2024-05-03", "2024-05-02", "2024-05-01"},
			Reference: "2024-05-04",
			Expected:  0,
		},
		{
			Desc:      "gap stops the run",
			Dates:     []string{"2024-05-03", "2024-05-02", "2024-04-30", "2024-04-29"},
			Reference: "2024-05-03",
			Expected:  2,
		},
		{
			Desc:      "run across month boundary",
			Dates:     []string{"2024-03-01", "2024-02-29", "2024-02-28"},
			Reference: "2024-03-01",
			Expected:  3,
		},
		{
			Desc:      "run across year boundary",
			Dates:     []string{"2024-01-01", "2023-12-31"},
			Reference: "2024-01-01",
			Expected:  2,
		},
		{
			Desc:      "future-dated entry is skipped",
			Dates:     []string{"2024-05-05", "2024-05-03", "2024-05-02"},
			Reference: "2024-05-03",
			Expected:  2,
		},
		{
			Desc:      "duplicates are skipped",
			Dates:     []string{"2024-05-03", "2024-05-03", "2024-05-02"},
			Reference: "2024-05-03",
			Expected:  2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, streak.Current(tc.Dates, tc.Reference))
		})
	}
}

func TestBest(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Dates    []string
		Expected int
	}{
		{Desc: "empty", Dates: nil, Expected: 0},
		{Desc: "single day", Dates: []string{"2024-05-01"}, Expected: 1},
		{Desc: "isolated tail", Dates: []string{"2024-05-01", "2024-05-02", "2024-05-04"}, Expected: 2},
		{Desc: "longest run in the past", Dates: []string{
			"2024-04-01", "2024-04-02", "2024-04-03", "2024-04-04",
			"2024-05-01", "2024-05-02",
		}, Expected: 4},
		{Desc: "longest run at the end", Dates: []string{
			"2024-04-01",
			"2024-05-01", "2024-05-02", "2024-05-03",
		}, Expected: 3},
		{Desc: "leap day run", Dates: []string{"2024-02-28", "2024-02-29", "2024-03-01"}, Expected: 3},
		{Desc: "non-leap february gap", Dates: []string{"2023-02-28", "2023-03-01"}, Expected: 2},
		{Desc: "duplicate does not reset", Dates: []string{"2024-05-01", "2024-05-01", "2024-05-02"}, Expected: 2},
		{Desc: "no consecutive days", Dates: []string{"2024-05-01", "2024-05-03", "2024-05-05"}, Expected: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, streak.Best(tc.Dates))
		})
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()
	desc := []string{"2024-05-04", "2024-05-02", "2024-05-01"}
	asc := []string{"2024-05-01", "2024-05-02", "2024-05-04"}
	res := streak.Compute(desc, asc, "2024-05-04")
	assert.Equal(t, streak.Result{Current: 1, Best: 2}, res)
}
