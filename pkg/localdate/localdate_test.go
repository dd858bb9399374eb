package localdate_test

import (
	"testing"
	"time"

	"github.com/limbo/streakmate/pkg/localdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParts(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc  string
		Input string
		Valid bool
		Year  int
		Month int
		Day   int
	}{
		{Desc: "regular date", Input: "2024-05-03", Valid: true, Year: 2024, Month: 5, Day: 3},
		{Desc: "leap day", Input: "2024-02-29", Valid: true, Year: 2024, Month: 2, Day: 29},
		{Desc: "leap day in non-leap year", Input: "2023-02-29", Valid: false},
		{Desc: "february 30", Input: "2023-02-30", Valid: false},
		{Desc: "day 31 in 30-day month", Input: "2024-04-31", Valid: false},
		{Desc: "month 13", Input: "2023-13-01", Valid: false},
		{Desc: "month 00", Input: "2023-00-10", Valid: false},
		{Desc: "day 00", Input: "2023-01-00", Valid: false},
		{Desc: "two digit year", Input: "23-01-01", Valid: false},
		{Desc: "single digit month", Input: "2023-1-01", Valid: false},
		{Desc: "trailing garbage", Input: "2023-01-01T00:00", Valid: false},
		{Desc: "empty", Input: "", Valid: false},
		{Desc: "century non-leap", Input: "1900-02-29", Valid: false},
		{Desc: "quad century leap", Input: "2000-02-29", Valid: true, Year: 2000, Month: 2, Day: 29},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			parts, ok := localdate.ParseDateParts(tc.Input)
			assert.Equal(t, tc.Valid, ok)
			if !tc.Valid {
				return
			}
			assert.Equal(t, tc.Year, parts.Year)
			assert.Equal(t, tc.Month, parts.Month)
			assert.Equal(t, tc.Day, parts.Day)
			assert.Equal(t, time.UTC, parts.UTCMidnight.Location())
			assert.Equal(t, tc.Input, localdate.FormatDate(parts.UTCMidnight))
		})
	}
}

func TestParseDatePartsRoundTripsWholeYear(t *testing.T) {
	t.Parallel()
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2024 {
		s := day.Format(localdate.DateLayout)
		parts, ok := localdate.ParseDateParts(s)
		require.True(t, ok, s)
		assert.Equal(t, s, localdate.FormatDate(parts.UTCMidnight))
		day = day.AddDate(0, 0, 1)
	}
}

func TestFormatDateWithOffset(t *testing.T) {
	t.Parallel()
	instant := time.Date(2024, time.May, 3, 2, 30, 0, 0, time.UTC)
	testCases := []struct {
		Desc   string
		Offset int
		Result string
	}{
		{Desc: "utc", Offset: 0, Result: "2024-05-03"},
		{Desc: "west of utc rolls back a day", Offset: 300, Result: "2024-05-02"},
		{Desc: "east of utc stays", Offset: -120, Result: "2024-05-03"},
		{Desc: "far east rolls forward", Offset: -840, Result: "2024-05-03"},
		{Desc: "exactly at boundary", Offset: 150, Result: "2024-05-03"},
		{Desc: "one minute past boundary", Offset: 151, Result: "2024-05-02"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Result, localdate.FormatDateWithOffset(instant, tc.Offset))
		})
	}
	late := time.Date(2024, time.December, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-01", localdate.FormatDateWithOffset(late, -300))
}

func TestFormatDateIgnoresLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+10", 10*60*60)
	instant := time.Date(2024, time.May, 3, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-05-02", localdate.FormatDate(instant))
}

func TestPreviousDate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Input  string
		Result string
		Valid  bool
	}{
		{Input: "2024-03-01", Result: "2024-02-29", Valid: true},
		{Input: "2023-03-01", Result: "2023-02-28", Valid: true},
		{Input: "2024-01-01", Result: "2023-12-31", Valid: true},
		{Input: "2024-05-10", Result: "2024-05-09", Valid: true},
		{Input: "2024-05-32", Valid: false},
		{Input: "yesterday", Valid: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			prev, ok := localdate.PreviousDate(tc.Input)
			assert.Equal(t, tc.Valid, ok)
			assert.Equal(t, tc.Result, prev)
		})
	}
}

func TestNextDate(t *testing.T) {
	t.Parallel()
	next, ok := localdate.NextDate("2024-02-28")
	require.True(t, ok)
	assert.Equal(t, "2024-02-29", next)
	next, ok = localdate.NextDate("2023-12-31")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", next)
}

func TestParseMonth(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Input string
		Valid bool
		Start string
		End   string
	}{
		{Input: "2024-02", Valid: true, Start: "2024-02-01", End: "2024-02-29"},
		{Input: "2023-02", Valid: true, Start: "2023-02-01", End: "2023-02-28"},
		{Input: "2024-04", Valid: true, Start: "2024-04-01", End: "2024-04-30"},
		{Input: "2024-12", Valid: true, Start: "2024-12-01", End: "2024-12-31"},
		{Input: "2024-13", Valid: false},
		{Input: "2024-00", Valid: false},
		{Input: "2024-1", Valid: false},
		{Input: "2024-01-01", Valid: false},
		{Input: "", Valid: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			month, ok := localdate.ParseMonth(tc.Input)
			assert.Equal(t, tc.Valid, ok)
			if tc.Valid {
				assert.Equal(t, tc.Start, month.StartDate)
				assert.Equal(t, tc.End, month.EndDate)
			}
		})
	}
}

func TestMinMaxAndMonthOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2024-05-15", localdate.Max("2024-05-01", "2024-05-15"))
	assert.Equal(t, "2024-05-20", localdate.Min("2024-05-31", "2024-05-20"))
	assert.Equal(t, "2024-05", localdate.MonthOf("2024-05-20"))
	assert.Equal(t, "", localdate.MonthOf("2024"))
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		Desc    string
		Raw     string
		Present bool
		Want    int
		OK      bool
	}{
		{Desc: "absent", Raw: "", Present: false, Want: 0, OK: true},
		{Desc: "zero", Raw: "0", Present: true, Want: 0, OK: true},
		{Desc: "west", Raw: "300", Present: true, Want: 300, OK: true},
		{Desc: "east bound", Raw: "-840", Present: true, Want: -840, OK: true},
		{Desc: "west bound", Raw: "840", Present: true, Want: 840, OK: true},
		{Desc: "too far east", Raw: "-841", Present: true, OK: false},
		{Desc: "too far west", Raw: "900", Present: true, OK: false},
		{Desc: "empty but present", Raw: "", Present: true, OK: false},
		{Desc: "fraction", Raw: "1.5", Present: true, OK: false},
		{Desc: "garbage", Raw: "abc", Present: true, OK: false},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			got, ok := localdate.ParseOffset(tc.Raw, tc.Present)
			assert.Equal(t, tc.OK, ok)
			if tc.OK {
				assert.Equal(t, tc.Want, got)
			}
		})
	}
}
