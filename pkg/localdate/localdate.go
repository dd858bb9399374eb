// Package localdate converts between instants and canonical YYYY-MM-DD strings
// under a caller-supplied timezone offset.
//
// Offsets follow the browser getTimezoneOffset convention: the number of minutes
// the local zone lags UTC, so positive values are west of UTC.
package localdate

import (
	"regexp"
	"strconv"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	// MaxOffsetMinutes bounds accepted offsets to UTC-14..UTC+14.
	MaxOffsetMinutes = 14 * 60
)

var (
	datePattern  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	monthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
)

type DateParts struct {
	Year        int
	Month       int
	Day         int
	UTCMidnight time.Time
}

type MonthParts struct {
	Year      int
	Month     int
	StartDate string
	EndDate   string
}

// ParseDateParts parses a strict YYYY-MM-DD string. A date is valid only if
// the UTC midnight built from its parts yields the same year, month and day.
func ParseDateParts(s string) (DateParts, bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return DateParts{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	midnight := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if midnight.Year() != year || int(midnight.Month()) != month || midnight.Day() != day {
		return DateParts{}, false
	}
	return DateParts{
		Year:        year,
		Month:       month,
		Day:         day,
		UTCMidnight: midnight,
	}, true
}

// IsValid reports whether s is a canonical calendar date.
func IsValid(s string) bool {
	_, ok := ParseDateParts(s)
	return ok
}

// FormatDate renders the UTC calendar date of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatDateWithOffset renders the calendar date t falls on in a zone
// offsetMinutes west of UTC.
func FormatDateWithOffset(t time.Time, offsetMinutes int) string {
	return FormatDate(t.Add(-time.Duration(offsetMinutes) * time.Minute))
}

// Today is the caller's current local date.
func Today(now time.Time, offsetMinutes int) string {
	return FormatDateWithOffset(now, offsetMinutes)
}

func PreviousDate(s string) (string, bool) {
	return shift(s, -1)
}

func NextDate(s string) (string, bool) {
	return shift(s, 1)
}

func shift(s string, days int) (string, bool) {
	parts, ok := ParseDateParts(s)
	if !ok {
		return "", false
	}
	return FormatDate(parts.UTCMidnight.AddDate(0, 0, days)), true
}

// ParseMonth parses a strict YYYY-MM string and returns the first and last
// calendar days of that month.
func ParseMonth(s string) (MonthParts, bool) {
	m := monthPattern.FindStringSubmatch(s)
	if m == nil {
		return MonthParts{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return MonthParts{}, false
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// day 0 of the next month is the last day of this one
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return MonthParts{
		Year:      year,
		Month:     month,
		StartDate: FormatDate(first),
		EndDate:   FormatDate(last),
	}, true
}

// MonthOf returns the YYYY-MM month a canonical date belongs to.
func MonthOf(date string) string {
	if len(date) < len(MonthLayout) {
		return ""
	}
	return date[:len(MonthLayout)]
}

// Max and Min compare canonical date strings, which order lexicographically.
func Max(a, b string) string {
	if a > b {
		return a
	}
	return b
}

func Min(a, b string) string {
	if a < b {
		return a
	}
	return b
}

// ParseOffset reads a timezone offset query value. An absent value means UTC;
// a present one must be an integer within ±MaxOffsetMinutes.
func ParseOffset(raw string, present bool) (int, bool) {
	if !present {
		return 0, true
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < -MaxOffsetMinutes || offset > MaxOffsetMinutes {
		return 0, false
	}
	return offset, true
}
