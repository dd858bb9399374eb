package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/localdate"
)

const (
	defaultNudgesLimit = 20
	maxNudgesLimit     = 100
)

var errInvalidHabitID = errors.New("invalid habitId")

func habitIDFromQuery(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.URL.Query().Get("habitId"))
	if err != nil {
		return uuid.UUID{}, errInvalidHabitID
	}
	return id, nil
}

// offsetFromQuery reads tzOffsetMinutes; absence means UTC.
func offsetFromQuery(r *http.Request) (int, error) {
	q := r.URL.Query()
	offset, ok := localdate.ParseOffset(q.Get("tzOffsetMinutes"), q.Has("tzOffsetMinutes"))
	if !ok {
		return 0, errorvalues.ErrInvalidOffset
	}
	return offset, nil
}

// localDateFromQuery returns the required localDate param. A present
// tzOffsetMinutes must still be valid even though the date does not use it.
func localDateFromQuery(r *http.Request) (string, error) {
	if _, err := offsetFromQuery(r); err != nil {
		return "", err
	}
	q := r.URL.Query()
	date := q.Get("localDate")
	if !q.Has("localDate") || !localdate.IsValid(date) {
		return "", errorvalues.ErrInvalidDate
	}
	return date, nil
}

func pagination(r *http.Request) (page, limit int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return page, limit
}

func nudgesLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		return defaultNudgesLimit
	}
	return min(limit, maxNudgesLimit)
}
