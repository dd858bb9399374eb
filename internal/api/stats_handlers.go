package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/entity"
	"github.com/limbo/streakmate/pkg/httputil"
)

type AllStreaksResponse struct {
	LocalDate string               `json:"localDate"`
	Streaks   []entity.HabitStreak `json:"streaks"`
}

// @Summary Current and best streak of a habit
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param habitId query string true "habit id"
// @Param localDate query string true "YYYY-MM-DD"
// @Param tzOffsetMinutes query int false "minutes west of UTC"
// @Success 200 {object} entity.HabitStreak
// @Failure 400,404,500 {object} httputil.ErrorResponse
// @Router /streaks [get]
func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("streaks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := habitIDFromQuery(r)
	if err != nil {
		logger.Error("streaks error: invalid habit id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habitId", nil)
		return
	}
	date, err := localDateFromQuery(r)
	if err != nil {
		logger.Error("streaks error: invalid date", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid localDate or tzOffsetMinutes", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.statsService.GetStreaks(ctx, uid, habitID, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("streaks error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("streaks error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing streaks", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
}

// @Summary Streaks of every own habit
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param localDate query string true "YYYY-MM-DD"
// @Param tzOffsetMinutes query int false "minutes west of UTC"
// @Success 200 {object} AllStreaksResponse
// @Failure 400,500 {object} httputil.ErrorResponse
// @Router /streaks/all [get]
func (s *Server) GetAllStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("all streaks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := localDateFromQuery(r)
	if err != nil {
		logger.Error("all streaks error: invalid date", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid localDate or tzOffsetMinutes", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	streaks, err := s.statsService.GetAllStreaks(ctx, uid, date)
	if err != nil {
		logger.Error("all streaks error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing streaks", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AllStreaksResponse{
		LocalDate: date,
		Streaks:   streaks,
	})
}

// @Summary Completion dates of a month
// @Description The window is clipped to the habit's creation date and today in the caller's zone.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param habitId query string true "habit id"
// @Param month query string false "YYYY-MM, current month by default"
// @Param tzOffsetMinutes query int false "minutes west of UTC"
// @Success 200 {object} entity.CalendarMonth
// @Failure 400,404,500 {object} httputil.ErrorResponse
// @Router /calendar [get]
func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("calendar error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := habitIDFromQuery(r)
	if err != nil {
		logger.Error("calendar error: invalid habit id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habitId", nil)
		return
	}
	offset, err := offsetFromQuery(r)
	if err != nil {
		logger.Error("calendar error: invalid offset")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid tzOffsetMinutes", nil)
		return
	}
	month := r.URL.Query().Get("month")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	cal, err := s.statsService.GetCalendar(ctx, uid, habitID, month, offset)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidMonth):
			logger.Error("calendar error: invalid month")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month", nil)
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("calendar error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("calendar error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building calendar", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cal)
}
