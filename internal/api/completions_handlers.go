package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/internal/service"
	"github.com/limbo/streakmate/pkg/entity"
	"github.com/limbo/streakmate/pkg/httputil"
	"github.com/limbo/streakmate/pkg/localdate"
)

type CompleteRequest struct {
	HabitID         string `json:"habitId"`
	LocalDate       string `json:"localDate"`
	TzOffsetMinutes *int   `json:"tzOffsetMinutes,omitempty"`
}

type CompleteResponse struct {
	Created    bool               `json:"created"`
	Completion *entity.Completion `json:"completion"`
}

type CompletionStateResponse struct {
	HabitID   string `json:"habitId"`
	LocalDate string `json:"localDate"`
	Completed bool   `json:"completed"`
}

// @Summary Mark habit done on a local date
// @Description Repeating the call for the same date returns the stored completion with 200.
// @Tags completions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CompleteRequest true "completion"
// @Success 200,201 {object} CompleteResponse
// @Failure 400,404,409,500 {object} httputil.ErrorResponse
// @Router /completions [post]
func (s *Server) Complete(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CompleteRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	habitID, err := uuid.Parse(req.HabitID)
	if err != nil {
		logger.Error("completion error: invalid habit id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habitId", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	completion, created, err := s.completionsService.Complete(ctx, uid, service.CompleteRequest{
		HabitID:         habitID,
		LocalDate:       req.LocalDate,
		TzOffsetMinutes: req.TzOffsetMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("completion error: invalid completion")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid localDate or tzOffsetMinutes", err)
		case errors.Is(err, errorvalues.ErrFutureDate):
			logger.Error("completion error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "localDate is in the future", nil)
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("completion error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrCompletionConflict):
			logger.Error("completion error: concurrent uncomplete")
			httputil.WriteErrorResponse(w, http.StatusConflict, "completion was changed concurrently, retry", nil)
		default:
			logger.Error("completion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing habit", nil)
		}
		return
	}
	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	httputil.WriteJSONResponse(w, code, CompleteResponse{
		Created:    created,
		Completion: completion,
	})
	logger.Info("habit completed", slog.Bool("created", created))
}

// @Summary Completion state of a habit on a local date
// @Tags completions
// @Produce json
// @Security BearerAuth
// @Param habitId query string true "habit id"
// @Param localDate query string true "YYYY-MM-DD"
// @Param tzOffsetMinutes query int false "minutes west of UTC"
// @Success 200 {object} CompletionStateResponse
// @Failure 400,404,500 {object} httputil.ErrorResponse
// @Router /completions [get]
func (s *Server) GetCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("completion state error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := habitIDFromQuery(r)
	if err != nil {
		logger.Error("completion state error: invalid habit id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habitId", nil)
		return
	}
	date, err := localDateFromQuery(r)
	if err != nil {
		logger.Error("completion state error: invalid date", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid localDate or tzOffsetMinutes", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	done, err := s.completionsService.IsCompleted(ctx, uid, habitID, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("completion state error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("completion state error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while checking completion", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CompletionStateResponse{
		HabitID:   habitID.String(),
		LocalDate: date,
		Completed: done,
	})
}

// @Summary Remove completion
// @Tags completions
// @Security BearerAuth
// @Param habitId query string true "habit id"
// @Param localDate query string true "YYYY-MM-DD"
// @Success 204
// @Failure 400,404,500 {object} httputil.ErrorResponse
// @Router /completions [delete]
func (s *Server) Uncomplete(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("uncomplete error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := habitIDFromQuery(r)
	if err != nil {
		logger.Error("uncomplete error: invalid habit id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habitId", nil)
		return
	}
	date := r.URL.Query().Get("localDate")
	if !localdate.IsValid(date) {
		logger.Error("uncomplete error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid localDate", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.completionsService.Uncomplete(ctx, uid, habitID, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("uncomplete error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrCompletionNotFound):
			logger.Error("uncomplete error: not completed")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit isn't completed on this date", nil)
		default:
			logger.Error("uncomplete error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while removing completion", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("completion removed")
}
