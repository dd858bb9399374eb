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

type SendNudgeRequest struct {
	Message string `json:"message"`
}

type ListNudgesResponse struct {
	Nudges []entity.Nudge `json:"nudges"`
}

// @Summary Nudge the partner
// @Description Limited by a cooldown per partner and a number of nudges per 24 hours.
// @Tags nudges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendNudgeRequest false "optional message"
// @Success 201 {object} entity.Nudge
// @Failure 400,401,404,429,500 {object} httputil.ErrorResponse
// @Router /nudges [post]
func (s *Server) SendNudge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("nudge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SendNudgeRequest
	if r.ContentLength != 0 {
		if err = httputil.DecodeJSON(r, &req); err != nil {
			logger.Error("nudge error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	nudge, err := s.nudgeService.Send(ctx, uid, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("nudge error: invalid message")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "message is too long", err)
		case errors.Is(err, errorvalues.ErrNoPartner):
			logger.Error("nudge error: no partner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user has no partner", nil)
		case errors.Is(err, errorvalues.ErrNudgeCooldown):
			logger.Warn("nudge error: cooldown")
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "partner was nudged recently", nil)
		case errors.Is(err, errorvalues.ErrNudgeDailyLimit):
			logger.Warn("nudge error: daily limit")
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "daily nudge limit reached", nil)
		default:
			logger.Error("nudge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while sending nudge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, nudge)
	logger.Info("nudge sent", slog.String("to", nudge.ToUser.String()))
}

// @Summary Received nudges, newest first
// @Tags nudges
// @Produce json
// @Security BearerAuth
// @Param limit query int false "default 20, max 100"
// @Success 200 {object} ListNudgesResponse
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /nudges [get]
func (s *Server) ListNudges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("nudges list error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	nudges, err := s.nudgeService.ListReceived(ctx, uid, nudgesLimit(r))
	if err != nil {
		logger.Error("nudges list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing nudges", nil)
		return
	}
	if nudges == nil {
		nudges = []entity.Nudge{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListNudgesResponse{Nudges: nudges})
}
