package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/internal/service"
	"github.com/limbo/streakmate/pkg/httputil"
)

type SubscribeRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

type UnsubscribeRequest struct {
	Token string `json:"token"`
}

// @Summary Register device token for push notifications
// @Tags push
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubscribeRequest true "device token"
// @Success 201 {object} entity.PushSubscription
// @Failure 400,401,500 {object} httputil.ErrorResponse
// @Router /push/subscriptions [post]
func (s *Server) Subscribe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("push subscribing error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubscribeRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("push subscribing error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	sub, err := s.pushService.Subscribe(ctx, uid, service.SubscribeRequest{
		Token:    req.Token,
		Platform: req.Platform,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("push subscribing error: invalid subscription")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid token or platform", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("push subscribing error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		default:
			logger.Error("push subscribing error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while subscribing", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, sub)
	logger.Info("push subscription stored", slog.String("platform", sub.Platform))
}

// @Summary Remove device token
// @Tags push
// @Accept json
// @Security BearerAuth
// @Param body body UnsubscribeRequest true "device token"
// @Success 204
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /push/subscriptions [delete]
func (s *Server) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("push unsubscribing error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UnsubscribeRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("push unsubscribing error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.pushService.Unsubscribe(ctx, uid, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("push unsubscribing error: empty token")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "token is required", nil)
		case errors.Is(err, errorvalues.ErrSubscriptionNotFound):
			logger.Error("push unsubscribing error: unexist subscription")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "subscription doesn't exist", nil)
		default:
			logger.Error("push unsubscribing error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while unsubscribing", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("push subscription removed")
}
