package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/entity"
	"github.com/limbo/streakmate/pkg/httputil"
)

type ListInvitesResponse struct {
	Invites []entity.Invite `json:"invites"`
}

// @Summary Create partner invite
// @Tags partner
// @Produce json
// @Security BearerAuth
// @Success 201 {object} entity.Invite
// @Failure 401,409,500 {object} httputil.ErrorResponse
// @Router /invites [post]
func (s *Server) CreateInvite(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("invite creation error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	invite, err := s.partnerService.CreateInvite(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyPartnered):
			logger.Error("invite creation error: already partnered")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user already has a partner", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("invite creation error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		default:
			logger.Error("invite creation error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating invite", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, invite)
	logger.Info("invite created", slog.String("code", invite.Code))
}

// @Summary Pending invites of the caller
// @Tags partner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListInvitesResponse
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /invites [get]
func (s *Server) ListInvites(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("invites list error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	invites, err := s.partnerService.ListInvites(ctx, uid)
	if err != nil {
		logger.Error("invites list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing invites", nil)
		return
	}
	if invites == nil {
		invites = []entity.Invite{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListInvitesResponse{Invites: invites})
}

// @Summary Revoke pending invite
// @Tags partner
// @Security BearerAuth
// @Param code path string true "invite code"
// @Success 204
// @Failure 401,404,500 {object} httputil.ErrorResponse
// @Router /invites/{code} [delete]
func (s *Server) RevokeInvite(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("invite revoking error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	code := strings.ToUpper(r.PathValue("code"))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.partnerService.RevokeInvite(ctx, uid, code)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInviteNotFound):
			logger.Error("invite revoking error: unexist invite")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "invite doesn't exist", nil)
		default:
			logger.Error("invite revoking error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while revoking invite", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("invite revoked")
}

// @Summary Accept invite and become partners
// @Tags partner
// @Produce json
// @Security BearerAuth
// @Param code path string true "invite code"
// @Success 201 {object} entity.Partner
// @Failure 400,401,404,409,500 {object} httputil.ErrorResponse
// @Router /invites/{code}/accept [post]
func (s *Server) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("invite accepting error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	code := strings.ToUpper(strings.TrimSpace(r.PathValue("code")))
	if code == "" {
		logger.Error("invite accepting error: empty code")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invite code is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	partner, err := s.partnerService.AcceptInvite(ctx, uid, code)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInviteNotFound):
			logger.Error("invite accepting error: unusable invite")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "invite doesn't exist or expired", nil)
		case errors.Is(err, errorvalues.ErrOwnInvite):
			logger.Error("invite accepting error: own invite")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "cannot accept own invite", nil)
		case errors.Is(err, errorvalues.ErrAlreadyPartnered):
			logger.Error("invite accepting error: already partnered")
			httputil.WriteErrorResponse(w, http.StatusConflict, "you or inviter already have a partner", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrNoPartner):
			logger.Error("invite accepting error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "invite doesn't exist or expired", nil)
		default:
			logger.Error("invite accepting error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while accepting invite", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, partner)
	logger.Info("invite accepted", slog.String("partner", partner.UserID.String()))
}

// @Summary Current partner
// @Tags partner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.Partner
// @Failure 401,404,500 {object} httputil.ErrorResponse
// @Router /partner [get]
func (s *Server) GetPartner(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("partner getting error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	partner, err := s.partnerService.GetPartner(ctx, uid)
	if err != nil {
		s.writePartnerError(w, logger, "partner getting", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, partner)
}

// @Summary Dissolve partnership
// @Tags partner
// @Security BearerAuth
// @Success 204
// @Failure 401,404,500 {object} httputil.ErrorResponse
// @Router /partner [delete]
func (s *Server) DissolvePartnership(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("partnership dissolving error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err = s.partnerService.Dissolve(ctx, uid); err != nil {
		s.writePartnerError(w, logger, "partnership dissolving", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("partnership dissolved")
}

// @Summary Partner's habits on the caller's local date
// @Tags partner
// @Produce json
// @Security BearerAuth
// @Param localDate query string true "YYYY-MM-DD"
// @Param tzOffsetMinutes query int false "minutes west of UTC"
// @Success 200 {object} entity.PartnerProgress
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /partner/progress [get]
func (s *Server) GetPartnerProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("partner progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := localDateFromQuery(r)
	if err != nil {
		logger.Error("partner progress error: invalid date", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid localDate or tzOffsetMinutes", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	progress, err := s.partnerService.GetPartnerProgress(ctx, uid, date)
	if err != nil {
		s.writePartnerError(w, logger, "partner progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}

func (s *Server) writePartnerError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrNoPartner):
		logger.Error(op + " error: no partner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user has no partner", nil)
	case errors.Is(err, errorvalues.ErrInvalidDate):
		logger.Error(op + " error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid localDate", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while "+op, nil)
	}
}
