package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/internal/repository"
	"github.com/limbo/streakmate/pkg/entity"
)

var ErrPushDisabled = errors.New("push delivery is not configured")

type PushService struct {
	repo   repository.PushSubscriptionsRepositoryI
	sender PushSender
}

// NewPushService accepts a nil sender: subscriptions are still stored but
// nothing is delivered.
func NewPushService(repo repository.PushSubscriptionsRepositoryI, sender PushSender) *PushService {
	if repo == nil {
		log.Fatal("provided nil push subscriptions repo")
	}
	return &PushService{
		repo:   repo,
		sender: sender,
	}
}

func (ps *PushService) Subscribe(ctx context.Context, uid uuid.UUID, req SubscribeRequest) (*entity.PushSubscription, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	sub := entity.PushSubscription{
		UserID:   uid,
		Token:    req.Token,
		Platform: req.Platform,
	}
	if sub.Platform == "" {
		sub.Platform = "web"
	}
	if err := ps.repo.Upsert(ctx, &sub); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("push repository error: " + err.Error())
	}
	return &sub, nil
}

func (ps *PushService) Unsubscribe(ctx context.Context, uid uuid.UUID, token string) error {
	if token == "" {
		return errors.Join(errorvalues.ErrValidation, errors.New("token is required"))
	}
	err := ps.repo.Delete(ctx, uid, token)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSubscriptionNotFound) {
			return err
		}
		return errors.New("push repository error: " + err.Error())
	}
	return nil
}

// SendToUser delivers msg to every device of the user and forgets tokens the
// provider rejected as unregistered.
func (ps *PushService) SendToUser(ctx context.Context, uid uuid.UUID, msg *entity.PushMessage) error {
	if ps.sender == nil {
		return ErrPushDisabled
	}
	tokens, err := ps.repo.ListTokensByUserID(ctx, uid)
	if err != nil {
		return errors.New("push repository error: " + err.Error())
	}
	if len(tokens) == 0 {
		return nil
	}
	stale, sendErr := ps.sender.Send(ctx, tokens, msg)
	if len(stale) > 0 {
		if err = ps.repo.DeleteTokens(ctx, stale); err != nil {
			slog.Default().Warn("removing stale push tokens failed",
				slog.String("uid", uid.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	if sendErr != nil {
		return errors.New("push sending error: " + sendErr.Error())
	}
	return nil
}
