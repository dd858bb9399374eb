package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/internal/repository"
	"github.com/limbo/streakmate/pkg/entity"
)

const (
	DefaultNudgeCooldown   = time.Hour
	DefaultNudgeDailyLimit = 3
	MaxNudgeMessageLength  = 200
	nudgeLimitWindow       = 24 * time.Hour
)

type NudgeOptions struct {
	Cooldown   time.Duration
	DailyLimit int
}

type NudgeService struct {
	nudges       repository.NudgesRepositoryI
	partnerships repository.PartnershipsRepositoryI
	users        repository.UsersRepositoryI
	notifier     Notifier
	cooldown     time.Duration
	dailyLimit   int
	now          func() time.Time
}

// NewNudgeService builds the service; notifier may be nil when push delivery
// is not configured.
func NewNudgeService(nudges repository.NudgesRepositoryI, partnerships repository.PartnershipsRepositoryI,
	users repository.UsersRepositoryI, notifier Notifier, opts NudgeOptions) *NudgeService {
	if nudges == nil || partnerships == nil || users == nil {
		log.Fatal("on nudge service provided nil repos")
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultNudgeCooldown
	}
	if opts.DailyLimit <= 0 {
		opts.DailyLimit = DefaultNudgeDailyLimit
	}
	return &NudgeService{
		nudges:       nudges,
		partnerships: partnerships,
		users:        users,
		notifier:     notifier,
		cooldown:     opts.Cooldown,
		dailyLimit:   opts.DailyLimit,
		now:          time.Now,
	}
}

func (ns *NudgeService) WithClock(now func() time.Time) *NudgeService {
	ns.now = now
	return ns
}

// Send checks the limits before inserting. Two concurrent sends may both pass
// the check.
func (ns *NudgeService) Send(ctx context.Context, from uuid.UUID, message string) (*entity.Nudge, error) {
	if len([]rune(message)) > MaxNudgeMessageLength {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("message is too long"))
	}
	p, err := ns.partnerships.GetByUserID(ctx, from)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPartnershipNotFound) {
			return nil, errorvalues.ErrNoPartner
		}
		return nil, errors.New("partnerships repository error: " + err.Error())
	}
	to := p.PartnerOf(from)
	now := ns.now()

	last, err := ns.nudges.LastSentAt(ctx, from, to)
	if err != nil {
		return nil, errors.New("nudges repository error: " + err.Error())
	}
	if last != nil && now.Sub(*last) < ns.cooldown {
		return nil, errorvalues.ErrNudgeCooldown
	}
	sent, err := ns.nudges.CountSentSince(ctx, from, now.Add(-nudgeLimitWindow))
	if err != nil {
		return nil, errors.New("nudges repository error: " + err.Error())
	}
	if sent >= ns.dailyLimit {
		return nil, errorvalues.ErrNudgeDailyLimit
	}

	nudge, err := ns.nudges.Create(ctx, &entity.Nudge{
		FromUser: from,
		ToUser:   to,
		Message:  message,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrNoPartner
		}
		return nil, errors.New("nudges repository error: " + err.Error())
	}
	ns.push(ctx, nudge)
	return nudge, nil
}

func (ns *NudgeService) ListReceived(ctx context.Context, uid uuid.UUID, limit int) ([]entity.Nudge, error) {
	nudges, err := ns.nudges.ListReceived(ctx, uid, limit)
	if err != nil {
		return nil, errors.New("nudges repository error: " + err.Error())
	}
	return nudges, nil
}

// push is best effort: the nudge is stored even if delivery fails.
func (ns *NudgeService) push(ctx context.Context, nudge *entity.Nudge) {
	if ns.notifier == nil {
		return
	}
	logger := slog.Default().With(slog.String("nudge_id", nudge.ID.String()))
	title := "Your partner nudged you"
	if sender, err := ns.users.FindByID(ctx, nudge.FromUser); err == nil {
		title = sender.Name + " nudged you"
	}
	body := nudge.Message
	if body == "" {
		body = "Time to keep your streak going!"
	}
	err := ns.notifier.SendToUser(ctx, nudge.ToUser, &entity.PushMessage{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":    "nudge",
			"nudgeId": nudge.ID.String(),
		},
	})
	if err != nil {
		logger.Warn("nudge push failed", slog.String("error", err.Error()))
	}
}
