package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/streakmate/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type ReminderRequest struct {
	Enabled         bool
	Time            string `validate:"required,hhmm"`
	TzOffsetMinutes int    `validate:"min=-840,max=840"`
}

type CreateHabitRequest struct {
	Title       string `validate:"required,min=1,max=100"`
	Description string `validate:"max=1000"`
}

// UpdateHabitRequest changes only the fields that are set.
type UpdateHabitRequest struct {
	Title       *string `validate:"omitempty,min=1,max=100"`
	Description *string `validate:"omitempty,max=1000"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CompleteRequest struct {
	HabitID   uuid.UUID `validate:"required"`
	LocalDate string    `validate:"required,localdate"`
	// Offset of the caller's zone, nil when the client did not send one
	TzOffsetMinutes *int `validate:"omitempty,min=-840,max=840"`
}

type SubscribeRequest struct {
	Token    string `validate:"required,max=4096"`
	Platform string `validate:"omitempty,oneof=web android ios"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
	GetReminderSettings(ctx context.Context, id uuid.UUID) (*entity.ReminderSettings, error)
	UpdateReminderSettings(ctx context.Context, id uuid.UUID, req ReminderRequest) (*entity.ReminderSettings, error)
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req UpdateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type CompletionsServiceI interface {
	// Marks habit done on a local date. Repeated calls return the stored completion with created == false
	Complete(ctx context.Context, userID uuid.UUID, req CompleteRequest) (*entity.Completion, bool, error)
	Uncomplete(ctx context.Context, userID, habitID uuid.UUID, localDate string) error
	IsCompleted(ctx context.Context, userID, habitID uuid.UUID, localDate string) (bool, error)
}

type StatsServiceI interface {
	GetStreaks(ctx context.Context, userID, habitID uuid.UUID, localDate string) (*entity.HabitStreak, error)
	GetAllStreaks(ctx context.Context, userID uuid.UUID, localDate string) ([]entity.HabitStreak, error)
	// Empty month means the caller's current month
	GetCalendar(ctx context.Context, userID, habitID uuid.UUID, month string, tzOffsetMinutes int) (*entity.CalendarMonth, error)
}

type PartnerServiceI interface {
	CreateInvite(ctx context.Context, uid uuid.UUID) (*entity.Invite, error)
	ListInvites(ctx context.Context, uid uuid.UUID) ([]entity.Invite, error)
	RevokeInvite(ctx context.Context, uid uuid.UUID, code string) error
	AcceptInvite(ctx context.Context, uid uuid.UUID, code string) (*entity.Partner, error)
	GetPartner(ctx context.Context, uid uuid.UUID) (*entity.Partner, error)
	Dissolve(ctx context.Context, uid uuid.UUID) error
	GetPartnerProgress(ctx context.Context, uid uuid.UUID, localDate string) (*entity.PartnerProgress, error)
}

type NudgeServiceI interface {
	// Sends a nudge to the caller's partner respecting cooldown and daily limit
	Send(ctx context.Context, from uuid.UUID, message string) (*entity.Nudge, error)
	ListReceived(ctx context.Context, uid uuid.UUID, limit int) ([]entity.Nudge, error)
}

type PushServiceI interface {
	Subscribe(ctx context.Context, uid uuid.UUID, req SubscribeRequest) (*entity.PushSubscription, error)
	Unsubscribe(ctx context.Context, uid uuid.UUID, token string) error
	SendToUser(ctx context.Context, uid uuid.UUID, msg *entity.PushMessage) error
}

// PushSender delivers a message to device tokens and reports the tokens the
// provider no longer accepts.
type PushSender interface {
	Send(ctx context.Context, tokens []string, msg *entity.PushMessage) ([]string, error)
}

// Notifier is the part of PushServiceI used by nudges and reminders.
type Notifier interface {
	SendToUser(ctx context.Context, uid uuid.UUID, msg *entity.PushMessage) error
}
