package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/streakmate/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
	GetReminderSettings(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error)
	UpdateReminderSettings(ctx context.Context, settings *entity.ReminderSettings) error
	// Lists settings of every user with reminders switched on
	ListReminderEnabled(ctx context.Context) ([]entity.ReminderSettings, error)
	// Records the local date a reminder was delivered for
	MarkReminded(ctx context.Context, uid uuid.UUID, localDate string) error
}

type HabitsRepositoryI interface {
	// Creates new habit in database. In habit only Title, UserID, Description are necessary
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Lists every habit of the user ordered by creation
	ListAllByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompletionsRepositoryI interface {
	// Inserts completion unless one exists for the same habit and date.
	// Returns the stored row and whether it was created by this call
	Insert(ctx context.Context, habitID, userID uuid.UUID, localDate string) (*entity.Completion, bool, error)
	Delete(ctx context.Context, habitID uuid.UUID, localDate string) error
	Exists(ctx context.Context, habitID uuid.UUID, localDate string) (bool, error)
	// Dates on or before upTo, newest first
	ListDatesDesc(ctx context.Context, habitID uuid.UUID, upTo string) ([]string, error)
	// All dates, oldest first
	ListDatesAsc(ctx context.Context, habitID uuid.UUID) ([]string, error)
	// Dates within [from, to], oldest first
	ListDatesInRange(ctx context.Context, habitID uuid.UUID, from, to string) ([]string, error)
	CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error)
	// IDs of the user's habits completed on localDate
	CompletedHabitIDs(ctx context.Context, userID uuid.UUID, localDate string) ([]uuid.UUID, error)
}

type PartnershipsRepositoryI interface {
	// Accepts a pending invite and creates the partnership in one transaction
	CreateFromInvite(ctx context.Context, code string, accepterID, inviterID uuid.UUID) (*entity.Partnership, error)
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Partnership, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InvitesRepositoryI interface {
	Create(ctx context.Context, invite *entity.Invite) error
	GetByCode(ctx context.Context, code string) (*entity.Invite, error)
	ListPendingByInviter(ctx context.Context, inviterID uuid.UUID) ([]entity.Invite, error)
	// Revokes a pending invite created by inviterID
	Revoke(ctx context.Context, code string, inviterID uuid.UUID) error
}

type NudgesRepositoryI interface {
	Create(ctx context.Context, nudge *entity.Nudge) (*entity.Nudge, error)
	// Time of the latest nudge from one user to another, nil if none
	LastSentAt(ctx context.Context, from, to uuid.UUID) (*time.Time, error)
	// Number of nudges sent by the user since the given instant
	CountSentSince(ctx context.Context, from uuid.UUID, since time.Time) (int, error)
	ListReceived(ctx context.Context, to uuid.UUID, limit int) ([]entity.Nudge, error)
}

type PushSubscriptionsRepositoryI interface {
	// Stores subscription; an existing token is moved to the given user
	Upsert(ctx context.Context, sub *entity.PushSubscription) error
	Delete(ctx context.Context, uid uuid.UUID, token string) error
	DeleteTokens(ctx context.Context, tokens []string) error
	ListTokensByUserID(ctx context.Context, uid uuid.UUID) ([]string, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
