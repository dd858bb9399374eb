package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// ReminderSettings is stored on the user row. TzOffsetMinutes follows the
// browser convention (positive = west of UTC).
type ReminderSettings struct {
	UserID          uuid.UUID `json:"uid"`
	Enabled         bool      `json:"enabled"`
	Time            string    `json:"time"`
	TzOffsetMinutes int       `json:"tzOffsetMinutes"`
	LastRemindedOn  *string   `json:"lastRemindedOn,omitempty"`
}

type Habit struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Completion marks a habit done on a local calendar date (YYYY-MM-DD).
type Completion struct {
	ID        uuid.UUID `json:"id"`
	HabitID   uuid.UUID `json:"habitId"`
	UserID    uuid.UUID `json:"uid"`
	LocalDate string    `json:"localDate"`
	CreatedAt time.Time `json:"created_at"`
}

type HabitStreak struct {
	HabitID          uuid.UUID `json:"habitId"`
	CurrentStreak    int       `json:"currentStreak"`
	BestStreak       int       `json:"bestStreak"`
	TotalCompletions int       `json:"totalCompletions"`
}

type CalendarMonth struct {
	HabitID   uuid.UUID `json:"habitId"`
	Month     string    `json:"month"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Dates     []string  `json:"dates"`
}

// Partnership pairs two users. UserLow < UserHigh byte-wise so a pair has one row.
type Partnership struct {
	ID        uuid.UUID `json:"id"`
	UserLow   uuid.UUID `json:"-"`
	UserHigh  uuid.UUID `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// PartnerOf returns the other member of the partnership.
func (p *Partnership) PartnerOf(uid uuid.UUID) uuid.UUID {
	if p.UserLow == uid {
		return p.UserHigh
	}
	return p.UserLow
}

type Partner struct {
	UserID      uuid.UUID `json:"uid"`
	Name        string    `json:"name"`
	PairedSince time.Time `json:"pairedSince"`
}

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRevoked  InviteStatus = "revoked"
)

type Invite struct {
	Code       string       `json:"code"`
	InviterID  uuid.UUID    `json:"inviterId"`
	Status     InviteStatus `json:"status"`
	AcceptedBy *uuid.UUID   `json:"acceptedBy,omitempty"`
	ExpiresAt  time.Time    `json:"expiresAt"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (i *Invite) Usable(now time.Time) bool {
	return i.Status == InvitePending && now.Before(i.ExpiresAt)
}

type Nudge struct {
	ID        uuid.UUID `json:"id"`
	FromUser  uuid.UUID `json:"from"`
	ToUser    uuid.UUID `json:"to"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type PartnerHabitProgress struct {
	HabitID        uuid.UUID `json:"habitId"`
	Title          string    `json:"title"`
	CompletedToday bool      `json:"completedToday"`
	CurrentStreak  int       `json:"currentStreak"`
	BestStreak     int       `json:"bestStreak"`
}

type PartnerProgress struct {
	Partner   Partner                `json:"partner"`
	LocalDate string                 `json:"localDate"`
	Habits    []PartnerHabitProgress `json:"habits"`
}

type PushSubscription struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Token     string    `json:"token"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}
