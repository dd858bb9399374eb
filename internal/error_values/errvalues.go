package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrUserHasHabit  = errors.New("user already has habit with such title")
	ErrOwnerNotFound = errors.New("habit owner doesn't exist")
	ErrWrongOwner    = errors.New("habit belongs to another user")

	ErrCompletionNotFound = errors.New("completion doesn't exist")
	ErrCompletionConflict = errors.New("completion was changed concurrently")
	ErrFutureDate         = errors.New("date is in the future")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth       = errors.New("invalid month, expected YYYY-MM")
	ErrInvalidOffset      = errors.New("invalid timezone offset, expected integer minutes within ±840")

	ErrNoPartner            = errors.New("user has no partner")
	ErrAlreadyPartnered     = errors.New("user already has a partner")
	ErrInviteNotFound       = errors.New("invite doesn't exist or expired")
	ErrOwnInvite            = errors.New("cannot accept own invite")
	ErrPartnershipNotFound  = errors.New("partnership doesn't exist")
	ErrNudgeCooldown        = errors.New("nudge sent too recently")
	ErrNudgeDailyLimit      = errors.New("daily nudge limit reached")
	ErrSubscriptionNotFound = errors.New("push subscription doesn't exist")
)
