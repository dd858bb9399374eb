package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/internal/repository"
	"github.com/limbo/streakmate/pkg/entity"
	"github.com/limbo/streakmate/pkg/localdate"
)

type CompletionsService struct {
	habitsRepo      repository.HabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	now             func() time.Time
}

func NewCompletionsService(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI) *CompletionsService {
	if habitsRepo == nil || completionsRepo == nil {
		log.Fatal("on completions service provided nil repos")
	}
	return &CompletionsService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		now:             time.Now,
	}
}

// WithClock replaces the wall clock used to resolve "today".
func (serv *CompletionsService) WithClock(now func() time.Time) *CompletionsService {
	serv.now = now
	return serv
}

// Complete rejects dates after the caller's today. Without an offset the
// easternmost zone is assumed, so no real local today is ever rejected.
func (serv *CompletionsService) Complete(ctx context.Context, userID uuid.UUID, req CompleteRequest) (*entity.Completion, bool, error) {
	if err := validateStruct(req); err != nil {
		return nil, false, err
	}
	offset := -localdate.MaxOffsetMinutes
	if req.TzOffsetMinutes != nil {
		offset = *req.TzOffsetMinutes
	}
	if req.LocalDate > localdate.Today(serv.now(), offset) {
		return nil, false, errorvalues.ErrFutureDate
	}
	if _, err := ownedHabit(ctx, serv.habitsRepo, req.HabitID, userID); err != nil {
		return nil, false, err
	}
	completion, created, err := serv.completionsRepo.Insert(ctx, req.HabitID, userID, req.LocalDate)
	if errors.Is(err, errorvalues.ErrCompletionNotFound) {
		// the conflicting row was deleted before it could be read back
		completion, created, err = serv.completionsRepo.Insert(ctx, req.HabitID, userID, req.LocalDate)
		if errors.Is(err, errorvalues.ErrCompletionNotFound) {
			return nil, false, errorvalues.ErrCompletionConflict
		}
	}
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, false, err
		}
		return nil, false, errors.New("repository error: " + err.Error())
	}
	return completion, created, nil
}

func (serv *CompletionsService) Uncomplete(ctx context.Context, userID, habitID uuid.UUID, localDate string) error {
	if !localdate.IsValid(localDate) {
		return errorvalues.ErrInvalidDate
	}
	if _, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID); err != nil {
		return err
	}
	err := serv.completionsRepo.Delete(ctx, habitID, localDate)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *CompletionsService) IsCompleted(ctx context.Context, userID, habitID uuid.UUID, localDate string) (bool, error) {
	if !localdate.IsValid(localDate) {
		return false, errorvalues.ErrInvalidDate
	}
	if _, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID); err != nil {
		return false, err
	}
	exists, err := serv.completionsRepo.Exists(ctx, habitID, localDate)
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}
	return exists, nil
}
