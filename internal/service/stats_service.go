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
	"github.com/limbo/streakmate/pkg/streak"
)

type StatsService struct {
	habitsRepo      repository.HabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	now             func() time.Time
}

func NewStatsService(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI) *StatsService {
	if habitsRepo == nil || completionsRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		now:             time.Now,
	}
}

func (ss *StatsService) WithClock(now func() time.Time) *StatsService {
	ss.now = now
	return ss
}

func (ss *StatsService) GetStreaks(ctx context.Context, userID, habitID uuid.UUID, localDate string) (*entity.HabitStreak, error) {
	if !localdate.IsValid(localDate) {
		return nil, errorvalues.ErrInvalidDate
	}
	if _, err := ownedHabit(ctx, ss.habitsRepo, habitID, userID); err != nil {
		return nil, err
	}
	return habitStreak(ctx, ss.completionsRepo, habitID, localDate)
}

func (ss *StatsService) GetAllStreaks(ctx context.Context, userID uuid.UUID, localDate string) ([]entity.HabitStreak, error) {
	if !localdate.IsValid(localDate) {
		return nil, errorvalues.ErrInvalidDate
	}
	habits, err := ss.habitsRepo.ListAllByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	result := make([]entity.HabitStreak, 0, len(habits))
	for _, h := range habits {
		s, err := habitStreak(ctx, ss.completionsRepo, h.ID, localDate)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	return result, nil
}

// GetCalendar returns completion dates of the month clipped to the days the
// habit existed and that are not in the future for the caller.
func (ss *StatsService) GetCalendar(ctx context.Context, userID, habitID uuid.UUID, month string, tzOffsetMinutes int) (*entity.CalendarMonth, error) {
	now := ss.now()
	today := localdate.FormatDateWithOffset(now, tzOffsetMinutes)
	if month == "" {
		month = localdate.MonthOf(today)
	}
	mp, ok := localdate.ParseMonth(month)
	if !ok {
		return nil, errorvalues.ErrInvalidMonth
	}
	habit, err := ownedHabit(ctx, ss.habitsRepo, habitID, userID)
	if err != nil {
		return nil, err
	}
	createdOn := localdate.FormatDateWithOffset(habit.CreatedAt, tzOffsetMinutes)
	cal := entity.CalendarMonth{
		HabitID:   habitID,
		Month:     month,
		StartDate: localdate.Max(mp.StartDate, createdOn),
		EndDate:   localdate.Min(mp.EndDate, today),
		Dates:     []string{},
	}
	if cal.EndDate < cal.StartDate {
		return &cal, nil
	}
	dates, err := ss.completionsRepo.ListDatesInRange(ctx, habitID, cal.StartDate, cal.EndDate)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	cal.Dates = dates
	return &cal, nil
}

// habitStreak reads the two orderings the calculator needs. The current
// streak only sees dates up to the reference.
func habitStreak(ctx context.Context, repo repository.CompletionsRepositoryI, habitID uuid.UUID, reference string) (*entity.HabitStreak, error) {
	desc, err := repo.ListDatesDesc(ctx, habitID, reference)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	asc, err := repo.ListDatesAsc(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	total, err := repo.CountByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	res := streak.Compute(desc, asc, reference)
	return &entity.HabitStreak{
		HabitID:          habitID,
		CurrentStreak:    res.Current,
		BestStreak:       res.Best,
		TotalCompletions: total,
	}, nil
}
