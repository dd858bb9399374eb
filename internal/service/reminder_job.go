package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/streakmate/internal/repository"
	"github.com/limbo/streakmate/pkg/entity"
	"github.com/limbo/streakmate/pkg/localdate"
	"github.com/robfig/cron/v3"
)

const DefaultReminderInterval = time.Minute

// ReminderJob periodically pushes "habits left today" reminders to users whose
// local time passed their reminder time. Each user is reminded at most once
// per local date.
type ReminderJob struct {
	users       repository.UsersRepositoryI
	habits      repository.HabitsRepositoryI
	completions repository.CompletionsRepositoryI
	notifier    Notifier
	cron        *cron.Cron
	interval    time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

func NewReminderJob(users repository.UsersRepositoryI, habits repository.HabitsRepositoryI,
	completions repository.CompletionsRepositoryI, notifier Notifier, interval time.Duration) *ReminderJob {
	if users == nil || habits == nil || completions == nil || notifier == nil {
		log.Fatal("on reminder job provided nil dependencies")
	}
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	return &ReminderJob{
		users:       users,
		habits:      habits,
		completions: completions,
		notifier:    notifier,
		cron:        cron.New(),
		interval:    interval,
		now:         time.Now,
		logger:      slog.Default().With(slog.String("job", "reminders")),
	}
}

func (j *ReminderJob) WithClock(now func() time.Time) *ReminderJob {
	j.now = now
	return j
}

func (j *ReminderJob) Start() error {
	schedule := fmt.Sprintf("@every %s", j.interval.String())
	_, err := j.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.interval)
		defer cancel()
		j.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	j.cron.Start()
	j.logger.Info("reminder job started", slog.String("interval", j.interval.String()))
	return nil
}

// Stop waits for a running tick to finish.
func (j *ReminderJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("reminder job stopped")
}

// RunOnce processes every user with reminders enabled and returns how many
// reminders were sent.
func (j *ReminderJob) RunOnce(ctx context.Context) int {
	settings, err := j.users.ListReminderEnabled(ctx)
	if err != nil {
		j.logger.Error("listing reminder settings error", slog.String("error", err.Error()))
		return 0
	}
	now := j.now()
	sent := 0
	for _, s := range settings {
		ok, err := j.remind(ctx, s, now)
		if err != nil {
			j.logger.Error("reminder error",
				slog.String("uid", s.UserID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if ok {
			sent++
		}
	}
	if sent > 0 {
		j.logger.Info("reminders sent", slog.Int("count", sent))
	}
	return sent
}

func (j *ReminderJob) remind(ctx context.Context, s entity.ReminderSettings, now time.Time) (bool, error) {
	today := localdate.FormatDateWithOffset(now, s.TzOffsetMinutes)
	if s.LastRemindedOn != nil && *s.LastRemindedOn >= today {
		return false, nil
	}
	// HH:MM strings order the same way as the times they denote
	if LocalClock(now, s.TzOffsetMinutes) < s.Time {
		return false, nil
	}
	habits, err := j.habits.ListAllByUserID(ctx, s.UserID)
	if err != nil {
		return false, err
	}
	done, err := j.completions.CompletedHabitIDs(ctx, s.UserID, today)
	if err != nil {
		return false, err
	}
	left := len(habits) - len(done)
	if left > 0 {
		err = j.notifier.SendToUser(ctx, s.UserID, &entity.PushMessage{
			Title: "Daily reminder",
			Body:  reminderBody(left),
			Data: map[string]string{
				"type":      "reminder",
				"localDate": today,
			},
		})
		if err != nil && !errors.Is(err, ErrPushDisabled) {
			return false, err
		}
	}
	if err = j.users.MarkReminded(ctx, s.UserID, today); err != nil {
		return false, err
	}
	return left > 0, nil
}

// LocalClock formats the wall clock time in the zone offsetMinutes west of UTC.
func LocalClock(now time.Time, offsetMinutes int) string {
	return now.UTC().Add(-time.Duration(offsetMinutes) * time.Minute).Format("15:04")
}

func reminderBody(left int) string {
	if left == 1 {
		return "1 habit left today"
	}
	return fmt.Sprintf("%d habits left today", left)
}
