package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/internal/repository"
	"github.com/limbo/streakmate/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var habitColumns = []string{"id", "user_id", "title", "description", "created_at", "updated_at"}

func newHabitsRepoMock(t *testing.T) (*repository.HabitsRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	return repository.NewHabitsRepoWithConn(mock), mock
}

// morningRoutine is a user's habits in creation order.
func morningRoutine() []*entity.Habit {
	created := time.Date(2024, time.March, 1, 6, 0, 0, 0, time.UTC)
	titles := []string{"drink water", "stretch", "read 10 pages"}
	habits := make([]*entity.Habit, 0, len(titles))
	for i, title := range titles {
		at := created.Add(time.Duration(i) * time.Minute)
		habits = append(habits, &entity.Habit{
			ID:        uuid.New(),
			UserID:    userID,
			Title:     title,
			CreatedAt: at,
			UpdatedAt: at,
		})
	}
	return habits
}

func habitRows(habits []*entity.Habit) *pgxmock.Rows {
	rows := pgxmock.NewRows(habitColumns)
	for _, h := range habits {
		rows.AddRow(h.ID, h.UserID, h.Title, h.Description, h.CreatedAt, h.UpdatedAt)
	}
	return rows
}

func TestCreateHabit(t *testing.T) {
	repo, mock := newHabitsRepoMock(t)
	ctx := context.Background()
	habit := entity.Habit{UserID: userID, Title: "meditate", Description: "5 minutes after waking up"}
	query := regexp.QuoteMeta(`INSERT INTO habits (user_id, title, description) VALUES ($1, $2, $3) RETURNING id;`)
	testCases := []struct {
		Desc        string
		Result      error
		ExpectedErr error
	}{
		{Desc: "title taken", Result: &pgconn.PgError{Code: "23505"}, ExpectedErr: errorvalues.ErrUserHasHabit},
		{Desc: "owner deleted", Result: &pgconn.PgError{Code: "23503"}, ExpectedErr: errorvalues.ErrOwnerNotFound},
	}
	t.Run("created", func(t *testing.T) {
		hid := uuid.New()
		mock.ExpectQuery(query).
			WithArgs(userID, "meditate", "5 minutes after waking up").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
		id, err := repo.Create(ctx, &habit)
		assert.NoError(t, err)
		assert.Equal(t, hid, id)
	})
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			mock.ExpectQuery(query).
				WithArgs(userID, "meditate", "5 minutes after waking up").
				WillReturnError(tc.Result)
			id, err := repo.Create(ctx, &habit)
			assert.ErrorIs(t, err, tc.ExpectedErr)
			assert.Equal(t, uuid.Nil, id)
		})
	}
	t.Run("connection lost", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, "meditate", "5 minutes after waking up").
			WillReturnError(errors.New("conn closed"))
		_, err := repo.Create(ctx, &habit)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserHasHabit)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHabitByID(t *testing.T) {
	repo, mock := newHabitsRepoMock(t)
	ctx := context.Background()
	habit := morningRoutine()[1]
	habit.Description = "hamstrings and back"
	query := regexp.QuoteMeta(`SELECT user_id, title, description, created_at, updated_at FROM habits WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnRows(pgxmock.NewRows(habitColumns[1:]).
				AddRow(habit.UserID, habit.Title, habit.Description, habit.CreatedAt, habit.UpdatedAt))
		got, err := repo.GetByID(ctx, habit.ID)
		require.NoError(t, err)
		assert.Equal(t, *habit, *got)
	})
	t.Run("deleted meanwhile", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(habit.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("connection lost", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(habit.ID).WillReturnError(errors.New("conn closed"))
		_, err := repo.GetByID(ctx, habit.ID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHabitsByUserID(t *testing.T) {
	repo, mock := newHabitsRepoMock(t)
	ctx := context.Background()
	habits := morningRoutine()
	query := regexp.QuoteMeta(`SELECT id, user_id, title, description, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3;`)
	t.Run("first page", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, 2, 0).WillReturnRows(habitRows(habits[:2]))
		got, err := repo.GetByUserID(ctx, userID, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, habits[:2], got)
	})
	t.Run("second page", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, 2, 2).WillReturnRows(habitRows(habits[2:]))
		got, err := repo.GetByUserID(ctx, userID, 2, 2)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "read 10 pages", got[0].Title)
	})
	t.Run("connection lost", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, 2, 4).WillReturnError(errors.New("conn closed"))
		_, err := repo.GetByUserID(ctx, userID, 2, 4)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllHabitsByUserID(t *testing.T) {
	repo, mock := newHabitsRepoMock(t)
	ctx := context.Background()
	habits := morningRoutine()
	query := regexp.QuoteMeta(`SELECT id, user_id, title, description, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at, id;`)
	t.Run("creation order kept", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(habitRows(habits))
		got, err := repo.ListAllByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, h := range got {
			assert.Equal(t, habits[i].ID, h.ID)
		}
		assert.Equal(t, []string{"drink water", "stretch", "read 10 pages"},
			[]string{got[0].Title, got[1].Title, got[2].Title})
	})
	t.Run("no habits yet", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(partnerID).WillReturnRows(pgxmock.NewRows(habitColumns))
		got, err := repo.ListAllByUserID(ctx, partnerID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
	t.Run("scan error", func(t *testing.T) {
		rows := pgxmock.NewRows(habitColumns).
			AddRow(habits[0].ID, userID, "drink water", "", "not a timestamp", habits[0].UpdatedAt)
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
		_, err := repo.ListAllByUserID(ctx, userID)
		assert.Error(t, err)
	})
	t.Run("rows error", func(t *testing.T) {
		rows := habitRows(habits).RowError(1, errors.New("stream interrupted"))
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
		got, err := repo.ListAllByUserID(ctx, userID)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("conn closed"))
		_, err := repo.ListAllByUserID(ctx, userID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHabit(t *testing.T) {
	repo, mock := newHabitsRepoMock(t)
	ctx := context.Background()
	habit := morningRoutine()[0]
	habit.Title = "drink 2l of water"
	query := regexp.QuoteMeta(`UPDATE habits SET title = $1, description = $2, updated_at = NOW() WHERE id = $3;`)
	testCases := []struct {
		Desc        string
		Prep        func(e *pgxmock.ExpectedExec)
		ExpectedErr error
	}{
		{
			Desc: "renamed",
			Prep: func(e *pgxmock.ExpectedExec) { e.WillReturnResult(pgxmock.NewResult("UPDATE", 1)) },
		},
		{
			Desc:        "habit gone",
			Prep:        func(e *pgxmock.ExpectedExec) { e.WillReturnResult(pgxmock.NewResult("UPDATE", 0)) },
			ExpectedErr: errorvalues.ErrHabitNotFound,
		},
		{
			Desc:        "title taken",
			Prep:        func(e *pgxmock.ExpectedExec) { e.WillReturnError(&pgconn.PgError{Code: "23505"}) },
			ExpectedErr: errorvalues.ErrUserHasHabit,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.Prep(mock.ExpectExec(query).WithArgs("drink 2l of water", "", habit.ID))
			err := repo.Update(ctx, habit)
			if tc.ExpectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.ExpectedErr)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteHabit(t *testing.T) {
	repo, mock := newHabitsRepoMock(t)
	ctx := context.Background()
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM habits WHERE id = $1;`)
	mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(ctx, id))
	mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrHabitNotFound)
	mock.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("conn closed"))
	assert.Error(t, repo.Delete(ctx, id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitsIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	repo := repository.NewHabitsRepoWithConn(repository.NewPool(setupTestDB(t)))
	ctx := context.Background()
	routine := morningRoutine()
	for _, h := range routine {
		id, err := repo.Create(ctx, h)
		require.NoError(t, err)
		h.ID = id
	}

	_, err := repo.Create(ctx, &entity.Habit{UserID: userID, Title: "stretch"})
	assert.ErrorIs(t, err, errorvalues.ErrUserHasHabit)
	_, err = repo.Create(ctx, &entity.Habit{UserID: uuid.New(), Title: "stretch"})
	assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	// same title belongs to another user
	_, err = repo.Create(ctx, &entity.Habit{UserID: partnerID, Title: "stretch"})
	assert.NoError(t, err)

	all, err := repo.ListAllByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, h := range all {
		assert.Equal(t, routine[i].ID, h.ID)
	}
	page, err := repo.GetByUserID(ctx, userID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, all[1:], page)
	none, err := repo.ListAllByUserID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, none)

	renamed := entity.Habit{ID: routine[2].ID, Title: "read 20 pages", Description: "fiction"}
	require.NoError(t, repo.Update(ctx, &renamed))
	got, err := repo.GetByID(ctx, renamed.ID)
	require.NoError(t, err)
	assert.Equal(t, "read 20 pages", got.Title)
	assert.Equal(t, "fiction", got.Description)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Habit{ID: routine[2].ID, Title: "stretch"}), errorvalues.ErrUserHasHabit)

	require.NoError(t, repo.Delete(ctx, routine[0].ID))
	_, err = repo.GetByID(ctx, routine[0].ID)
	assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, routine[0].ID), errorvalues.ErrHabitNotFound)
}
