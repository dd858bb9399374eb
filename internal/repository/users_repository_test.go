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
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.User{
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`INSERT INTO users (name, password_hash) VALUES ($1, $2);`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
	t.Run("nil user", func(t *testing.T) {
		err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
}

func TestFindByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash, created_at FROM users WHERE name = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash", "created_at"}).
				AddRow(user.ID, user.Name, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByName(ctx, user.Name)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, user.Name)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, user.Name)
		assert.Error(t, err)
	})
}

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash, created_at FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash", "created_at"}).
				AddRow(user.ID, user.Name, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
	})
}

func TestUpdateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`UPDATE users SET name = $1, password_hash = $2 WHERE id = $3;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.PasswordHash, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.PasswordHash, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("name taken", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.PasswordHash, user.ID).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		err := repo.Update(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.PasswordHash, user.ID).
			WillReturnError(errors.New("db error"))
		err := repo.Update(ctx, &user)
		assert.Error(t, err)
	})
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, uid)
		assert.Error(t, err)
	})
}

func TestReminderSettings(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	selectQuery := regexp.QuoteMeta(`SELECT reminder_enabled, reminder_time, tz_offset_minutes, to_char(last_reminded_on, 'YYYY-MM-DD')
		FROM users WHERE id = $1;`)
	updateQuery := regexp.QuoteMeta(`UPDATE users SET reminder_enabled = $1, reminder_time = $2, tz_offset_minutes = $3 WHERE id = $4;`)
	t.Run("get", func(t *testing.T) {
		last := "2024-03-10"
		conn.ExpectQuery(selectQuery).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"reminder_enabled", "reminder_time", "tz_offset_minutes", "last_reminded_on"}).
				AddRow(true, "21:30", -180, &last))
		result, err := repo.GetReminderSettings(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, uid, result.UserID)
		assert.True(t, result.Enabled)
		assert.Equal(t, "21:30", result.Time)
		assert.Equal(t, -180, result.TzOffsetMinutes)
		if assert.NotNil(t, result.LastRemindedOn) {
			assert.Equal(t, last, *result.LastRemindedOn)
		}
	})
	t.Run("get for unknown user", func(t *testing.T) {
		conn.ExpectQuery(selectQuery).
			WithArgs(uid).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetReminderSettings(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("update", func(t *testing.T) {
		settings := entity.ReminderSettings{UserID: uid, Enabled: true, Time: "07:00", TzOffsetMinutes: 60}
		conn.ExpectExec(updateQuery).
			WithArgs(settings.Enabled, settings.Time, settings.TzOffsetMinutes, settings.UserID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateReminderSettings(ctx, &settings)
		assert.NoError(t, err)
	})
	t.Run("update for unknown user", func(t *testing.T) {
		settings := entity.ReminderSettings{UserID: uid, Time: "07:00"}
		conn.ExpectExec(updateQuery).
			WithArgs(settings.Enabled, settings.Time, settings.TzOffsetMinutes, settings.UserID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateReminderSettings(ctx, &settings)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestListReminderEnabled(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	query := regexp.QuoteMeta(`SELECT id, reminder_time, tz_offset_minutes, to_char(last_reminded_on, 'YYYY-MM-DD')
		FROM users WHERE reminder_enabled;`)
	first, second := uuid.New(), uuid.New()
	last := "2024-03-10"
	t.Run("success", func(t *testing.T) {
		var never *string
		conn.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"id", "reminder_time", "tz_offset_minutes", "last_reminded_on"}).
				AddRow(first, "20:00", 0, never).
				AddRow(second, "08:15", -300, &last))
		result, err := repo.ListReminderEnabled(ctx)
		assert.NoError(t, err)
		if assert.Len(t, result, 2) {
			assert.Equal(t, first, result[0].UserID)
			assert.True(t, result[0].Enabled)
			assert.Nil(t, result[0].LastRemindedOn)
			assert.Equal(t, "08:15", result[1].Time)
			assert.Equal(t, last, *result[1].LastRemindedOn)
		}
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.ListReminderEnabled(ctx)
		assert.Error(t, err)
	})
	t.Run("mark reminded", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE users SET last_reminded_on = $1 WHERE id = $2;`)).
			WithArgs(last, first).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.MarkReminded(ctx, first, last)
		assert.NoError(t, err)
	})
}
