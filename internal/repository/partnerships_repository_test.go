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
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestOrderPair(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")
	low, high := repository.OrderPair(a, b)
	assert.Equal(t, a, low)
	assert.Equal(t, b, high)
	low, high = repository.OrderPair(b, a)
	assert.Equal(t, a, low)
	assert.Equal(t, b, high)
}

func TestCreatePartnershipFromInvite(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPartnershipsRepoWithConn(mock)
	ctx := context.Background()
	inviter, accepter := uuid.New(), uuid.New()
	low, high := repository.OrderPair(inviter, accepter)
	code := "ABCD2345"
	acceptQuery := regexp.QuoteMeta(`UPDATE invites SET status = 'accepted', accepted_by = $1
		WHERE code = $2 AND inviter_id = $3 AND status = 'pending' AND expires_at > NOW();`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO partnerships (user_low, user_high) VALUES ($1, $2) RETURNING id, created_at;`)
	membersQuery := regexp.QuoteMeta(`INSERT INTO partnership_members (user_id, partnership_id) VALUES ($1, $3), ($2, $3);`)
	t.Run("success", func(t *testing.T) {
		pid, createdAt := uuid.New(), time.Now()
		mock.ExpectBegin()
		mock.ExpectExec(acceptQuery).
			WithArgs(accepter, code, inviter).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(insertQuery).
			WithArgs(low, high).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(pid, createdAt))
		mock.ExpectExec(membersQuery).
			WithArgs(low, high, pid).
			WillReturnResult(pgxmock.NewResult("INSERT", 2))
		mock.ExpectCommit()
		p, err := repo.CreateFromInvite(ctx, code, accepter, inviter)
		assert.NoError(t, err)
		assert.Equal(t, pid, p.ID)
		assert.Equal(t, low, p.UserLow)
		assert.Equal(t, high, p.UserHigh)
		assert.Equal(t, inviter, p.PartnerOf(accepter))
	})
	t.Run("invite not usable", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(acceptQuery).
			WithArgs(accepter, code, inviter).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()
		_, err := repo.CreateFromInvite(ctx, code, accepter, inviter)
		assert.ErrorIs(t, err, errorvalues.ErrInviteNotFound)
	})
	t.Run("member already partnered", func(t *testing.T) {
		pid := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec(acceptQuery).
			WithArgs(accepter, code, inviter).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(insertQuery).
			WithArgs(low, high).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(pid, time.Now()))
		mock.ExpectExec(membersQuery).
			WithArgs(low, high, pid).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
		_, err := repo.CreateFromInvite(ctx, code, accepter, inviter)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyPartnered)
	})
	t.Run("member deleted", func(t *testing.T) {
		pid := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec(acceptQuery).
			WithArgs(accepter, code, inviter).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(insertQuery).
			WithArgs(low, high).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(pid, time.Now()))
		mock.ExpectExec(membersQuery).
			WithArgs(low, high, pid).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()
		_, err := repo.CreateFromInvite(ctx, code, accepter, inviter)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.CreateFromInvite(ctx, code, accepter, inviter)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPartnership(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPartnershipsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT p.id, p.user_low, p.user_high, p.created_at FROM partnership_members m
		JOIN partnerships p ON p.id = m.partnership_id WHERE m.user_id = $1;`)
	low, high := repository.OrderPair(userID, partnerID)
	t.Run("found", func(t *testing.T) {
		pid := uuid.New()
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_low", "user_high", "created_at"}).AddRow(pid, low, high, time.Now()))
		p, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, pid, p.ID)
		assert.Equal(t, partnerID, p.PartnerOf(userID))
	})
	t.Run("no partner", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByUserID(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrPartnershipNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		pid := uuid.New()
		deleteQuery := regexp.QuoteMeta(`DELETE FROM partnerships WHERE id = $1;`)
		mock.ExpectExec(deleteQuery).WithArgs(pid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, pid))
		mock.ExpectExec(deleteQuery).WithArgs(pid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, pid), errorvalues.ErrPartnershipNotFound)
	})
}
