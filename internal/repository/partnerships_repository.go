package repository

import (
	"bytes"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/entity"
)

type PartnershipsRepository struct {
	conn PgConnection
}

func NewPartnershipsRepoWithConn(conn PgConnection) *PartnershipsRepository {
	pingOrDie(conn, "partnershipsRepo")
	return &PartnershipsRepository{
		conn: conn,
	}
}

// OrderPair returns the two ids in the order stored in partnerships.
func OrderPair(a, b uuid.UUID) (low, high uuid.UUID) {
	if bytes.Compare(a[:], b[:]) < 0 {
		return a, b
	}
	return b, a
}

func (pr *PartnershipsRepository) CreateFromInvite(ctx context.Context, code string, accepterID, inviterID uuid.UUID) (*entity.Partnership, error) {
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting transaction error: " + err.Error())
	}
	ct, err := tx.Exec(ctx,
		`UPDATE invites SET status = 'accepted', accepted_by = $1
		WHERE code = $2 AND inviter_id = $3 AND status = 'pending' AND expires_at > NOW();`,
		accepterID, code, inviterID,
	)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, errors.New("accepting invite error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return nil, errorvalues.ErrInviteNotFound
	}
	p := entity.Partnership{}
	p.UserLow, p.UserHigh = OrderPair(accepterID, inviterID)
	row := tx.QueryRow(ctx,
		`INSERT INTO partnerships (user_low, user_high) VALUES ($1, $2) RETURNING id, created_at;`,
		p.UserLow, p.UserHigh,
	)
	if err = row.Scan(&p.ID, &p.CreatedAt); err != nil {
		_ = tx.Rollback(ctx)
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return nil, errorvalues.ErrAlreadyPartnered
		case pgForeignKeyViolation:
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("creating partnership error: " + err.Error())
	}
	// user_id is the primary key, so a user already paired in either column
	// fails here
	_, err = tx.Exec(ctx,
		`INSERT INTO partnership_members (user_id, partnership_id) VALUES ($1, $3), ($2, $3);`,
		p.UserLow, p.UserHigh, p.ID,
	)
	if err != nil {
		_ = tx.Rollback(ctx)
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return nil, errorvalues.ErrAlreadyPartnered
		case pgForeignKeyViolation:
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("adding partnership members error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing partnership error: " + err.Error())
	}
	return &p, nil
}

func (pr *PartnershipsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Partnership, error) {
	var p entity.Partnership
	row := pr.conn.QueryRow(ctx,
		`SELECT p.id, p.user_low, p.user_high, p.created_at FROM partnership_members m
		JOIN partnerships p ON p.id = m.partnership_id WHERE m.user_id = $1;`,
		uid,
	)
	if err := row.Scan(&p.ID, &p.UserLow, &p.UserHigh, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPartnershipNotFound
		}
		return nil, errors.New("getting partnership error: " + err.Error())
	}
	return &p, nil
}

func (pr *PartnershipsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM partnerships WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting partnership error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPartnershipNotFound
	}
	return nil
}
