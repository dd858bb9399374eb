package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/entity"
)

// ErrInviteCodeTaken is returned by Create when the generated code collides.
var ErrInviteCodeTaken = errors.New("invite code already taken")

type InvitesRepository struct {
	conn PgConnection
}

func NewInvitesRepoWithConn(conn PgConnection) *InvitesRepository {
	pingOrDie(conn, "invitesRepo")
	return &InvitesRepository{
		conn: conn,
	}
}

func (ir *InvitesRepository) Create(ctx context.Context, invite *entity.Invite) error {
	row := ir.conn.QueryRow(ctx,
		`INSERT INTO invites (code, inviter_id, expires_at) VALUES ($1, $2, $3) RETURNING status, created_at;`,
		invite.Code, invite.InviterID, invite.ExpiresAt,
	)
	var status string
	if err := row.Scan(&status, &invite.CreatedAt); err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return ErrInviteCodeTaken
		case pgForeignKeyViolation:
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating invite error: " + err.Error())
	}
	invite.Status = entity.InviteStatus(status)
	return nil
}

func (ir *InvitesRepository) GetByCode(ctx context.Context, code string) (*entity.Invite, error) {
	var (
		inv    entity.Invite
		status string
	)
	row := ir.conn.QueryRow(ctx,
		`SELECT code, inviter_id, status, accepted_by, expires_at, created_at FROM invites WHERE code = $1;`,
		code,
	)
	if err := row.Scan(&inv.Code, &inv.InviterID, &status, &inv.AcceptedBy, &inv.ExpiresAt, &inv.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrInviteNotFound
		}
		return nil, errors.New("getting invite error: " + err.Error())
	}
	inv.Status = entity.InviteStatus(status)
	return &inv, nil
}

func (ir *InvitesRepository) ListPendingByInviter(ctx context.Context, inviterID uuid.UUID) ([]entity.Invite, error) {
	rows, err := ir.conn.Query(ctx,
		`SELECT code, expires_at, created_at FROM invites
		WHERE inviter_id = $1 AND status = 'pending' AND expires_at > NOW() ORDER BY created_at DESC;`,
		inviterID,
	)
	if err != nil {
		return nil, errors.New("listing invites error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Invite, 0)
	for rows.Next() {
		inv := entity.Invite{InviterID: inviterID, Status: entity.InvitePending}
		if err = rows.Scan(&inv.Code, &inv.ExpiresAt, &inv.CreatedAt); err != nil {
			return nil, errors.New("invite row parsing error: " + err.Error())
		}
		result = append(result, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected invite rows error: " + err.Error())
	}
	return result, nil
}

func (ir *InvitesRepository) Revoke(ctx context.Context, code string, inviterID uuid.UUID) error {
	ct, err := ir.conn.Exec(ctx,
		`UPDATE invites SET status = 'revoked' WHERE code = $1 AND inviter_id = $2 AND status = 'pending';`,
		code, inviterID,
	)
	if err != nil {
		return errors.New("revoking invite error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrInviteNotFound
	}
	return nil
}
