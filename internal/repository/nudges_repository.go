package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/entity"
)

type NudgesRepository struct {
	conn PgConnection
}

func NewNudgesRepoWithConn(conn PgConnection) *NudgesRepository {
	pingOrDie(conn, "nudgesRepo")
	return &NudgesRepository{
		conn: conn,
	}
}

func (nr *NudgesRepository) Create(ctx context.Context, nudge *entity.Nudge) (*entity.Nudge, error) {
	created := *nudge
	row := nr.conn.QueryRow(ctx,
		`INSERT INTO nudges (from_user, to_user, message) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		nudge.FromUser, nudge.ToUser, nudge.Message,
	)
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("creating nudge error: " + err.Error())
	}
	return &created, nil
}

func (nr *NudgesRepository) LastSentAt(ctx context.Context, from, to uuid.UUID) (*time.Time, error) {
	var sentAt time.Time
	row := nr.conn.QueryRow(ctx,
		`SELECT created_at FROM nudges WHERE from_user = $1 AND to_user = $2 ORDER BY created_at DESC LIMIT 1;`,
		from, to,
	)
	if err := row.Scan(&sentAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting last nudge error: " + err.Error())
	}
	return &sentAt, nil
}

func (nr *NudgesRepository) CountSentSince(ctx context.Context, from uuid.UUID, since time.Time) (int, error) {
	var count int
	row := nr.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM nudges WHERE from_user = $1 AND created_at >= $2;`,
		from, since,
	)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting nudges error: " + err.Error())
	}
	return count, nil
}

func (nr *NudgesRepository) ListReceived(ctx context.Context, to uuid.UUID, limit int) ([]entity.Nudge, error) {
	rows, err := nr.conn.Query(ctx,
		`SELECT id, from_user, to_user, message, created_at FROM nudges
		WHERE to_user = $1 ORDER BY created_at DESC LIMIT $2;`,
		to, limit,
	)
	if err != nil {
		return nil, errors.New("listing nudges error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Nudge, 0)
	for rows.Next() {
		n := entity.Nudge{}
		if err = rows.Scan(&n.ID, &n.FromUser, &n.ToUser, &n.Message, &n.CreatedAt); err != nil {
			return nil, errors.New("nudge row parsing error: " + err.Error())
		}
		result = append(result, n)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected nudge rows error: " + err.Error())
	}
	return result, nil
}
