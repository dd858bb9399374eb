package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/entity"
)

type PushSubscriptionsRepository struct {
	conn PgConnection
}

func NewPushSubscriptionsRepoWithConn(conn PgConnection) *PushSubscriptionsRepository {
	pingOrDie(conn, "pushSubscriptionsRepo")
	return &PushSubscriptionsRepository{
		conn: conn,
	}
}

func (pr *PushSubscriptionsRepository) Upsert(ctx context.Context, sub *entity.PushSubscription) error {
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO push_subscriptions (user_id, token, platform) VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform
		RETURNING id, created_at;`,
		sub.UserID, sub.Token, sub.Platform,
	)
	if err := row.Scan(&sub.ID, &sub.CreatedAt); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving push subscription error: " + err.Error())
	}
	return nil
}

func (pr *PushSubscriptionsRepository) Delete(ctx context.Context, uid uuid.UUID, token string) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM push_subscriptions WHERE user_id = $1 AND token = $2;`, uid, token)
	if err != nil {
		return errors.New("deleting push subscription error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSubscriptionNotFound
	}
	return nil
}

func (pr *PushSubscriptionsRepository) DeleteTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	_, err := pr.conn.Exec(ctx, `DELETE FROM push_subscriptions WHERE token = ANY($1);`, tokens)
	if err != nil {
		return errors.New("deleting stale tokens error: " + err.Error())
	}
	return nil
}

func (pr *PushSubscriptionsRepository) ListTokensByUserID(ctx context.Context, uid uuid.UUID) ([]string, error) {
	rows, err := pr.conn.Query(ctx, `SELECT token FROM push_subscriptions WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("listing push tokens error: " + err.Error())
	}
	defer rows.Close()
	tokens := make([]string, 0)
	for rows.Next() {
		var token string
		if err = rows.Scan(&token); err != nil {
			return nil, errors.New("push token row parsing error: " + err.Error())
		}
		tokens = append(tokens, token)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected push token rows error: " + err.Error())
	}
	return tokens, nil
}
