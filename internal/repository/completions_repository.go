package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	pingOrDie(conn, "completionsRepo")
	return &CompletionsRepository{
		conn: conn,
	}
}

const completionColumns = `id, habit_id, user_id, to_char(local_date, 'YYYY-MM-DD'), created_at`

func (cr *CompletionsRepository) Insert(ctx context.Context, habitID, userID uuid.UUID, localDate string) (*entity.Completion, bool, error) {
	var c entity.Completion
	row := cr.conn.QueryRow(
		ctx,
		`INSERT INTO completions (habit_id, user_id, local_date) VALUES ($1, $2, $3)
		ON CONFLICT (habit_id, local_date) DO NOTHING
		RETURNING `+completionColumns+`;`,
		habitID,
		userID,
		localDate,
	)
	err := row.Scan(&c.ID, &c.HabitID, &c.UserID, &c.LocalDate, &c.CreatedAt)
	if err == nil {
		return &c, true, nil
	}
	if pgErrCode(err) == pgForeignKeyViolation {
		return nil, false, errorvalues.ErrHabitNotFound
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, errors.New("creating completion error: " + err.Error())
	}
	// conflict: the row already exists
	row = cr.conn.QueryRow(
		ctx,
		`SELECT `+completionColumns+` FROM completions WHERE habit_id = $1 AND local_date = $2;`,
		habitID,
		localDate,
	)
	if err = row.Scan(&c.ID, &c.HabitID, &c.UserID, &c.LocalDate, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// deleted between the two statements
			return nil, false, errorvalues.ErrCompletionNotFound
		}
		return nil, false, errors.New("getting existing completion error: " + err.Error())
	}
	return &c, false, nil
}

func (cr *CompletionsRepository) Delete(ctx context.Context, habitID uuid.UUID, localDate string) error {
	ct, err := cr.conn.Exec(
		ctx,
		`DELETE FROM completions WHERE habit_id = $1 AND local_date = $2;`,
		habitID,
		localDate,
	)
	if err != nil {
		return errors.New("deleting completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCompletionNotFound
	}
	return nil
}

func (cr *CompletionsRepository) Exists(ctx context.Context, habitID uuid.UUID, localDate string) (bool, error) {
	var exists bool
	row := cr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM completions WHERE habit_id = $1 AND local_date = $2);`,
		habitID,
		localDate,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if completion exists error: " + err.Error())
	}
	return exists, nil
}

// ListDatesDesc feeds the current-streak calculation. A missing completions
// table is reported as an empty history.
func (cr *CompletionsRepository) ListDatesDesc(ctx context.Context, habitID uuid.UUID, upTo string) ([]string, error) {
	dates, err := cr.queryDates(ctx,
		`SELECT to_char(local_date, 'YYYY-MM-DD') FROM completions
		WHERE habit_id = $1 AND local_date <= $2 ORDER BY local_date DESC;`,
		habitID, upTo,
	)
	if err != nil {
		if pgErrCode(err) == pgUndefinedTable {
			return []string{}, nil
		}
		return nil, fmt.Errorf("listing streak dates error: %w", err)
	}
	return dates, nil
}

// ListDatesAsc feeds the best-streak calculation. A missing completions
// table is reported as an empty history.
func (cr *CompletionsRepository) ListDatesAsc(ctx context.Context, habitID uuid.UUID) ([]string, error) {
	dates, err := cr.queryDates(ctx,
		`SELECT to_char(local_date, 'YYYY-MM-DD') FROM completions
		WHERE habit_id = $1 ORDER BY local_date ASC;`,
		habitID,
	)
	if err != nil {
		if pgErrCode(err) == pgUndefinedTable {
			return []string{}, nil
		}
		return nil, fmt.Errorf("listing streak dates error: %w", err)
	}
	return dates, nil
}

func (cr *CompletionsRepository) ListDatesInRange(ctx context.Context, habitID uuid.UUID, from, to string) ([]string, error) {
	dates, err := cr.queryDates(ctx,
		`SELECT to_char(local_date, 'YYYY-MM-DD') FROM completions
		WHERE habit_id = $1 AND local_date >= $2 AND local_date <= $3 ORDER BY local_date ASC;`,
		habitID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("listing completions for period error: %w", err)
	}
	return dates, nil
}

func (cr *CompletionsRepository) queryDates(ctx context.Context, sql string, args ...any) ([]string, error) {
	rows, err := cr.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	dates := make([]string, 0)
	for rows.Next() {
		var d string
		if err = rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}

func (cr *CompletionsRepository) CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM completions WHERE habit_id = $1;`,
		habitID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		if pgErrCode(err) == pgUndefinedTable {
			return 0, nil
		}
		return 0, errors.New("error counting completions: " + err.Error())
	}
	return count, nil
}

func (cr *CompletionsRepository) CompletedHabitIDs(ctx context.Context, userID uuid.UUID, localDate string) ([]uuid.UUID, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT habit_id FROM completions WHERE user_id = $1 AND local_date = $2;`,
		userID,
		localDate,
	)
	if err != nil {
		return nil, errors.New("getting completed habits error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("completed habit row parsing error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected completed habits rows error: " + err.Error())
	}
	return ids, nil
}
