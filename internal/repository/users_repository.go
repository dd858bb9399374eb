package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	pingOrDie(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (name, password_hash) VALUES ($1, $2);`, user.Name, user.PasswordHash)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash, created_at FROM users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash, created_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET name = $1, password_hash = $2 WHERE id = $3;`,
		user.Name,
		user.PasswordHash,
		user.ID,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) GetReminderSettings(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error) {
	settings := entity.ReminderSettings{UserID: uid}
	row := ur.conn.QueryRow(ctx, `SELECT reminder_enabled, reminder_time, tz_offset_minutes, to_char(last_reminded_on, 'YYYY-MM-DD')
		FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&settings.Enabled, &settings.Time, &settings.TzOffsetMinutes, &settings.LastRemindedOn); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("getting reminder settings error: " + err.Error())
	}
	return &settings, nil
}

func (ur *UsersRepository) UpdateReminderSettings(ctx context.Context, settings *entity.ReminderSettings) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET reminder_enabled = $1, reminder_time = $2, tz_offset_minutes = $3 WHERE id = $4;`,
		settings.Enabled,
		settings.Time,
		settings.TzOffsetMinutes,
		settings.UserID,
	)
	if err != nil {
		return errors.New("updating reminder settings error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) ListReminderEnabled(ctx context.Context) ([]entity.ReminderSettings, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, reminder_time, tz_offset_minutes, to_char(last_reminded_on, 'YYYY-MM-DD')
		FROM users WHERE reminder_enabled;`)
	if err != nil {
		return nil, errors.New("listing reminder settings error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ReminderSettings, 0)
	for rows.Next() {
		s := entity.ReminderSettings{Enabled: true}
		if err = rows.Scan(&s.UserID, &s.Time, &s.TzOffsetMinutes, &s.LastRemindedOn); err != nil {
			return nil, errors.New("reminder settings row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected reminder settings rows error: " + err.Error())
	}
	return result, nil
}

func (ur *UsersRepository) MarkReminded(ctx context.Context, uid uuid.UUID, localDate string) error {
	_, err := ur.conn.Exec(ctx, `UPDATE users SET last_reminded_on = $1 WHERE id = $2;`, localDate, uid)
	if err != nil {
		return errors.New("marking reminder error: " + err.Error())
	}
	return nil
}
