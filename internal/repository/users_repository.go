package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/pkg/entity"
)

const userColumns = `id, name, password_hash, current_focus, display_name, bio, avatar, notify_daily, notify_weekly, notify_achievements, profile_public, stats_public, created_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (name, password_hash, current_focus, display_name, bio, avatar,
		notify_daily, notify_weekly, notify_achievements, profile_public, stats_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at;`,
		user.Name,
		user.PasswordHash,
		user.CurrentFocus,
		user.Profile.DisplayName,
		user.Profile.Bio,
		user.Profile.Avatar,
		user.Notifications.Daily,
		user.Notifications.Weekly,
		user.Notifications.Achievements,
		user.Privacy.ProfilePublic,
		user.Privacy.StatsPublic,
	)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return wrapPgError("creating user", err)
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1;`, name)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, wrapPgError("searching user by name", err)
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, wrapPgError("searching user by id", err)
	}
	return user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET name = $1, password_hash = $2, current_focus = $3, display_name = $4,
		bio = $5, avatar = $6, notify_daily = $7, notify_weekly = $8, notify_achievements = $9,
		profile_public = $10, stats_public = $11 WHERE id = $12;`,
		user.Name,
		user.PasswordHash,
		user.CurrentFocus,
		user.Profile.DisplayName,
		user.Profile.Bio,
		user.Profile.Avatar,
		user.Notifications.Daily,
		user.Notifications.Weekly,
		user.Notifications.Achievements,
		user.Privacy.ProfilePublic,
		user.Privacy.StatsPublic,
		user.ID,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return wrapPgError("updating user", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return wrapPgError("deleting user", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.CurrentFocus,
		&u.Profile.DisplayName, &u.Profile.Bio, &u.Profile.Avatar,
		&u.Notifications.Daily, &u.Notifications.Weekly, &u.Notifications.Achievements,
		&u.Privacy.ProfilePublic, &u.Privacy.StatsPublic, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
