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
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/internal/repository"
	"github.com/limbo/franklin/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userColumns = []string{"id", "name", "password_hash", "current_focus", "display_name", "bio", "avatar",
		"notify_daily", "notify_weekly", "notify_achievements", "profile_public", "stats_public", "created_at"}

	errDriver = errors.New("db error")
)

func userArgs(u *entity.User) []any {
	return []any{u.Name, u.PasswordHash, u.CurrentFocus, u.Profile.DisplayName, u.Profile.Bio, u.Profile.Avatar,
		u.Notifications.Daily, u.Notifications.Weekly, u.Notifications.Achievements,
		u.Privacy.ProfilePublic, u.Privacy.StatsPublic}
}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := *entity.NewUser("test_user", "test_password_hash")
	user.CurrentFocus = 2
	user.Notifications.Weekly = false
	query := regexp.QuoteMeta(`INSERT INTO users (name, password_hash, current_focus, display_name, bio, avatar,`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		id := uuid.New()
		createdAt := time.Now()
		conn.ExpectQuery(query).WithArgs(userArgs(&user)...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, createdAt))
		u := user
		err := repo.Create(ctx, &u)
		assert.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, createdAt, u.CreatedAt)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(userArgs(&user)...).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		u := user
		err := repo.Create(ctx, &u)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(userArgs(&user)...).WillReturnError(errDriver)
		u := user
		err := repo.Create(ctx, &u)
		assert.ErrorIs(t, err, errDriver)
		assert.NotErrorIs(t, err, errorvalues.ErrStorageUnavailable)
		assert.EqualError(t, err, "creating user error: db error")
	})
	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:            uuid.New(),
		Name:          "test_user",
		PasswordHash:  "test_password_hash",
		CurrentFocus:  7,
		Profile:       entity.Profile{DisplayName: "Poor Richard", Bio: "printer", Avatar: "https://example.com/a.png"},
		Notifications: entity.Notifications{Daily: true},
		Privacy:       entity.Privacy{StatsPublic: true},
		CreatedAt:     time.Now(),
	}
	columns := "id, name, password_hash, current_focus, display_name, bio, avatar, notify_daily, notify_weekly, notify_achievements, profile_public, stats_public, created_at"
	byName := regexp.QuoteMeta(`SELECT ` + columns + ` FROM users WHERE name = $1;`)
	byID := regexp.QuoteMeta(`SELECT ` + columns + ` FROM users WHERE id = $1;`)
	userRow := func() *pgxmock.Rows {
		return pgxmock.NewRows(userColumns).AddRow(user.ID, user.Name, user.PasswordHash, user.CurrentFocus,
			user.Profile.DisplayName, user.Profile.Bio, user.Profile.Avatar,
			user.Notifications.Daily, user.Notifications.Weekly, user.Notifications.Achievements,
			user.Privacy.ProfilePublic, user.Privacy.StatsPublic, user.CreatedAt)
	}
	testCases := []struct {
		Desc         string
		MockPrepFunc func()
		Call         func() (*entity.User, error)
		Error        error
	}{
		{
			Desc:         "found by name",
			MockPrepFunc: func() { conn.ExpectQuery(byName).WithArgs(user.Name).WillReturnRows(userRow()) },
			Call:         func() (*entity.User, error) { return repo.FindByName(ctx, user.Name) },
		},
		{
			Desc:         "name not found",
			MockPrepFunc: func() { conn.ExpectQuery(byName).WithArgs(user.Name).WillReturnError(pgx.ErrNoRows) },
			Call:         func() (*entity.User, error) { return repo.FindByName(ctx, user.Name) },
			Error:        errorvalues.ErrUserNotFound,
		},
		{
			Desc:         "found by id",
			MockPrepFunc: func() { conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnRows(userRow()) },
			Call:         func() (*entity.User, error) { return repo.FindByID(ctx, user.ID) },
		},
		{
			Desc:         "id not found",
			MockPrepFunc: func() { conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows) },
			Call:         func() (*entity.User, error) { return repo.FindByID(ctx, user.ID) },
			Error:        errorvalues.ErrUserNotFound,
		},
		{
			Desc:         "timeout",
			MockPrepFunc: func() { conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(context.DeadlineExceeded) },
			Call:         func() (*entity.User, error) { return repo.FindByID(ctx, user.ID) },
			Error:        errorvalues.ErrStorageUnavailable,
		},
		{
			Desc:         "driver error kept in chain",
			MockPrepFunc: func() { conn.ExpectQuery(byName).WithArgs(user.Name).WillReturnError(errDriver) },
			Call:         func() (*entity.User, error) { return repo.FindByName(ctx, user.Name) },
			Error:        errDriver,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := tc.Call()
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, *result)
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpdateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := *entity.NewUser("test_user", "test_password_hash")
	user.ID = uuid.New()
	user.CurrentFocus = 12
	user.Profile.Bio = "Early to bed"
	user.Privacy.ProfilePublic = true
	query := regexp.QuoteMeta(`UPDATE users SET name = $1, password_hash = $2, current_focus = $3, display_name = $4,`)
	args := append(userArgs(&user), user.ID)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(args...).
			WillReturnError(errDriver)
		err := repo.Update(ctx, &user)
		assert.ErrorIs(t, err, errDriver)
	})
	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, repo.Update(ctx, nil))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
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
			WillReturnError(errDriver)
		err := repo.Delete(ctx, uid)
		assert.ErrorIs(t, err, errDriver)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
