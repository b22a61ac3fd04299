package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/franklin/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database. Fills ID and CreatedAt
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's name, password hash and focus virtue
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

// VirtueRecordsRepositoryI stores one record per user per calendar day.
// Dates passed in are normalized to the day before use.
type VirtueRecordsRepositoryI interface {
	// Returns nil, nil when the user has no record for that day
	FindByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.VirtueRecord, error)
	// Returns the existing record or stores a default one. Safe to call concurrently
	FindOrCreate(ctx context.Context, uid uuid.UUID, date time.Time, focus *int) (*entity.VirtueRecord, error)
	// Records of an ISO week sorted by date. Empty slice when there are none
	FindByUserWeek(ctx context.Context, uid uuid.UUID, year, week int) ([]*entity.VirtueRecord, error)
	// Every record of the user sorted by date
	FindAllByUser(ctx context.Context, uid uuid.UUID) ([]*entity.VirtueRecord, error)
	// Persists virtues, reflection and rating. Stats are recomputed before writing
	Update(ctx context.Context, record *entity.VirtueRecord) (*entity.VirtueRecord, error)
	// Removes all records of the user, returns how many were removed
	DeleteAllForUser(ctx context.Context, uid uuid.UUID) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
