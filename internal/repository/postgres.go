package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/pkg/cleanup"
)

// NewPostgresPool opens a pool shared by both postgres repositories.
// Closing it is registered as a cleanup job.
func NewPostgresPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapPgError attaches the operation to a driver error. Connection problems
// and timeouts become StorageUnavailableError.
func wrapPgError(op string, err error) error {
	if isUnavailable(err) {
		return &errorvalues.StorageUnavailableError{Op: op, Err: err}
	}
	return fmt.Errorf("%s error: %w", op, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	// class 08: connection exception
	code := pgErrCode(err)
	return len(code) == 5 && code[:2] == "08"
}
