package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/pkg/cleanup"
	"github.com/limbo/franklin/pkg/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryDSN opens a private in-memory database. It lives as long as its only connection.
const MemoryDSN = ":memory:"

// Notification flags are pointers so that an explicit false is not replaced
// by the column default on insert.
type userRow struct {
	ID                 string    `gorm:"primaryKey;size:36"`
	Name               string    `gorm:"size:64;not null;uniqueIndex"`
	PasswordHash       string    `gorm:"not null"`
	CurrentFocus       int       `gorm:"not null;default:0"`
	DisplayName        string    `gorm:"size:50;not null;default:''"`
	Bio                string    `gorm:"size:200;not null;default:''"`
	Avatar             string    `gorm:"not null;default:''"`
	NotifyDaily        *bool     `gorm:"not null;default:true"`
	NotifyWeekly       *bool     `gorm:"not null;default:true"`
	NotifyAchievements *bool     `gorm:"not null;default:true"`
	ProfilePublic      bool      `gorm:"not null;default:false"`
	StatsPublic        bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (userRow) TableName() string {
	return "users"
}

type virtueRecordRow struct {
	ID              string                                 `gorm:"primaryKey;size:36"`
	UserID          string                                 `gorm:"size:36;not null;uniqueIndex:uidx_user_day;index:idx_user_week,priority:1"`
	Day             string                                 `gorm:"size:10;not null;uniqueIndex:uidx_user_day"` // YYYY-MM-DD
	Year            int                                    `gorm:"not null;index:idx_user_week,priority:2"`
	Week            int                                    `gorm:"not null;index:idx_user_week,priority:3"`
	Virtues         [entity.VirtueCount]entity.VirtueEntry `gorm:"type:text;serializer:json"`
	FocusVirtue     *int
	DailyReflection string `gorm:"type:text;not null;default:''"`
	DailyRating     *int
	CompletedCount  int       `gorm:"not null;default:0"`
	CompletionRate  int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

func (virtueRecordRow) TableName() string {
	return "virtue_records"
}

// NewSQLiteDatabase opens the gorm store used by the sqlite and memory drivers
// and creates its tables.
func NewSQLiteDatabase(path string) (*gorm.DB, error) {
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	if path == MemoryDSN {
		sqlDB.SetMaxOpenConns(1)
	} else if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}
	if err := db.Exec("PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if err := MigrateSQLite(db); err != nil {
		return nil, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite database",
		F:    sqlDB.Close,
	})
	slog.Info("sqlite database ready", slog.String("path", path))
	return db, nil
}

func MigrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(&userRow{}, &virtueRecordRow{}); err != nil {
		return fmt.Errorf("migrating sqlite database: %w", err)
	}
	return nil
}

func wrapGormError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, sql.ErrConnDone) {
		return &errorvalues.StorageUnavailableError{Op: op, Err: err}
	}
	return fmt.Errorf("%s error: %w", op, err)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
