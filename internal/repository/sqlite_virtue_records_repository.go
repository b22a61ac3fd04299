package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/pkg/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLiteVirtueRecordsRepository is the gorm RecordStore. With MemoryDSN it
// replaces a process-global map with an explicit store owned by the caller.
type SQLiteVirtueRecordsRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSQLiteVirtueRecordsRepo(db *gorm.DB) *SQLiteVirtueRecordsRepository {
	return &SQLiteVirtueRecordsRepository{
		db:  db,
		now: time.Now,
	}
}

func (vr *SQLiteVirtueRecordsRepository) FindByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.VirtueRecord, error) {
	var row virtueRecordRow
	err := vr.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", uid.String(), entity.FormatRecordDate(entity.NormalizeDate(date))).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapGormError("searching virtue record by date", err)
	}
	return row.toEntity()
}

func (vr *SQLiteVirtueRecordsRepository) FindOrCreate(ctx context.Context, uid uuid.UUID, date time.Time, focus *int) (*entity.VirtueRecord, error) {
	existing, err := vr.FindByUserAndDate(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	row := newVirtueRecordRow(entity.NewVirtueRecord(uid, date, focus, vr.now()))
	err = vr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoNothing: true,
	}).Create(row).Error
	if err != nil {
		return nil, wrapGormError("creating virtue record", err)
	}
	stored, err := vr.FindByUserAndDate(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.New("virtue record vanished after insert")
	}
	return stored, nil
}

func (vr *SQLiteVirtueRecordsRepository) FindByUserWeek(ctx context.Context, uid uuid.UUID, year, week int) ([]*entity.VirtueRecord, error) {
	var rows []virtueRecordRow
	err := vr.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND week = ?", uid.String(), year, week).
		Order("day ASC").
		Find(&rows).Error
	if err != nil {
		return nil, wrapGormError("getting week records", err)
	}
	return rowsToEntities(rows)
}

func (vr *SQLiteVirtueRecordsRepository) FindAllByUser(ctx context.Context, uid uuid.UUID) ([]*entity.VirtueRecord, error) {
	var rows []virtueRecordRow
	err := vr.db.WithContext(ctx).
		Where("user_id = ?", uid.String()).
		Order("day ASC").
		Find(&rows).Error
	if err != nil {
		return nil, wrapGormError("getting user records", err)
	}
	return rowsToEntities(rows)
}

func (vr *SQLiteVirtueRecordsRepository) Update(ctx context.Context, record *entity.VirtueRecord) (*entity.VirtueRecord, error) {
	if record == nil {
		return nil, errors.New("record is nil")
	}
	updated := *record
	updated.RecomputeStats()
	updated.UpdatedAt = vr.now()
	row := newVirtueRecordRow(&updated)
	result := vr.db.WithContext(ctx).
		Model(&virtueRecordRow{ID: row.ID}).
		Where("user_id = ?", row.UserID).
		Select("virtues", "daily_reflection", "daily_rating", "completed_count", "completion_rate", "updated_at").
		Updates(row)
	if result.Error != nil {
		return nil, wrapGormError("updating virtue record", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errorvalues.ErrRecordNotFound
	}
	return &updated, nil
}

func (vr *SQLiteVirtueRecordsRepository) DeleteAllForUser(ctx context.Context, uid uuid.UUID) (int64, error) {
	result := vr.db.WithContext(ctx).Where("user_id = ?", uid.String()).Delete(&virtueRecordRow{})
	if result.Error != nil {
		return 0, wrapGormError("deleting user records", result.Error)
	}
	return result.RowsAffected, nil
}

func newVirtueRecordRow(r *entity.VirtueRecord) *virtueRecordRow {
	return &virtueRecordRow{
		ID:              r.ID.String(),
		UserID:          r.UserID.String(),
		Day:             entity.FormatRecordDate(r.Date),
		Year:            r.Year,
		Week:            r.Week,
		Virtues:         r.Virtues,
		FocusVirtue:     r.FocusVirtue,
		DailyReflection: r.DailyReflection,
		DailyRating:     r.DailyRating,
		CompletedCount:  r.Stats.CompletedCount,
		CompletionRate:  r.Stats.CompletionRate,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (row *virtueRecordRow) toEntity() (*entity.VirtueRecord, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("parsing stored record id error: %w", err)
	}
	uid, err := uuid.Parse(row.UserID)
	if err != nil {
		return nil, fmt.Errorf("parsing stored user id error: %w", err)
	}
	day, err := time.ParseInLocation(entity.DateLayout, row.Day, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parsing stored day error: %w", err)
	}
	return &entity.VirtueRecord{
		ID:              id,
		UserID:          uid,
		Date:            day,
		Year:            row.Year,
		Week:            row.Week,
		Virtues:         row.Virtues,
		FocusVirtue:     row.FocusVirtue,
		DailyReflection: row.DailyReflection,
		DailyRating:     row.DailyRating,
		Stats: entity.RecordStats{
			CompletedCount: row.CompletedCount,
			CompletionRate: row.CompletionRate,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func rowsToEntities(rows []virtueRecordRow) ([]*entity.VirtueRecord, error) {
	records := make([]*entity.VirtueRecord, 0, len(rows))
	for i := range rows {
		r, err := rows[i].toEntity()
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
