package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/pkg/entity"
)

const recordColumns = `id, user_id, day, year, week, virtues, focus_virtue, daily_reflection, daily_rating, completed_count, completion_rate, created_at, updated_at`

type VirtueRecordsRepository struct {
	conn PgConnection
	now  func() time.Time
}

func NewVirtueRecordsRepoWithConn(conn PgConnection) *VirtueRecordsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for virtueRecordsRepo: " + err.Error())
	}
	return &VirtueRecordsRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (vr *VirtueRecordsRepository) FindByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.VirtueRecord, error) {
	day := entity.FormatRecordDate(entity.NormalizeDate(date))
	row := vr.conn.QueryRow(ctx, `SELECT `+recordColumns+` FROM virtue_records WHERE user_id = $1 AND day = $2::date;`, uid, day)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapPgError("searching virtue record by date", err)
	}
	return record, nil
}

func (vr *VirtueRecordsRepository) FindOrCreate(ctx context.Context, uid uuid.UUID, date time.Time, focus *int) (*entity.VirtueRecord, error) {
	existing, err := vr.FindByUserAndDate(ctx, uid, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	record := entity.NewVirtueRecord(uid, date, focus, vr.now())
	virtues, err := sonic.Marshal(record.Virtues)
	if err != nil {
		return nil, fmt.Errorf("marshalling virtues error: %w", err)
	}
	// A concurrent insert for the same day wins, the re-read below returns it.
	_, err = vr.conn.Exec(ctx, `INSERT INTO virtue_records (id, user_id, day, year, week, virtues, focus_virtue,
		daily_reflection, daily_rating, completed_count, completion_rate, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id, day) DO NOTHING;`,
		record.ID,
		record.UserID,
		entity.FormatRecordDate(record.Date),
		record.Year,
		record.Week,
		virtues,
		record.FocusVirtue,
		record.DailyReflection,
		record.DailyRating,
		record.Stats.CompletedCount,
		record.Stats.CompletionRate,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, wrapPgError("creating virtue record", err)
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

func (vr *VirtueRecordsRepository) FindByUserWeek(ctx context.Context, uid uuid.UUID, year, week int) ([]*entity.VirtueRecord, error) {
	rows, err := vr.conn.Query(ctx, `SELECT `+recordColumns+` FROM virtue_records
		WHERE user_id = $1 AND year = $2 AND week = $3 ORDER BY day ASC;`, uid, year, week)
	if err != nil {
		return nil, wrapPgError("getting week records", err)
	}
	return collectRecords(rows)
}

func (vr *VirtueRecordsRepository) FindAllByUser(ctx context.Context, uid uuid.UUID) ([]*entity.VirtueRecord, error) {
	rows, err := vr.conn.Query(ctx, `SELECT `+recordColumns+` FROM virtue_records WHERE user_id = $1 ORDER BY day ASC;`, uid)
	if err != nil {
		return nil, wrapPgError("getting user records", err)
	}
	return collectRecords(rows)
}

func (vr *VirtueRecordsRepository) Update(ctx context.Context, record *entity.VirtueRecord) (*entity.VirtueRecord, error) {
	if record == nil {
		return nil, errors.New("record is nil")
	}
	updated := *record
	updated.RecomputeStats()
	updated.UpdatedAt = vr.now()
	virtues, err := sonic.Marshal(updated.Virtues)
	if err != nil {
		return nil, fmt.Errorf("marshalling virtues error: %w", err)
	}
	ct, err := vr.conn.Exec(ctx, `UPDATE virtue_records SET virtues = $1, daily_reflection = $2, daily_rating = $3,
		completed_count = $4, completion_rate = $5, updated_at = $6 WHERE id = $7 AND user_id = $8;`,
		virtues,
		updated.DailyReflection,
		updated.DailyRating,
		updated.Stats.CompletedCount,
		updated.Stats.CompletionRate,
		updated.UpdatedAt,
		updated.ID,
		updated.UserID,
	)
	if err != nil {
		return nil, wrapPgError("updating virtue record", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, errorvalues.ErrRecordNotFound
	}
	return &updated, nil
}

func (vr *VirtueRecordsRepository) DeleteAllForUser(ctx context.Context, uid uuid.UUID) (int64, error) {
	ct, err := vr.conn.Exec(ctx, `DELETE FROM virtue_records WHERE user_id = $1;`, uid)
	if err != nil {
		return 0, wrapPgError("deleting user records", err)
	}
	return ct.RowsAffected(), nil
}

func collectRecords(rows pgx.Rows) ([]*entity.VirtueRecord, error) {
	defer rows.Close()
	records := make([]*entity.VirtueRecord, 0)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("unmarshalling virtue record error: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgError("reading virtue records", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (*entity.VirtueRecord, error) {
	var (
		r       entity.VirtueRecord
		day     time.Time
		virtues []byte
	)
	err := row.Scan(&r.ID, &r.UserID, &day, &r.Year, &r.Week, &virtues, &r.FocusVirtue,
		&r.DailyReflection, &r.DailyRating, &r.Stats.CompletedCount, &r.Stats.CompletionRate,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	// date columns come back as UTC midnight
	r.Date = entity.NormalizeDate(day)
	if err = sonic.Unmarshal(virtues, &r.Virtues); err != nil {
		return nil, fmt.Errorf("decoding virtues error: %w", err)
	}
	return &r, nil
}
