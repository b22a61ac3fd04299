package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/franklin/internal/repository"
	"github.com/limbo/franklin/pkg/entity"
	"golang.org/x/sync/errgroup"
)

const DefaultStreakMaxDays = 3650

type StatsService struct {
	recordsRepo   repository.VirtueRecordsRepositoryI
	maxStreakDays int
	now           func() time.Time
}

// NewStatsService builds the stats engine. Streak walks stop after maxStreakDays lookups,
// a non-positive value means DefaultStreakMaxDays.
func NewStatsService(recordsRepo repository.VirtueRecordsRepositoryI, maxStreakDays int) *StatsService {
	if recordsRepo == nil {
		log.Fatal("on stats service provided nil repo")
	}
	if maxStreakDays <= 0 {
		maxStreakDays = DefaultStreakMaxDays
	}
	return &StatsService{
		recordsRepo:   recordsRepo,
		maxStreakDays: maxStreakDays,
		now:           time.Now,
	}
}

// WithClock replaces the source of "today".
func (ss *StatsService) WithClock(now func() time.Time) *StatsService {
	ss.now = now
	return ss
}

func (ss *StatsService) LifetimeStats(ctx context.Context, uid uuid.UUID) (entity.UserStatsSnapshot, error) {
	records, err := ss.recordsRepo.FindAllByUser(ctx, uid)
	if err != nil {
		return entity.UserStatsSnapshot{}, fmt.Errorf("repository listing records error: %w", err)
	}
	return entity.Summarize(records), nil
}

func (ss *StatsService) CurrentStreak(ctx context.Context, uid uuid.UUID, asOf time.Time) (int, error) {
	day := entity.NormalizeDate(asOf)
	streak := 0
	for streak < ss.maxStreakDays {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		record, err := ss.recordsRepo.FindByUserAndDate(ctx, uid, day)
		if err != nil {
			return 0, fmt.Errorf("repository searching record error: %w", err)
		}
		if record == nil || record.Stats.CompletedCount == 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

func (ss *StatsService) UserStats(ctx context.Context, uid uuid.UUID) (*entity.UserStatsSnapshot, error) {
	var (
		snapshot entity.UserStatsSnapshot
		streak   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = ss.LifetimeStats(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		streak, err = ss.CurrentStreak(gctx, uid, ss.now())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	snapshot.CurrentStreak = streak
	return &snapshot, nil
}
