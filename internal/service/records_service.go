package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/internal/repository"
	"github.com/limbo/franklin/pkg/entity"
)

type weekQuery struct {
	Year int `json:"year" validate:"min=1970,max=9999"`
	Week int `json:"week" validate:"min=1,max=53"`
}

type RecordsService struct {
	usersRepo   repository.UsersRepositoryI
	recordsRepo repository.VirtueRecordsRepositoryI
	now         func() time.Time
}

func NewRecordsService(usersRepo repository.UsersRepositoryI, recordsRepo repository.VirtueRecordsRepositoryI) *RecordsService {
	if usersRepo == nil || recordsRepo == nil {
		log.Fatal("on records service provided nil repos")
	}
	return &RecordsService{
		usersRepo:   usersRepo,
		recordsRepo: recordsRepo,
		now:         time.Now,
	}
}

func (rs *RecordsService) GetDayRecord(ctx context.Context, uid uuid.UUID, date string) (*entity.VirtueRecord, error) {
	day, err := entity.ParseRecordDate(date)
	if err != nil {
		return nil, err
	}
	return rs.dayRecord(ctx, uid, day)
}

func (rs *RecordsService) GetWeekRecords(ctx context.Context, uid uuid.UUID, year, week int) ([]*entity.VirtueRecord, error) {
	if err := validateStruct(&weekQuery{Year: year, Week: week}); err != nil {
		return nil, err
	}
	records, err := rs.recordsRepo.FindByUserWeek(ctx, uid, year, week)
	if err != nil {
		return nil, fmt.Errorf("repository searching week error: %w", err)
	}
	return records, nil
}

func (rs *RecordsService) ToggleVirtue(ctx context.Context, uid uuid.UUID, date string, req *ToggleVirtueRequest) (*entity.VirtueRecord, error) {
	if req == nil {
		return nil, errorvalues.NewValidationError("body", "is required")
	}
	day, err := entity.ParseRecordDate(date)
	if err != nil {
		return nil, err
	}
	if err = validateStruct(req); err != nil {
		return nil, err
	}
	record, err := rs.dayRecord(ctx, uid, day)
	if err != nil {
		return nil, err
	}
	if err = record.ToggleVirtue(*req.VirtueIndex, *req.Completed, req.Note, rs.now()); err != nil {
		return nil, err
	}
	return rs.save(ctx, record)
}

func (rs *RecordsService) SaveReflection(ctx context.Context, uid uuid.UUID, date string, req *ReflectionRequest) (*entity.VirtueRecord, error) {
	if req == nil {
		return nil, errorvalues.NewValidationError("body", "is required")
	}
	day, err := entity.ParseRecordDate(date)
	if err != nil {
		return nil, err
	}
	if err = validateStruct(req); err != nil {
		return nil, err
	}
	record, err := rs.dayRecord(ctx, uid, day)
	if err != nil {
		return nil, err
	}
	if err = record.SetReflection(req.Reflection, req.Rating); err != nil {
		return nil, err
	}
	return rs.save(ctx, record)
}

// dayRecord loads the record, creating it with the user's current focus virtue.
func (rs *RecordsService) dayRecord(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.VirtueRecord, error) {
	user, err := rs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching user error: %w", err)
	}
	focus := user.CurrentFocus
	record, err := rs.recordsRepo.FindOrCreate(ctx, uid, day, &focus)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository getting day record error: %w", err)
	}
	return record, nil
}

func (rs *RecordsService) save(ctx context.Context, record *entity.VirtueRecord) (*entity.VirtueRecord, error) {
	updated, err := rs.recordsRepo.Update(ctx, record)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository updating record error: %w", err)
	}
	return updated, nil
}
