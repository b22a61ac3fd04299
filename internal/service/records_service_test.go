package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/internal/repository/mocks"
	"github.com/limbo/franklin/internal/service"
	"github.com/limbo/franklin/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

var jan15 = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)

func TestGetDayRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	recordsRepo := mocks.NewMockVirtueRecordsRepositoryI(ctrl)
	serv := service.NewRecordsService(usersRepo, recordsRepo)
	uid := uuid.New()
	user := &entity.User{ID: uid, Name: "ben", CurrentFocus: 9}

	testCases := []struct {
		Desc         string
		Date         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "created lazily with focus",
			Date: "2024-01-15",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
				recordsRepo.EXPECT().FindOrCreate(gomock.Any(), uid, jan15, intPtr(9)).
					Return(entity.NewVirtueRecord(uid, jan15, intPtr(9), time.Now()), nil)
			},
		},
		{
			Desc:         "invalid date",
			Date:         "15/01/2024",
			Error:        errorvalues.ErrInvalidDate,
			MockPrepFunc: func() {},
		},
		{
			Desc:  "user not found",
			Date:  "2024-01-15",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:  "storage unavailable",
			Date:  "2024-01-15",
			Error: errorvalues.ErrStorageUnavailable,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
				recordsRepo.EXPECT().FindOrCreate(gomock.Any(), uid, jan15, gomock.Any()).
					Return(nil, &errorvalues.StorageUnavailableError{Op: "creating virtue record", Err: context.DeadlineExceeded})
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			record, err := serv.GetDayRecord(ctx, uid, tc.Date)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, record)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 9, *record.FocusVirtue)
		})
	}
}

func TestGetWeekRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	recordsRepo := mocks.NewMockVirtueRecordsRepositoryI(ctrl)
	serv := service.NewRecordsService(usersRepo, recordsRepo)
	uid := uuid.New()

	testCases := []struct {
		Desc         string
		Year         int
		Week         int
		Error        error
		Field        string
		MockPrepFunc func()
	}{
		{
			Desc: "empty week",
			Year: 2024,
			Week: 3,
			MockPrepFunc: func() {
				recordsRepo.EXPECT().FindByUserWeek(gomock.Any(), uid, 2024, 3).Return([]*entity.VirtueRecord{}, nil)
			},
		},
		{
			Desc: "week 53",
			Year: 2020,
			Week: 53,
			MockPrepFunc: func() {
				recordsRepo.EXPECT().FindByUserWeek(gomock.Any(), uid, 2020, 53).Return([]*entity.VirtueRecord{}, nil)
			},
		},
		{Desc: "week 0", Year: 2024, Week: 0, Error: errorvalues.ErrValidation, Field: "week", MockPrepFunc: func() {}},
		{Desc: "week 54", Year: 2024, Week: 54, Error: errorvalues.ErrValidation, Field: "week", MockPrepFunc: func() {}},
		{Desc: "year before 1970", Year: 1969, Week: 10, Error: errorvalues.ErrValidation, Field: "year", MockPrepFunc: func() {}},
		{
			Desc:  "repository error",
			Year:  2024,
			Week:  3,
			Error: errorvalues.ErrStorageUnavailable,
			MockPrepFunc: func() {
				recordsRepo.EXPECT().FindByUserWeek(gomock.Any(), uid, 2024, 3).
					Return(nil, &errorvalues.StorageUnavailableError{Op: "getting week records", Err: errors.New("refused")})
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			records, err := serv.GetWeekRecords(ctx, uid, tc.Year, tc.Week)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				if tc.Field != "" {
					fields := errorvalues.ValidationFields(err)
					require.Len(t, fields, 1)
					assert.Equal(t, tc.Field, fields[0].Field)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestToggleVirtue(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	recordsRepo := mocks.NewMockVirtueRecordsRepositoryI(ctrl)
	serv := service.NewRecordsService(usersRepo, recordsRepo)
	uid := uuid.New()
	user := &entity.User{ID: uid, Name: "ben"}

	expectLoad := func() *entity.VirtueRecord {
		record := entity.NewVirtueRecord(uid, jan15, intPtr(0), time.Now())
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
		recordsRepo.EXPECT().FindOrCreate(gomock.Any(), uid, jan15, gomock.Any()).Return(record, nil)
		return record
	}

	testCases := []struct {
		Desc         string
		Request      *service.ToggleVirtueRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:    "first virtue of a fresh day",
			Request: &service.ToggleVirtueRequest{VirtueIndex: intPtr(0), Completed: boolPtr(true), Note: "woke early"},
			MockPrepFunc: func() {
				expectLoad()
				recordsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *entity.VirtueRecord) (*entity.VirtueRecord, error) {
						return r, nil
					})
			},
		},
		{
			Desc:         "index 13 rejected before storage",
			Request:      &service.ToggleVirtueRequest{VirtueIndex: intPtr(13), Completed: boolPtr(true)},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "index -1 rejected",
			Request:      &service.ToggleVirtueRequest{VirtueIndex: intPtr(-1), Completed: boolPtr(true)},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "missing completed flag",
			Request:      &service.ToggleVirtueRequest{VirtueIndex: intPtr(2)},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "missing body",
			Request:      nil,
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:    "record deleted meanwhile",
			Request: &service.ToggleVirtueRequest{VirtueIndex: intPtr(12), Completed: boolPtr(false)},
			Error:   errorvalues.ErrRecordNotFound,
			MockPrepFunc: func() {
				expectLoad()
				recordsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrRecordNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			record, err := serv.ToggleVirtue(ctx, uid, "2024-01-15", tc.Request)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, record.Stats.CompletedCount)
			assert.Equal(t, 8, record.Stats.CompletionRate)
			assert.Equal(t, "woke early", record.Virtues[0].Note)
		})
	}
}

func TestSaveReflection(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	recordsRepo := mocks.NewMockVirtueRecordsRepositoryI(ctrl)
	serv := service.NewRecordsService(usersRepo, recordsRepo)
	uid := uuid.New()
	ctx := context.Background()

	stored := entity.NewVirtueRecord(uid, jan15, nil, time.Now())
	require.NoError(t, stored.SetReflection(strPtr("patient with everyone"), intPtr(2)))

	t.Run("rating only keeps reflection", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid}, nil)
		recordsRepo.EXPECT().FindOrCreate(gomock.Any(), uid, jan15, gomock.Any()).Return(stored, nil)
		recordsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *entity.VirtueRecord) (*entity.VirtueRecord, error) {
				return r, nil
			})
		record, err := serv.SaveReflection(ctx, uid, "2024-01-15", &service.ReflectionRequest{Rating: intPtr(5)})
		require.NoError(t, err)
		assert.Equal(t, "patient with everyone", record.DailyReflection)
		assert.Equal(t, 5, *record.DailyRating)
	})
	for _, rating := range []int{0, 6} {
		t.Run("rating out of range", func(t *testing.T) {
			_, err := serv.SaveReflection(ctx, uid, "2024-01-15", &service.ReflectionRequest{Rating: intPtr(rating)})
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		})
	}
	t.Run("bad date", func(t *testing.T) {
		_, err := serv.SaveReflection(ctx, uid, "someday", &service.ReflectionRequest{Rating: intPtr(3)})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
}
