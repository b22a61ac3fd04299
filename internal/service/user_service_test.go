package service_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/internal/repository"
	"github.com/limbo/franklin/internal/repository/mocks"
	"github.com/limbo/franklin/internal/service"
	"github.com/limbo/franklin/internal/testutil"
	"github.com/limbo/franklin/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	os.Exit(m.Run())
}

func TestUserServiceWithStore(t *testing.T) {
	db := testutil.OpenTestDB(t)
	usersRepo := repository.NewSQLiteUsersRepo(db)
	recordsRepo := repository.NewSQLiteVirtueRecordsRepo(db)
	us := service.NewUserService(usersRepo, recordsRepo)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.Equal(t, 0, user.CurrentFocus)
		assert.Equal(t, username, user.Profile.DisplayName)
		assert.Equal(t, entity.Notifications{Daily: true, Weekly: true, Achievements: true}, user.Notifications)
		assert.False(t, user.Privacy.ProfilePublic)
		assert.False(t, user.Privacy.StatsPublic)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		require.NoError(t, err)
		assert.Equal(t, user.ID, res.ID)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "aaaaaaa", "bbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("error login with wrong password", func(t *testing.T) {
		_, err := us.Login(ctx, username, "wrong_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("focus setting", func(t *testing.T) {
		updated, err := us.UpdateSettings(ctx, user.ID, &service.SettingsRequest{CurrentFocus: intPtr(12)})
		require.NoError(t, err)
		assert.Equal(t, 12, updated.CurrentFocus)
		res, err := us.GetByName(ctx, username)
		require.NoError(t, err)
		assert.Equal(t, 12, res.CurrentFocus)
	})
	t.Run("profile and privacy", func(t *testing.T) {
		_, err := us.UpdateProfile(ctx, user.ID, &service.ProfileRequest{Bio: strPtr("Early to bed")})
		require.NoError(t, err)
		_, err = us.UpdateSettings(ctx, user.ID, &service.SettingsRequest{
			Privacy: &service.PrivacySettings{ProfilePublic: boolPtr(true)},
		})
		require.NoError(t, err)
		res, err := us.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Early to bed", res.Profile.Bio)
		assert.Equal(t, username, res.Profile.DisplayName)
		assert.Equal(t, 12, res.CurrentFocus)
		assert.Equal(t, entity.Privacy{ProfilePublic: true}, res.Privacy)
	})
	t.Run("deleted with records", func(t *testing.T) {
		for i := range 3 {
			_, err := recordsRepo.FindOrCreate(ctx, user.ID, jan15.AddDate(0, 0, i), nil)
			require.NoError(t, err)
		}
		assert.ErrorIs(t, us.DeleteAccount(ctx, user.ID, "dasdasd"), errorvalues.ErrWrongCredentials)
		require.NoError(t, us.DeleteAccount(ctx, user.ID, password))
		left, err := recordsRepo.FindAllByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, left)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestRegisterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	recordsRepo := mocks.NewMockVirtueRecordsRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, recordsRepo)

	testCases := []struct {
		Desc    string
		Request *service.RegisterRequest
		Fields  []string
	}{
		{Desc: "short name", Request: &service.RegisterRequest{Name: "ab", Password: "long_enough"}, Fields: []string{"name"}},
		{Desc: "name starts with digit", Request: &service.RegisterRequest{Name: "1ben", Password: "long_enough"}, Fields: []string{"name"}},
		{Desc: "short password", Request: &service.RegisterRequest{Name: "ben", Password: "short"}, Fields: []string{"password"}},
		{Desc: "both missing", Request: &service.RegisterRequest{}, Fields: []string{"name", "password"}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := us.Register(context.Background(), tc.Request)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
			fields := errorvalues.ValidationFields(err)
			got := make([]string, 0, len(fields))
			for _, f := range fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tc.Fields, got)
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	recordsRepo := mocks.NewMockVirtueRecordsRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, recordsRepo)
	uid := uuid.New()
	ctx := context.Background()
	stored := func() *entity.User {
		u := entity.NewUser("ben", "hash")
		u.ID = uid
		u.CurrentFocus = 5
		return u
	}

	testCases := []struct {
		Desc         string
		Req          *service.SettingsRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "focus 0",
			Req:  &service.SettingsRequest{CurrentFocus: intPtr(0)},
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, CurrentFocus: 5}, nil)
				usersRepo.EXPECT().Update(gomock.Any(), &entity.User{ID: uid, CurrentFocus: 0}).Return(nil)
			},
		},
		{
			Desc: "privacy only keeps focus and notifications",
			Req: &service.SettingsRequest{
				Privacy: &service.PrivacySettings{StatsPublic: boolPtr(true)},
			},
			MockPrepFunc: func() {
				want := stored()
				want.Privacy.StatsPublic = true
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(stored(), nil)
				usersRepo.EXPECT().Update(gomock.Any(), want).Return(nil)
			},
		},
		{
			Desc: "single notification switched off",
			Req: &service.SettingsRequest{
				Notifications: &service.NotificationSettings{Weekly: boolPtr(false)},
			},
			MockPrepFunc: func() {
				want := stored()
				want.Notifications.Weekly = false
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(stored(), nil)
				usersRepo.EXPECT().Update(gomock.Any(), want).Return(nil)
			},
		},
		{Desc: "focus 13", Req: &service.SettingsRequest{CurrentFocus: intPtr(13)}, Error: errorvalues.ErrValidation, MockPrepFunc: func() {}},
		{Desc: "focus -1", Req: &service.SettingsRequest{CurrentFocus: intPtr(-1)}, Error: errorvalues.ErrValidation, MockPrepFunc: func() {}},
		{Desc: "nothing to change", Req: &service.SettingsRequest{}, Error: errorvalues.ErrValidation, MockPrepFunc: func() {}},
		{Desc: "nil request", Req: nil, Error: errorvalues.ErrValidation, MockPrepFunc: func() {}},
		{
			Desc:  "user gone",
			Req:   &service.SettingsRequest{CurrentFocus: intPtr(1)},
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := us.UpdateSettings(ctx, uid, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	recordsRepo := mocks.NewMockVirtueRecordsRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, recordsRepo)
	uid := uuid.New()
	ctx := context.Background()
	stored := func() *entity.User {
		u := entity.NewUser("ben", "hash")
		u.ID = uid
		u.Profile.Bio = "printer"
		return u
	}
	repoErr := errors.New("connection reset")

	testCases := []struct {
		Desc         string
		Req          *service.ProfileRequest
		Error        error
		Fields       []string
		MockPrepFunc func()
	}{
		{
			Desc: "display name only",
			Req:  &service.ProfileRequest{DisplayName: strPtr("Poor Richard")},
			MockPrepFunc: func() {
				want := stored()
				want.Profile.DisplayName = "Poor Richard"
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(stored(), nil)
				usersRepo.EXPECT().Update(gomock.Any(), want).Return(nil)
			},
		},
		{
			Desc: "bio cleared and avatar set",
			Req:  &service.ProfileRequest{Bio: strPtr(""), Avatar: strPtr("https://example.com/ben.png")},
			MockPrepFunc: func() {
				want := stored()
				want.Profile.Bio = ""
				want.Profile.Avatar = "https://example.com/ben.png"
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(stored(), nil)
				usersRepo.EXPECT().Update(gomock.Any(), want).Return(nil)
			},
		},
		{
			Desc:         "display name too long",
			Req:          &service.ProfileRequest{DisplayName: strPtr(strings.Repeat("b", 51))},
			Error:        errorvalues.ErrValidation,
			Fields:       []string{"display_name"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "empty display name",
			Req:          &service.ProfileRequest{DisplayName: strPtr("")},
			Error:        errorvalues.ErrValidation,
			Fields:       []string{"display_name"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "bio and avatar invalid",
			Req:          &service.ProfileRequest{Bio: strPtr(strings.Repeat("é", 201)), Avatar: strPtr("not a url")},
			Error:        errorvalues.ErrValidation,
			Fields:       []string{"bio", "avatar"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "nothing to change",
			Req:          &service.ProfileRequest{},
			Error:        errorvalues.ErrValidation,
			Fields:       []string{"body"},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "repository failure",
			Req:   &service.ProfileRequest{Bio: strPtr("b")},
			Error: repoErr,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(stored(), nil)
				usersRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repoErr)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := us.UpdateProfile(ctx, uid, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, user)
				if tc.Fields != nil {
					var got []string
					for _, f := range errorvalues.ValidationFields(err) {
						got = append(got, f.Field)
					}
					assert.ElementsMatch(t, tc.Fields, got)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uid, user.ID)
		})
	}
}

func TestDeleteAccountOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	recordsRepo := mocks.NewMockVirtueRecordsRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, recordsRepo)
	uid := uuid.New()
	hash, err := service.Hash("test_password")
	require.NoError(t, err)

	gomock.InOrder(
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, PasswordHash: hash}, nil),
		recordsRepo.EXPECT().DeleteAllForUser(gomock.Any(), uid).Return(int64(2), nil),
		usersRepo.EXPECT().Delete(gomock.Any(), uid).Return(nil),
	)
	assert.NoError(t, us.DeleteAccount(context.Background(), uid, "test_password"))
}

func TestRecordsServiceWithStore(t *testing.T) {
	db := testutil.OpenTestDB(t)
	usersRepo := repository.NewSQLiteUsersRepo(db)
	recordsRepo := repository.NewSQLiteVirtueRecordsRepo(db)
	us := service.NewUserService(usersRepo, recordsRepo)
	rs := service.NewRecordsService(usersRepo, recordsRepo)
	ctx := context.Background()

	user, err := us.Register(ctx, &service.RegisterRequest{Name: "franklin", Password: "poor_richard"})
	require.NoError(t, err)
	_, err = us.UpdateSettings(ctx, user.ID, &service.SettingsRequest{CurrentFocus: intPtr(2)})
	require.NoError(t, err)

	t.Run("empty week", func(t *testing.T) {
		records, err := rs.GetWeekRecords(ctx, user.ID, 2024, 3)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
	t.Run("concurrent first access creates one record", func(t *testing.T) {
		var wg sync.WaitGroup
		ids := make([]uuid.UUID, 5)
		for i := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r, err := rs.GetDayRecord(ctx, user.ID, "2024-01-15")
				if assert.NoError(t, err) {
					ids[i] = r.ID
				}
			}()
		}
		wg.Wait()
		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}
	})
	t.Run("toggle scenario", func(t *testing.T) {
		record, err := rs.ToggleVirtue(ctx, user.ID, "2024-01-15", &service.ToggleVirtueRequest{
			VirtueIndex: intPtr(0),
			Completed:   boolPtr(true),
			Note:        "woke early",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, record.Stats.CompletedCount)
		assert.Equal(t, 8, record.Stats.CompletionRate)
		require.NotNil(t, record.FocusVirtue)
		assert.Equal(t, 2, *record.FocusVirtue)

		week, err := rs.GetWeekRecords(ctx, user.ID, 2024, 3)
		require.NoError(t, err)
		require.Len(t, week, 1)
		assert.True(t, week[0].Virtues[0].Completed)
	})
	t.Run("reflection on a timestamp date", func(t *testing.T) {
		ts := time.Date(2024, time.January, 15, 21, 0, 0, 0, time.Local).Format(time.RFC3339)
		record, err := rs.SaveReflection(ctx, user.ID, ts, &service.ReflectionRequest{
			Reflection: strPtr("kept my word"),
			Rating:     intPtr(4),
		})
		require.NoError(t, err)
		assert.Equal(t, "kept my word", record.DailyReflection)
		assert.Equal(t, 1, record.Stats.CompletedCount)
	})
}
