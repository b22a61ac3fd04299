package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/franklin/pkg/entity"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,alphanum_underscore,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SettingsRequest is a partial update: nil fields keep their stored values.
type SettingsRequest struct {
	CurrentFocus  *int                  `json:"current_focus" validate:"omitempty,min=0,max=12"`
	Notifications *NotificationSettings `json:"notifications"`
	Privacy       *PrivacySettings      `json:"privacy"`
}

type NotificationSettings struct {
	Daily        *bool `json:"daily"`
	Weekly       *bool `json:"weekly"`
	Achievements *bool `json:"achievements"`
}

type PrivacySettings struct {
	ProfilePublic *bool `json:"profile_public"`
	StatsPublic   *bool `json:"stats_public"`
}

// ProfileRequest is a partial update: nil fields keep their stored values.
type ProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,min=1,max=50"`
	Bio         *string `json:"bio" validate:"omitempty,max=200"`
	Avatar      *string `json:"avatar" validate:"omitempty,url"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

type ToggleVirtueRequest struct {
	VirtueIndex *int   `json:"virtue_index" validate:"required,min=0,max=12"`
	Completed   *bool  `json:"completed" validate:"required"`
	Note        string `json:"note" validate:"max=500"`
}

// ReflectionRequest is a partial update: nil fields keep their stored values.
type ReflectionRequest struct {
	Reflection *string `json:"reflection" validate:"omitempty,max=1000"`
	Rating     *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// Changes the focus virtue copied onto records created afterwards, notification and privacy flags
	UpdateSettings(ctx context.Context, id uuid.UUID, req *SettingsRequest) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *ProfileRequest) (*entity.User, error)
	// Checks the password, removes all user's records and then the user
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type RecordsServiceI interface {
	// Returns the record of the day, creating a default one on first access
	GetDayRecord(ctx context.Context, uid uuid.UUID, date string) (*entity.VirtueRecord, error)
	GetWeekRecords(ctx context.Context, uid uuid.UUID, year, week int) ([]*entity.VirtueRecord, error)
	ToggleVirtue(ctx context.Context, uid uuid.UUID, date string, req *ToggleVirtueRequest) (*entity.VirtueRecord, error)
	SaveReflection(ctx context.Context, uid uuid.UUID, date string, req *ReflectionRequest) (*entity.VirtueRecord, error)
}

type StatsServiceI interface {
	LifetimeStats(ctx context.Context, uid uuid.UUID) (entity.UserStatsSnapshot, error)
	// Consecutive days with at least one completed virtue, ending at asOf
	CurrentStreak(ctx context.Context, uid uuid.UUID, asOf time.Time) (int, error)
	// Lifetime stats with the streak ending today
	UserStats(ctx context.Context, uid uuid.UUID) (*entity.UserStatsSnapshot, error)
}
