package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/pkg/entity"
	"gorm.io/gorm"
)

// SQLiteUsersRepository keeps users in the gorm store of the sqlite and memory drivers.
type SQLiteUsersRepository struct {
	db *gorm.DB
}

func NewSQLiteUsersRepo(db *gorm.DB) *SQLiteUsersRepository {
	return &SQLiteUsersRepository{db: db}
}

func (ur *SQLiteUsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	row := newUserRow(user)
	row.ID = uuid.New().String()
	if err := ur.db.WithContext(ctx).Create(row).Error; err != nil {
		if isDuplicate(err) {
			return errorvalues.ErrUserExists
		}
		return wrapGormError("creating user", err)
	}
	user.ID = uuid.MustParse(row.ID)
	user.CreatedAt = row.CreatedAt
	return nil
}

func (ur *SQLiteUsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return ur.findOne(ctx, "searching user by name", "name = ?", name)
}

func (ur *SQLiteUsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "searching user by id", "id = ?", uid.String())
}

func (ur *SQLiteUsersRepository) findOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	var row userRow
	err := ur.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, wrapGormError(op, err)
	}
	return row.toEntity()
}

func (ur *SQLiteUsersRepository) Update(ctx context.Context, user *entity.User) error {
	result := ur.db.WithContext(ctx).Model(&userRow{}).
		Where("id = ?", user.ID.String()).
		Updates(map[string]any{
			"name":                user.Name,
			"password_hash":       user.PasswordHash,
			"current_focus":       user.CurrentFocus,
			"display_name":        user.Profile.DisplayName,
			"bio":                 user.Profile.Bio,
			"avatar":              user.Profile.Avatar,
			"notify_daily":        user.Notifications.Daily,
			"notify_weekly":       user.Notifications.Weekly,
			"notify_achievements": user.Notifications.Achievements,
			"profile_public":      user.Privacy.ProfilePublic,
			"stats_public":        user.Privacy.StatsPublic,
		})
	if result.Error != nil {
		if isDuplicate(result.Error) {
			return errorvalues.ErrUserExists
		}
		return wrapGormError("updating user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *SQLiteUsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	result := ur.db.WithContext(ctx).Where("id = ?", uid.String()).Delete(&userRow{})
	if result.Error != nil {
		return wrapGormError("deleting user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func newUserRow(u *entity.User) *userRow {
	return &userRow{
		ID:                 u.ID.String(),
		Name:               u.Name,
		PasswordHash:       u.PasswordHash,
		CurrentFocus:       u.CurrentFocus,
		DisplayName:        u.Profile.DisplayName,
		Bio:                u.Profile.Bio,
		Avatar:             u.Profile.Avatar,
		NotifyDaily:        &u.Notifications.Daily,
		NotifyWeekly:       &u.Notifications.Weekly,
		NotifyAchievements: &u.Notifications.Achievements,
		ProfilePublic:      u.Privacy.ProfilePublic,
		StatsPublic:        u.Privacy.StatsPublic,
	}
}

func (r *userRow) toEntity() (*entity.User, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parsing stored user id error: %w", err)
	}
	return &entity.User{
		ID:           id,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		CurrentFocus: r.CurrentFocus,
		Profile: entity.Profile{
			DisplayName: r.DisplayName,
			Bio:         r.Bio,
			Avatar:      r.Avatar,
		},
		Notifications: entity.Notifications{
			Daily:        boolOr(r.NotifyDaily, true),
			Weekly:       boolOr(r.NotifyWeekly, true),
			Achievements: boolOr(r.NotifyAchievements, true),
		},
		Privacy: entity.Privacy{
			ProfilePublic: r.ProfilePublic,
			StatsPublic:   r.StatsPublic,
		},
		CreatedAt: r.CreatedAt,
	}, nil
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
