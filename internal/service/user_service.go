package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/internal/repository"
	"github.com/limbo/franklin/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo        repository.UsersRepositoryI
	recordsRepo repository.VirtueRecordsRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, recordsRepo repository.VirtueRecordsRepositoryI) *UserService {
	if usersRepo == nil || recordsRepo == nil {
		log.Fatal("on user service provided nil repos")
	}
	return &UserService{
		repo:        usersRepo,
		recordsRepo: recordsRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if req == nil {
		return nil, errorvalues.NewValidationError("body", "is required")
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}
	user := entity.NewUser(req.Name, passwordHash)
	err = us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

func (us *UserService) UpdateSettings(ctx context.Context, id uuid.UUID, req *SettingsRequest) (*entity.User, error) {
	if req == nil {
		return nil, errorvalues.NewValidationError("body", "is required")
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.CurrentFocus == nil && req.Notifications == nil && req.Privacy == nil {
		return nil, errorvalues.NewValidationError("body", "no settings to change")
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CurrentFocus != nil {
		user.CurrentFocus = *req.CurrentFocus
	}
	if n := req.Notifications; n != nil {
		setIfPresent(&user.Notifications.Daily, n.Daily)
		setIfPresent(&user.Notifications.Weekly, n.Weekly)
		setIfPresent(&user.Notifications.Achievements, n.Achievements)
	}
	if p := req.Privacy; p != nil {
		setIfPresent(&user.Privacy.ProfilePublic, p.ProfilePublic)
		setIfPresent(&user.Privacy.StatsPublic, p.StatsPublic)
	}
	if err = us.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *ProfileRequest) (*entity.User, error) {
	if req == nil {
		return nil, errorvalues.NewValidationError("body", "is required")
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.DisplayName == nil && req.Bio == nil && req.Avatar == nil {
		return nil, errorvalues.NewValidationError("body", "no profile fields to change")
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	setIfPresent(&user.Profile.DisplayName, req.DisplayName)
	setIfPresent(&user.Profile.Bio, req.Bio)
	setIfPresent(&user.Profile.Avatar, req.Avatar)
	if err = us.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) save(ctx context.Context, user *entity.User) error {
	if err := us.repo.Update(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository updating error: %w", err)
	}
	return nil
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongCredentials
	}
	if _, err = us.recordsRepo.DeleteAllForUser(ctx, user.ID); err != nil {
		return fmt.Errorf("repository deleting records error: %w", err)
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository deletion error: %w", err)
	}
	return nil
}
