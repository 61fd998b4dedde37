package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"eanmble/internal/config"
	"eanmble/internal/errors"
	"eanmble/internal/model"
	"eanmble/internal/repository"
)

// UserService exposes the credential-store operations on the local user mirror.
type UserService interface {
	CreateUser(ctx context.Context, name, userName, email, password string) (*model.User, error)
	UpdateEmail(ctx context.Context, user *model.User, email string) error
	UpdatePlan(ctx context.Context, user *model.User, plan string) error
	UpdatePassword(ctx context.Context, user *model.User, password string) error
	UpdatePhoneNumber(ctx context.Context, user *model.User, phoneNumber any) error
	// SeedAdmin inserts the admin-flagged record built from configuration.
	// A uniqueness conflict reports false rather than an error: the record is
	// already there and the failed insert was rolled back by the store.
	SeedAdmin(ctx context.Context, seed config.AdminSeed) (bool, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over the repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// CreateUser hashes the password and persists a non-admin record.
func (s *userService) CreateUser(ctx context.Context, name, userName, email, password string) (*model.User, error) {
	user, err := model.NewUser(name, userName, email, password, false)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateEmail(ctx context.Context, user *model.User, email string) error {
	return s.repo.UpdateEmail(ctx, user, email)
}

func (s *userService) UpdatePlan(ctx context.Context, user *model.User, plan string) error {
	return s.repo.UpdatePlan(ctx, user, plan)
}

func (s *userService) UpdatePassword(ctx context.Context, user *model.User, password string) error {
	return s.repo.UpdatePassword(ctx, user, password)
}

func (s *userService) UpdatePhoneNumber(ctx context.Context, user *model.User, phoneNumber any) error {
	return s.repo.UpdatePhoneNumber(ctx, user, phoneNumber)
}

func (s *userService) SeedAdmin(ctx context.Context, seed config.AdminSeed) (bool, error) {
	admin, err := model.NewUser(seed.Name, seed.UserName, seed.Email, seed.Password, true)
	if err != nil {
		return false, fmt.Errorf("build admin record: %w", err)
	}
	if seed.PhoneNumber != "" {
		if err := admin.SetPhoneNumber(seed.PhoneNumber); err != nil {
			return false, err
		}
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if stderrors.Is(err, errors.ErrDuplicateEmail) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
