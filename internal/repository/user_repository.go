package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"eanmble/internal/errors"
	"eanmble/internal/model"
)

// UserRepository defines persistence operations for the local user mirror.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUserName(ctx context.Context, userName string) (*model.User, error)
	UpdateEmail(ctx context.Context, user *model.User, email string) error
	UpdatePlan(ctx context.Context, user *model.User, plan string) error
	UpdatePassword(ctx context.Context, user *model.User, password string) error
	UpdatePhoneNumber(ctx context.Context, user *model.User, phoneNumber any) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateEmail persists a single-column email change.
func (r *userRepository) UpdateEmail(ctx context.Context, user *model.User, email string) error {
	user.Email = email
	if err := r.db.WithContext(ctx).Model(user).Update("email", email).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// UpdatePlan persists a single-column plan change.
func (r *userRepository) UpdatePlan(ctx context.Context, user *model.User, plan string) error {
	user.SetPlan(plan)
	return r.db.WithContext(ctx).Model(user).Update("plan", plan).Error
}

// UpdatePassword rehashes and persists only the password_hash column.
func (r *userRepository) UpdatePassword(ctx context.Context, user *model.User, password string) error {
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(user).Update("password_hash", user.PasswordHash).Error
}

// UpdatePhoneNumber validates the value through the model before touching the
// database, so a bad type never reaches persistence.
func (r *userRepository) UpdatePhoneNumber(ctx context.Context, user *model.User, phoneNumber any) error {
	if err := user.SetPhoneNumber(phoneNumber); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(user).Update("phone_number", user.PhoneNumber).Error
}
