package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eanmble/internal/config"
	"eanmble/internal/errors"
	"eanmble/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateEmail(ctx context.Context, user *model.User, email string) error {
	args := m.Called(ctx, user, email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePlan(ctx context.Context, user *model.User, plan string) error {
	args := m.Called(ctx, user, plan)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, user *model.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePhoneNumber(ctx context.Context, user *model.User, phoneNumber any) error {
	args := m.Called(ctx, user, phoneNumber)
	return args.Error(0)
}

func seedValues() config.AdminSeed {
	return config.AdminSeed{
		Name:        "Site Admin",
		UserName:    "eanmble_admin",
		Email:       "admin@eanmble.example",
		Password:    "super secret pw",
		PhoneNumber: "+254700000000",
	}
}

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
	svc := NewUserService(mockRepo)

	user, err := svc.CreateUser(context.Background(), "Jane Analyst", "jane_a", "jane@example.com", "correct horse")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", user.Email)
	assert.False(t, user.Admin)
	assert.True(t, user.VerifyPassword("correct horse"))
	mockRepo.AssertExpectations(t)
}

func TestUserService_SeedAdmin(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*MockUserRepository)
		wantCreated bool
		wantErr     bool
	}{
		{
			name: "fresh database gets the admin",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Admin && u.Email == "admin@eanmble.example" && u.PhoneNumber != nil
				})).Return(nil)
			},
			wantCreated: true,
		},
		{
			name: "duplicate reports false without an error",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(errors.ErrDuplicateEmail)
			},
			wantCreated: false,
		},
		{
			name: "other store failures propagate",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(assert.AnError)
			},
			wantCreated: false,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			svc := NewUserService(mockRepo)

			created, err := svc.SeedAdmin(context.Background(), seedValues())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCreated, created)
			mockRepo.AssertExpectations(t)
		})
	}
}
