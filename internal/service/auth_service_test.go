package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"prodcat/internal/auth"
	apperrors "prodcat/internal/errors"
	"prodcat/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) CreateWithPassword(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateWithPassword", mock.Anything, "test@example.com", "password123").Return(&model.User{
					ID:           uuid.New(),
					Email:        "test@example.com",
					PasswordHash: "$2a$10$hash",
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "user already exists",
			email:    "existing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
		{
			name:     "duplicate caught by unique index",
			email:    "raced@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "raced@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateWithPassword", mock.Anything, "raced@example.com", "password123").Return(nil, apperrors.ErrUserAlreadyExists)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)
			user, err := svc.Register(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEqual(t, uuid.Nil, user.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           uuid.New(),
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           uuid.New(),
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email yields the same error as wrong password",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			accessToken, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	storeErr := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, storeErr)

	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(mockRepo, jwtService)

	accessToken, err := svc.Login(context.Background(), "test@example.com", "password123")

	assert.Error(t, err)
	assert.Empty(t, accessToken)
	// An unreachable store must not masquerade as bad credentials.
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, err, storeErr)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginTokenResolvesIdentity(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	user := &model.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: string(hashedPassword),
	}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)

	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(mockRepo, jwtService)

	accessToken, err := svc.Login(context.Background(), "test@example.com", "password123")
	assert.NoError(t, err)

	claims, err := jwtService.Validate(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.ID.String(), claims.UserID)

	resolved, err := svc.ResolveIdentity(context.Background(), claims.Email)
	assert.NoError(t, err)
	assert.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestAuthService_ResolveIdentity_Absent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(mockRepo, jwtService)

	resolved, err := svc.ResolveIdentity(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, resolved)
}
