package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"prodcat/internal/auth"
	apperrors "prodcat/internal/errors"
	"prodcat/internal/model"
	"prodcat/internal/repository"
)

// AuthService handles registration, login, and identity resolution.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.PublicUser, error)
	Login(ctx context.Context, email, password string) (accessToken string, err error)
	ResolveIdentity(ctx context.Context, email string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password and returns the public view.
// The existence check here is a fast path; the unique index in the repository
// is the authoritative guard against the check-then-create race.
func (s *authService) Register(ctx context.Context, email, password string) (*model.PublicUser, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	user, err := s.userRepo.CreateWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// Login verifies credentials and returns a signed access token.
// Unknown email and wrong password produce the same error so the response
// does not reveal which emails are registered.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		// Store failures are not credential failures; surface them.
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.Generate(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// ResolveIdentity re-hydrates a principal from a verified token's email claim.
// Returns (nil, nil) when no user matches; the HTTP layer turns that into 401.
func (s *authService) ResolveIdentity(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return user, nil
}
