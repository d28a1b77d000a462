package repository

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "prodcat/internal/errors"
	"prodcat/internal/model"
)

const bcryptCost = 10

// UserRepository owns user persistence and password hashing at write time.
// Plaintext passwords never leave this boundary.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	CreateWithPassword(ctx context.Context, email, password string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByEmail finds a user by exact email match.
// Returns gorm.ErrRecordNotFound when no user exists.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateWithPassword hashes the plaintext password and persists the user.
// The unique index on email is the authoritative guard against concurrent
// duplicate registrations; a violation surfaces as ErrUserAlreadyExists.
func (r *userRepository) CreateWithPassword(ctx context.Context, email, password string) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}
