package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.Generate(userID, "test@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_Validate_ExpiredToken(t *testing.T) {
	secret := "test-secret"
	svc := NewJWTService(secret)

	// Sign a token with the correct secret but an expiry in the past.
	claims := &Claims{
		UserID: uuid.New().String(),
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = svc.Validate(expired)
	assert.Error(t, err)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").Generate(uuid.New(), "test@example.com")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret")

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Validate(tok)
		assert.Error(t, err)
	}
}
