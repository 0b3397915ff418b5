package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftlypost/craftly-api/internal/config"
)

const testSecret = "test-secret-key-thats-long-enough-for-hs256"

func newTestValidator(t *testing.T, now time.Time) *hmacTokenValidator {
	t.Helper()
	v, err := NewTokenValidator(config.AuthConfig{JWTSecret: testSecret}, slog.Default())
	require.NoError(t, err)
	impl := v.(*hmacTokenValidator)
	impl.timeFunc = func() time.Time { return now }
	return impl
}

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNewTokenValidator_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenValidator(config.AuthConfig{JWTSecret: "too-short"}, slog.Default())
	assert.Error(t, err)
}

func TestValidateToken_Valid(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	v := newTestValidator(t, now)
	claims, err := v.ValidateToken(context.Background(), tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})

	v := newTestValidator(t, now)
	_, err := v.ValidateToken(context.Background(), tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_ClockSkewTolerated(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// Expired one minute ago, inside the two minute skew allowance.
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
	})

	v := newTestValidator(t, now)
	_, err := v.ValidateToken(context.Background(), tokenString)
	assert.NoError(t, err)
}

func TestValidateToken_NotYetValid(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		NotBefore: jwt.NewNumericDate(now.Add(time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Hour)),
	})

	v := newTestValidator(t, now)
	_, err := v.ValidateToken(context.Background(), tokenString)
	assert.ErrorIs(t, err, ErrTokenNotYetValid)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tokenString := signToken(t, "a-different-secret-key-also-long-enough!", jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	v := newTestValidator(t, now)
	_, err := v.ValidateToken(context.Background(), tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_SubjectMustBeUUID(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tokenString := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	v := newTestValidator(t, now)
	_, err := v.ValidateToken(context.Background(), tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingAndMalformed(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t, time.Now())

	_, err := v.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = v.ValidateToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
