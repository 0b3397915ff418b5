// Package auth validates bearer tokens issued by the external identity
// provider. The API never issues tokens itself; it only checks the HMAC
// signature and time claims and extracts the user ID.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenValidator validates access tokens presented by API clients.
type TokenValidator interface {
	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, malformed subject, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the subset of token claims the API cares about.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for,
	// taken from the subject claim.
	UserID uuid.UUID

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
