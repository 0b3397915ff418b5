package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftlypost/craftly-api/internal/domain"
)

// ContentStore defines the interface for persisting and querying generated
// content history.
type ContentStore interface {
	// Create saves a new content record. It validates the record first and
	// returns domain validation errors if the data is invalid.
	Create(ctx context.Context, record *domain.ContentRecord) error

	// ListRecent retrieves the user's most recent content records, newest
	// first, up to limit. Returns an empty slice if none exist.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ContentRecord, error)

	// CountByKind returns how many records the user has per content kind.
	// Kinds with no records are absent from the map.
	CountByKind(ctx context.Context, userID uuid.UUID) (map[domain.ContentKind]int, error)

	// CountByPlatform returns how many records the user has per platform.
	// Platforms with no records are absent from the map.
	CountByPlatform(ctx context.Context, userID uuid.UUID) (map[domain.Platform]int, error)
}

// CreditStore defines the interface for credit balance bookkeeping.
type CreditStore interface {
	// GetBalance retrieves the user's credit balance, creating the default
	// free-plan balance on first access.
	GetBalance(ctx context.Context, userID uuid.UUID) (*domain.CreditBalance, error)

	// Deduct removes amount credits from the pool that pays for the given
	// content kind and returns the updated balance. Returns
	// domain.ErrInsufficientCredits if the pool would go negative.
	Deduct(ctx context.Context, userID uuid.UUID, kind domain.ContentKind, amount int) (*domain.CreditBalance, error)
}
