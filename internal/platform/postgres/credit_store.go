package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/craftlypost/craftly-api/internal/domain"
	"github.com/craftlypost/craftly-api/internal/store"
)

// CreditStore implements the store.CreditStore interface using a
// PostgreSQL database as the storage backend.
type CreditStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCreditStore creates a PostgreSQL implementation of the CreditStore
// interface. A nil logger falls back to slog.Default.
func NewCreditStore(db store.DBTX, logger *slog.Logger) *CreditStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CreditStore{
		db:     db,
		logger: logger.With(slog.String("component", "credit_store")),
	}
}

// Ensure CreditStore implements store.CreditStore.
var _ store.CreditStore = (*CreditStore)(nil)

// poolColumn maps a content kind to the credit pool column that pays for
// it. UGC ads draw from the image pool.
func poolColumn(kind domain.ContentKind) (string, error) {
	switch kind {
	case domain.ContentKindText:
		return "text_credits", nil
	case domain.ContentKindImage, domain.ContentKindUGC:
		return "image_credits", nil
	case domain.ContentKindVideo:
		return "video_credits", nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidContentKind, kind)
}

// GetBalance implements store.CreditStore.GetBalance. First access for a
// user inserts the default free-plan balance; a concurrent insert race is
// absorbed by ON CONFLICT DO NOTHING followed by a re-read.
func (s *CreditStore) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.CreditBalance, error) {
	balance, err := s.getBalance(ctx, userID)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	defaults := domain.NewDefaultCreditBalance(userID)
	insert := `
		INSERT INTO user_credits (user_id, text_credits, image_credits, video_credits, plan, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err = s.db.ExecContext(ctx, insert,
		defaults.UserID,
		defaults.TextCredits,
		defaults.ImageCredits,
		defaults.VideoCredits,
		defaults.Plan,
		defaults.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to create default credit balance",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	return s.getBalance(ctx, userID)
}

func (s *CreditStore) getBalance(ctx context.Context, userID uuid.UUID) (*domain.CreditBalance, error) {
	query := `
		SELECT user_id, text_credits, image_credits, video_credits, plan, updated_at
		FROM user_credits
		WHERE user_id = $1
	`
	var balance domain.CreditBalance
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&balance.UserID,
		&balance.TextCredits,
		&balance.ImageCredits,
		&balance.VideoCredits,
		&balance.Plan,
		&balance.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBalanceNotFound
		}
		return nil, MapError(err)
	}

	return &balance, nil
}

// Deduct implements store.CreditStore.Deduct. The guard in the UPDATE
// keeps the pool from going negative under concurrent deductions.
func (s *CreditStore) Deduct(
	ctx context.Context,
	userID uuid.UUID,
	kind domain.ContentKind,
	amount int,
) (*domain.CreditBalance, error) {
	column, err := poolColumn(kind)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: negative deduction", store.ErrInvalidEntity)
	}

	// Ensure the row exists so first-time users can be charged against
	// their default allowance.
	if _, err := s.GetBalance(ctx, userID); err != nil {
		return nil, err
	}

	// Column names come from poolColumn's closed set, never from input.
	update := fmt.Sprintf(`
		UPDATE user_credits
		SET %[1]s = %[1]s - $2, updated_at = NOW()
		WHERE user_id = $1 AND %[1]s >= $2
	`, column)

	result, err := s.db.ExecContext(ctx, update, userID, amount)
	if err != nil {
		s.logger.Error("failed to deduct credits",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("pool", column))
		return nil, MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, MapError(err)
	}
	if affected == 0 {
		return nil, domain.ErrInsufficientCredits
	}

	return s.getBalance(ctx, userID)
}
