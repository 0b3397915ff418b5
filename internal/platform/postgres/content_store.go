package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/craftlypost/craftly-api/internal/domain"
	"github.com/craftlypost/craftly-api/internal/store"
)

// ContentStore implements the store.ContentStore interface using a
// PostgreSQL database as the storage backend.
type ContentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewContentStore creates a PostgreSQL implementation of the ContentStore
// interface. The database handle must be initialized and managed by the
// caller. A nil logger falls back to slog.Default.
func NewContentStore(db store.DBTX, logger *slog.Logger) *ContentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContentStore{
		db:     db,
		logger: logger.With(slog.String("component", "content_store")),
	}
}

// Ensure ContentStore implements store.ContentStore.
var _ store.ContentStore = (*ContentStore)(nil)

// Create implements store.ContentStore.Create.
func (s *ContentStore) Create(ctx context.Context, record *domain.ContentRecord) error {
	if err := record.Validate(); err != nil {
		s.logger.Warn("content record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("content_id", record.ID.String()))
		return err
	}

	// Hashtags are stored as JSONB so list order survives round trips.
	hashtags, err := json.Marshal(record.Hashtags)
	if err != nil {
		return fmt.Errorf("failed to marshal hashtags: %w", err)
	}

	query := `
		INSERT INTO content_history
			(id, user_id, content_type, platform, topic, tone, goal, caption, hashtags, cta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Kind,
		record.Platform,
		record.Topic,
		record.Tone,
		record.Goal,
		record.Caption,
		hashtags,
		record.CTA,
		record.CreatedAt,
	)
	if err != nil {
		s.logger.Error("failed to create content record",
			slog.String("error", err.Error()),
			slog.String("content_id", record.ID.String()),
			slog.String("user_id", record.UserID.String()))
		return MapError(err)
	}

	return nil
}

// ListRecent implements store.ContentStore.ListRecent.
func (s *ContentStore) ListRecent(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.ContentRecord, error) {
	query := `
		SELECT id, user_id, content_type, platform, topic, tone, goal, caption, hashtags, cta, created_at
		FROM content_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	records := make([]*domain.ContentRecord, 0)
	for rows.Next() {
		var record domain.ContentRecord
		var hashtags []byte

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Kind,
			&record.Platform,
			&record.Topic,
			&record.Tone,
			&record.Goal,
			&record.Caption,
			&hashtags,
			&record.CTA,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}

		if len(hashtags) > 0 {
			if err := json.Unmarshal(hashtags, &record.Hashtags); err != nil {
				return nil, fmt.Errorf("failed to unmarshal hashtags: %w", err)
			}
		}

		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return records, nil
}

// CountByKind implements store.ContentStore.CountByKind.
func (s *ContentStore) CountByKind(
	ctx context.Context,
	userID uuid.UUID,
) (map[domain.ContentKind]int, error) {
	query := `
		SELECT content_type, COUNT(*)
		FROM content_history
		WHERE user_id = $1
		GROUP BY content_type
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	counts := make(map[domain.ContentKind]int)
	for rows.Next() {
		var kind domain.ContentKind
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, MapError(err)
		}
		counts[kind] = count
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return counts, nil
}

// CountByPlatform implements store.ContentStore.CountByPlatform.
func (s *ContentStore) CountByPlatform(
	ctx context.Context,
	userID uuid.UUID,
) (map[domain.Platform]int, error) {
	query := `
		SELECT platform, COUNT(*)
		FROM content_history
		WHERE user_id = $1
		GROUP BY platform
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	counts := make(map[domain.Platform]int)
	for rows.Next() {
		var platform domain.Platform
		var count int
		if err := rows.Scan(&platform, &count); err != nil {
			return nil, MapError(err)
		}
		counts[platform] = count
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return counts, nil
}
