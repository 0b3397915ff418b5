package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftlypost/craftly-api/internal/domain"
	"github.com/craftlypost/craftly-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
		{
			name: "no rows maps to not found",
			err:  sql.ErrNoRows,
			want: store.ErrNotFound,
		},
		{
			name: "wrapped no rows maps to not found",
			err:  fmt.Errorf("query failed: %w", sql.ErrNoRows),
			want: store.ErrNotFound,
		},
		{
			name: "unique violation maps to duplicate",
			err:  &pgconn.PgError{Code: uniqueViolationCode},
			want: store.ErrDuplicate,
		},
		{
			name: "foreign key violation maps to invalid entity",
			err:  &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "fk_user"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "check violation maps to invalid entity",
			err:  &pgconn.PgError{Code: checkViolationCode},
			want: store.ErrInvalidEntity,
		},
		{
			name: "not null violation maps to invalid entity",
			err:  &pgconn.PgError{Code: notNullViolationCode},
			want: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
			} else {
				assert.ErrorIs(t, got, tc.want)
			}
		})
	}
}

func TestMapErrorPassesThroughUnknown(t *testing.T) {
	t.Parallel()

	unknown := errors.New("connection reset")
	assert.Equal(t, unknown, MapError(unknown))
}

func TestPoolColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    domain.ContentKind
		want    string
		wantErr bool
	}{
		{kind: domain.ContentKindText, want: "text_credits"},
		{kind: domain.ContentKindImage, want: "image_credits"},
		{kind: domain.ContentKindUGC, want: "image_credits"},
		{kind: domain.ContentKindVideo, want: "video_credits"},
		{kind: domain.ContentKind("podcast"), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			t.Parallel()

			got, err := poolColumn(tc.kind)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidContentKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewContentStoreNilDBPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewContentStore(nil, nil)
	})
}

func TestNewCreditStoreNilDBPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewCreditStore(nil, nil)
	})
}
