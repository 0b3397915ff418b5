package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftlypost/craftly-api/internal/domain"
)

// MockCreditStore is a mock implementation of store.CreditStore.
type MockCreditStore struct {
	GetBalanceFn func(ctx context.Context, userID uuid.UUID) (*domain.CreditBalance, error)
	DeductFn     func(ctx context.Context, userID uuid.UUID, kind domain.ContentKind, amount int) (*domain.CreditBalance, error)
}

func (m *MockCreditStore) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.CreditBalance, error) {
	if m.GetBalanceFn != nil {
		return m.GetBalanceFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockCreditStore) Deduct(
	ctx context.Context,
	userID uuid.UUID,
	kind domain.ContentKind,
	amount int,
) (*domain.CreditBalance, error) {
	if m.DeductFn != nil {
		return m.DeductFn(ctx, userID, kind, amount)
	}
	return nil, nil
}

func TestCreditsHandler_GetCredits(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mockStore := &MockCreditStore{
		GetBalanceFn: func(ctx context.Context, gotUserID uuid.UUID) (*domain.CreditBalance, error) {
			assert.Equal(t, userID, gotUserID)
			return domain.NewDefaultCreditBalance(userID), nil
		},
	}
	handler := NewCreditsHandler(mockStore)

	req := authedRequest(t, http.MethodGet, "/api/credits", userID, nil)
	rec := httptest.NewRecorder()
	handler.GetCredits(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CreditsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.DefaultTextCredits, resp.TextCredits)
	assert.Equal(t, domain.DefaultImageCredits, resp.ImageCredits)
	assert.Equal(t, domain.DefaultVideoCredits, resp.VideoCredits)
	assert.Equal(t, domain.DefaultTextCredits+domain.DefaultImageCredits+domain.DefaultVideoCredits, resp.TotalCredits)
	assert.Equal(t, "free", resp.Plan)
}

func TestCreditsHandler_GetCredits_Unauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewCreditsHandler(&MockCreditStore{})
	req := httptest.NewRequest(http.MethodGet, "/api/credits", nil)
	rec := httptest.NewRecorder()
	handler.GetCredits(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreditsHandler_DeductCredits(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	balance := domain.NewDefaultCreditBalance(userID)
	balance.TextCredits = 149

	mockStore := &MockCreditStore{
		DeductFn: func(ctx context.Context, gotUserID uuid.UUID, kind domain.ContentKind, amount int) (*domain.CreditBalance, error) {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, domain.ContentKindText, kind)
			assert.Equal(t, 1, amount)
			return balance, nil
		},
	}
	handler := NewCreditsHandler(mockStore)

	req := authedRequest(t, http.MethodPost, "/api/credits/deduct", userID,
		DeductCreditsRequest{CreditType: "text"})
	rec := httptest.NewRecorder()
	handler.DeductCredits(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DeductCreditsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 149, resp.CreditsRemaining)
}

func TestCreditsHandler_DeductCredits_Insufficient(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	empty := domain.NewDefaultCreditBalance(userID)
	empty.VideoCredits = 2

	mockStore := &MockCreditStore{
		DeductFn: func(ctx context.Context, _ uuid.UUID, _ domain.ContentKind, _ int) (*domain.CreditBalance, error) {
			return nil, domain.ErrInsufficientCredits
		},
		GetBalanceFn: func(ctx context.Context, _ uuid.UUID) (*domain.CreditBalance, error) {
			return empty, nil
		},
	}
	handler := NewCreditsHandler(mockStore)

	req := authedRequest(t, http.MethodPost, "/api/credits/deduct", userID,
		DeductCreditsRequest{CreditType: "video", Amount: 3})
	rec := httptest.NewRecorder()
	handler.DeductCredits(rec, req)

	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	var resp DeductCreditsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, 2, resp.CreditsRemaining)
	assert.Equal(t, "Insufficient credits", resp.Message)
}

func TestCreditsHandler_DeductCredits_InvalidType(t *testing.T) {
	t.Parallel()

	handler := NewCreditsHandler(&MockCreditStore{})
	req := authedRequest(t, http.MethodPost, "/api/credits/deduct", uuid.New(),
		DeductCreditsRequest{CreditType: "podcast"})
	rec := httptest.NewRecorder()
	handler.DeductCredits(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
