package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftlypost/craftly-api/internal/service"
)

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	StatsFn func(ctx context.Context, userID uuid.UUID) (*service.DashboardResponse, error)
}

func (m *MockDashboardService) Stats(ctx context.Context, userID uuid.UUID) (*service.DashboardResponse, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx, userID)
	}
	return nil, nil
}

func TestDashboardHandler_GetStats(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	mockService := &MockDashboardService{
		StatsFn: func(ctx context.Context, gotUserID uuid.UUID) (*service.DashboardResponse, error) {
			assert.Equal(t, userID, gotUserID)
			return &service.DashboardResponse{
				Stats: service.DashboardStats{
					PostsGenerated: 3,
					TimeSaved:      "1hrs",
					PostsChange:    "+0%",
				},
				RecentContent: []service.RecentContentItem{},
				PlatformStats: []service.PlatformUsage{},
			}, nil
		},
	}
	handler := NewDashboardHandler(mockService)

	req := authedRequest(t, http.MethodGet, "/api/dashboard/stats", userID, nil)
	rec := httptest.NewRecorder()
	handler.GetStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Stats.PostsGenerated)
	assert.Equal(t, "1hrs", resp.Stats.TimeSaved)
}

func TestDashboardHandler_GetStats_Unauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewDashboardHandler(&MockDashboardService{})
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	handler.GetStats(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardHandler_GetStats_ServiceError(t *testing.T) {
	t.Parallel()

	handler := NewDashboardHandler(&MockDashboardService{
		StatsFn: func(ctx context.Context, userID uuid.UUID) (*service.DashboardResponse, error) {
			return nil, errors.New("db down")
		},
	})

	req := authedRequest(t, http.MethodGet, "/api/dashboard/stats", uuid.New(), nil)
	rec := httptest.NewRecorder()
	handler.GetStats(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
