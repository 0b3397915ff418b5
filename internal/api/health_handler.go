package api

import (
	"context"
	"net/http"
	"time"

	"github.com/craftlypost/craftly-api/internal/api/shared"
)

// DatabasePinger is the slice of *sql.DB the health handler needs.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service health and which backends are wired up.
type HealthResponse struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Providers []string `json:"providers"`
	Database  bool     `json:"database"`
}

// HealthHandler handles health check HTTP requests.
type HealthHandler struct {
	providers []string
	db        DatabasePinger
}

// NewHealthHandler creates a HealthHandler. providers is the ordered list
// of configured generation backends.
func NewHealthHandler(providers []string, db DatabasePinger) *HealthHandler {
	if providers == nil {
		providers = []string{}
	}
	return &HealthHandler{
		providers: providers,
		db:        db,
	}
}

// Check handles GET /health requests. It is a public endpoint.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbUp := false
	if h.db != nil {
		dbUp = h.db.PingContext(ctx) == nil
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "craftly-api",
		Providers: h.providers,
		Database:  dbUp,
	})
}
