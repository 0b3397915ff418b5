package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/craftlypost/craftly-api/internal/api/shared"
	"github.com/craftlypost/craftly-api/internal/domain"
	"github.com/craftlypost/craftly-api/internal/store"
)

// CreditsHandler handles credit balance HTTP requests.
type CreditsHandler struct {
	creditStore store.CreditStore
	validator   *validator.Validate
}

// NewCreditsHandler creates a new CreditsHandler.
func NewCreditsHandler(creditStore store.CreditStore) *CreditsHandler {
	return &CreditsHandler{
		creditStore: creditStore,
		validator:   validator.New(),
	}
}

// GetCredits handles GET /api/credits requests. New users get the default
// free-plan balance on first access.
func (h *CreditsHandler) GetCredits(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	balance, err := h.creditStore.GetBalance(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, creditsResponseFromBalance(balance))
}

// DeductCredits handles POST /api/credits/deduct requests.
func (h *CreditsHandler) DeductCredits(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req DeductCreditsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	amount := req.Amount
	if amount == 0 {
		amount = 1
	}

	kind := domain.ContentKind(req.CreditType)
	balance, err := h.creditStore.Deduct(r.Context(), userID, kind, amount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCredits) {
			// Report the pool balance so the client can render it.
			remaining := 0
			if current, getErr := h.creditStore.GetBalance(r.Context(), userID); getErr == nil {
				remaining = current.PoolFor(kind)
			}
			shared.RespondWithJSON(w, r, http.StatusPaymentRequired, DeductCreditsResponse{
				Success:          false,
				CreditsRemaining: remaining,
				Message:          "Insufficient credits",
			})
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeductCreditsResponse{
		Success:          true,
		CreditsRemaining: balance.PoolFor(kind),
		Message:          "Credits deducted successfully",
	})
}
