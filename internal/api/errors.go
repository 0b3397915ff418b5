package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/craftlypost/craftly-api/internal/api/shared"
	"github.com/craftlypost/craftly-api/internal/domain"
	"github.com/craftlypost/craftly-api/internal/generation"
	"github.com/craftlypost/craftly-api/internal/service/auth"
	"github.com/craftlypost/craftly-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on error type. This prevents leaking internal error types
// or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Request validation errors
	case errors.Is(err, domain.ErrInvalidContentKind),
		errors.Is(err, domain.ErrInvalidPlatform),
		errors.Is(err, domain.ErrInvalidTone),
		errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrTopicLength),
		errors.Is(err, domain.ErrEmptyContentUserID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Billing errors
	case errors.Is(err, domain.ErrInsufficientCredits):
		return http.StatusPaymentRequired

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// No generation backend is configured at all
	case errors.Is(err, generation.ErrNotConfigured):
		return http.StatusServiceUnavailable

	// Upstream provider failures
	case errors.Is(err, generation.ErrAllProvidersFailed),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details such as provider responses or SQL errors.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, domain.ErrTopicLength):
		return fmt.Sprintf("Topic must be between %d and %d characters",
			domain.MinTopicLength, domain.MaxTopicLength)

	case errors.Is(err, domain.ErrInvalidContentKind):
		return "Invalid content type"

	case errors.Is(err, domain.ErrInvalidPlatform):
		return "Invalid platform"

	case errors.Is(err, domain.ErrInvalidTone):
		return "Invalid tone"

	case errors.Is(err, domain.ErrInvalidGoal):
		return "Invalid goal"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInsufficientCredits):
		return "Insufficient credits"

	case errors.Is(err, store.ErrContentNotFound):
		return "Content not found"

	case errors.Is(err, store.ErrBalanceNotFound):
		return "Credit balance not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, generation.ErrNotConfigured):
		return "Content generation is not configured"

	case errors.Is(err, generation.ErrContentBlocked):
		return "Content was blocked by provider safety filters"

	case errors.Is(err, generation.ErrAllProvidersFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return "Content generation failed, please try again"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes an error response for a failed service call,
// mapping the error to a status code and safe message.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes field-internal details from validator
// errors and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'GenerateContentRequest.Topic' Error:Field
		// validation for 'Topic' failed on the 'min' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "gt", "gte":
		return "value too small"
	default:
		return "validation failed"
	}
}
