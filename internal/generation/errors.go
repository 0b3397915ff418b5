package generation

import "errors"

// Common errors returned by the generation package and its adapters.
var (
	// ErrNotConfigured is returned when no provider has credentials, so the
	// orchestrator has nothing to attempt.
	ErrNotConfigured = errors.New("no generation backend configured")

	// ErrAllProvidersFailed is returned when every configured adapter has
	// exhausted its attempts without a single success.
	ErrAllProvidersFailed = errors.New("all generation backends failed")

	// ErrInvalidResponse is returned when a provider response cannot be
	// parsed after fence stripping, or is otherwise malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the provider refuses the request
	// due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when an adapter is constructed with an
	// invalid configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
