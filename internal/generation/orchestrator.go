package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Attempt policy for the fallback chain. The primary adapter is assumed to
// be the highest-quality provider: its failures are often non-transient
// (e.g. a malformed prompt), so it gets a single attempt. Subsequent
// adapters fail mostly on transient capacity issues and get one retry
// after a short fixed delay.
const (
	primaryAttempts   = 1
	secondaryAttempts = 2

	// DefaultRetryDelay is the fixed wait before a non-primary adapter's
	// second attempt.
	DefaultRetryDelay = 2 * time.Second
)

// Orchestrator drives an ordered list of provider adapters, returning the
// first successful result or a terminal failure once every adapter has
// exhausted its attempts. It holds no per-request state and is safe for
// concurrent use.
type Orchestrator struct {
	generators []Generator
	retryDelay time.Duration
	logger     *slog.Logger

	// wait blocks for the retry delay without stalling other requests.
	// Swapped in tests to observe delays without sleeping.
	wait func(ctx context.Context, d time.Duration) error
}

// NewOrchestrator creates an Orchestrator over the given adapters, which
// must already be filtered down to those with valid credentials and listed
// in priority order. retryDelay <= 0 selects DefaultRetryDelay. A nil
// logger falls back to slog.Default.
func NewOrchestrator(generators []Generator, retryDelay time.Duration, logger *slog.Logger) *Orchestrator {
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		generators: generators,
		retryDelay: retryDelay,
		logger:     logger.With(slog.String("component", "orchestrator")),
		wait:       waitFor,
	}
}

// Configured reports whether at least one provider adapter is available.
func (o *Orchestrator) Configured() bool {
	return len(o.generators) > 0
}

// Providers returns the names of the configured adapters in priority order.
func (o *Orchestrator) Providers() []string {
	names := make([]string, 0, len(o.generators))
	for _, g := range o.generators {
		names = append(names, g.Name())
	}
	return names
}

// RetryDelay returns the configured wait before a non-primary adapter's
// second attempt.
func (o *Orchestrator) RetryDelay() time.Duration {
	return o.retryDelay
}

// Generate attempts the configured adapters strictly in priority order and
// returns the first successful result.
//
// The first adapter gets exactly one attempt; every subsequent adapter
// gets up to two, with the fixed retry delay before its second. On any
// attempt's success the remaining adapters are never invoked. Individual
// attempt failures are logged and swallowed; only two errors ever reach
// the caller: ErrNotConfigured when the adapter list is empty, and
// ErrAllProvidersFailed (wrapping the last underlying cause) when the
// whole chain is exhausted.
func (o *Orchestrator) Generate(ctx context.Context, systemPrompt, userPrompt string) (*Result, error) {
	if len(o.generators) == 0 {
		return nil, ErrNotConfigured
	}

	var lastErr error

	for i, gen := range o.generators {
		attempts := secondaryAttempts
		if i == 0 {
			attempts = primaryAttempts
		}

		for attempt := 1; attempt <= attempts; attempt++ {
			if attempt > 1 {
				o.logger.InfoContext(ctx, "waiting before retry",
					slog.String("provider", gen.Name()),
					slog.Duration("delay", o.retryDelay))
				if err := o.wait(ctx, o.retryDelay); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, err)
				}
			}

			o.logger.InfoContext(ctx, "attempting provider",
				slog.String("provider", gen.Name()),
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", attempts))

			result, err := gen.Generate(ctx, systemPrompt, userPrompt)
			if err == nil {
				o.logger.InfoContext(ctx, "provider succeeded",
					slog.String("provider", gen.Name()),
					slog.Int("attempt", attempt))
				return result, nil
			}

			lastErr = err
			o.logger.WarnContext(ctx, "provider attempt failed",
				slog.String("provider", gen.Name()),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
		}
	}

	return nil, fmt.Errorf("%w: last error: %v", ErrAllProvidersFailed, lastErr)
}

// waitFor blocks for d or until the context is cancelled, whichever comes
// first. One request's retry delay never blocks another request.
func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
