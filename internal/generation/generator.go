package generation

import "context"

// Generator is the capability contract implemented by every provider
// adapter: issue exactly one completion call for the given prompt pair and
// return the parsed result, or fail. Adapters are stateless across calls
// apart from held credentials and are safe for concurrent reuse.
type Generator interface {
	// Name identifies the provider for logging and error reporting.
	Name() string

	// Generate sends one completion request and returns the normalized
	// structured result. All failure modes (network errors, non-2xx
	// responses, JSON parse failures, safety rejections) surface as an
	// error; callers treat them uniformly as "this adapter failed".
	Generate(ctx context.Context, systemPrompt, userPrompt string) (*Result, error)
}

// Result is the normalized structured output shared by all providers.
// Which fields are populated depends on the content kind requested by the
// prompt; fields the provider omitted stay at their zero values. A Result
// is produced once per successful attempt and never mutated afterward.
type Result struct {
	Caption     string   `json:"caption"`
	Hook        string   `json:"hook"`
	Script      string   `json:"script"`
	ImagePrompt string   `json:"imagePrompt"`
	Hashtags    []string `json:"hashtags"`
	CTA         string   `json:"cta"`
}
