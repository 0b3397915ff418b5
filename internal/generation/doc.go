// Package generation defines the provider-facing content generation
// boundary: the Generator interface implemented by each LLM provider
// adapter, the normalized Result every adapter produces, and the fallback
// Orchestrator that walks an ordered adapter chain with bounded retries
// until one attempt succeeds. The application core depends only on this
// package, never on a concrete provider.
package generation
