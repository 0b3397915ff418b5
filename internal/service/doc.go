// Package service contains the application services that sit between the
// HTTP handlers and the generation/persistence boundaries. The content
// service is the post-processor of the generation pipeline: it builds
// provider prompts, invokes the fallback orchestrator, applies request
// feature toggles, derives content statistics, and shapes the per-kind
// response objects. The dashboard service aggregates persisted history
// into the figures the client application renders.
package service
