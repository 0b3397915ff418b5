// Package domain contains the core business entities for the Craftly API:
// content generation requests and records, the closed platform/tone/goal
// vocabularies, per-platform publishing profiles, derived content statistics,
// and credit balances. Domain types validate themselves and carry no
// dependencies on transport, persistence, or provider concerns.
package domain
