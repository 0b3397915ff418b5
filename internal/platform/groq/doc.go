// Package groq implements the generation.Generator interface against the
// Groq inference API, the tertiary provider in the fallback chain. Groq
// exposes an OpenAI-compatible endpoint, so the adapter reuses the OpenAI
// SDK with a custom base URL. Models served there tend to wrap JSON in
// markdown fences despite instructions, so responses go through fence
// stripping before parsing.
package groq
