// Package gemini implements the generation.Generator interface using
// Google's Gemini API, the secondary provider in the fallback chain. The
// adapter requests JSON output via the response MIME type, maps safety
// rejections to generation.ErrContentBlocked, and strips markdown fences
// before parsing since Gemini occasionally wraps JSON output anyway.
package gemini
