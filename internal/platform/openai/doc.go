// Package openai implements the generation.Generator interface against the
// OpenAI chat completions API. It is the primary provider in the fallback
// chain and uses the API's native JSON output mode.
package openai
