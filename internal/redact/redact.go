// Package redact strips sensitive information from strings before they are
// logged. Provider failures bubble up raw SDK errors that can embed API
// keys, bearer tokens, database connection strings, or request URLs; those
// must never reach log output or error responses verbatim.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedURLPlaceholder        = "[REDACTED_URL]"
)

var (
	// Database connection strings with inline credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres(?:ql)?|mysql|mongodb)://[^@\s]+@[^\s]+`)

	// Provider API keys: OpenAI/Groq style prefixed keys and generic
	// key=value assignments.
	providerKeyRegex = regexp.MustCompile(`\b(?:sk|gsk|AIza)[A-Za-z0-9_-]{16,}\b`)
	apiKeyRegex      = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|authorization|bearer)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// JWT tokens: three base64url segments, first two starting with eyJ.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Email addresses.
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Full request URLs, which may carry keys in query strings.
	urlRegex = regexp.MustCompile(`https?://[^\s"']+`)
)

type replacement struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Order matters: connection strings and JWTs must be replaced before the
// broader URL and key patterns get a chance to mangle them partially.
var replacements = []replacement{
	{dbConnRegex, RedactedCredentialPlaceholder},
	{jwtTokenRegex, RedactedJWTPlaceholder},
	{providerKeyRegex, RedactedKeyPlaceholder},
	{apiKeyRegex, RedactedKeyPlaceholder},
	{emailRegex, RedactedEmailPlaceholder},
	{urlRegex, RedactedURLPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range replacements {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's message.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
