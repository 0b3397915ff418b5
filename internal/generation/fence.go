package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes a surrounding markdown code fence (with or without a
// "json" tag) from raw provider output. Providers that lack a native JSON
// output mode often wrap their JSON in triple backticks despite being told
// not to. Input without a fence is returned trimmed and otherwise
// unchanged.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}

	return strings.TrimSpace(text)
}

// ParseResult strips any markdown fence from raw provider output and
// parses it strictly into a Result. Malformed JSON is an adapter failure,
// not a best-effort partial result.
func ParseResult(raw string) (*Result, error) {
	cleaned := StripFences(raw)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}
