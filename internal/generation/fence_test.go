package generation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftlypost/craftly-api/internal/generation"
)

func TestStripFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare JSON untouched",
			raw:  `{"caption": "hello"}`,
			want: `{"caption": "hello"}`,
		},
		{
			name: "json-tagged fence",
			raw:  "```json\n{\"caption\": \"hello\"}\n```",
			want: `{"caption": "hello"}`,
		},
		{
			name: "untagged fence",
			raw:  "```\n{\"caption\": \"hello\"}\n```",
			want: `{"caption": "hello"}`,
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n```json\n{\"caption\": \"hello\"}\n```\n  ",
			want: `{"caption": "hello"}`,
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, generation.StripFences(tc.raw))
		})
	}
}

// Fenced and bare responses with identical JSON content must normalize to
// identical results.
func TestParseResultFenceEquivalence(t *testing.T) {
	t.Parallel()

	const payload = `{"caption": "Run faster, feel lighter.", ` +
		`"hashtags": ["#run", "#shoes"], "cta": "Shop now!"}`

	bare, err := generation.ParseResult(payload)
	require.NoError(t, err)

	fenced, err := generation.ParseResult("```json\n" + payload + "\n```")
	require.NoError(t, err)

	assert.Equal(t, bare, fenced)
	assert.Equal(t, "Run faster, feel lighter.", bare.Caption)
	assert.Equal(t, []string{"#run", "#shoes"}, bare.Hashtags)
	assert.Equal(t, "Shop now!", bare.CTA)
}

func TestParseResultMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := generation.ParseResult("```json\n{\"caption\": \n```")
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}

// Fields the provider omitted stay at their zero values rather than
// failing the parse.
func TestParseResultMissingFieldsDefault(t *testing.T) {
	t.Parallel()

	result, err := generation.ParseResult(`{"caption": "just a caption"}`)
	require.NoError(t, err)

	assert.Equal(t, "just a caption", result.Caption)
	assert.Empty(t, result.Hashtags)
	assert.Empty(t, result.CTA)
	assert.Empty(t, result.Hook)
	assert.Empty(t, result.Script)
	assert.Empty(t, result.ImagePrompt)
}
