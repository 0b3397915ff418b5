package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftlypost/craftly-api/internal/domain"
)

func TestComputeStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		text         string
		hashtagCount int
		want         domain.ContentStats
	}{
		{
			name:         "promotional tweet",
			text:         "Run faster, feel lighter.",
			hashtagCount: 5,
			want: domain.ContentStats{
				Characters:      25,
				Words:           4,
				ReadTime:        "1 sec",
				EngagementScore: domain.EngagementHigh,
			},
		},
		{
			name:         "few hashtags scores medium",
			text:         "Run faster, feel lighter.",
			hashtagCount: 4,
			want: domain.ContentStats{
				Characters:      25,
				Words:           4,
				ReadTime:        "1 sec",
				EngagementScore: domain.EngagementMedium,
			},
		},
		{
			name:         "empty text",
			text:         "",
			hashtagCount: 0,
			want: domain.ContentStats{
				Characters:      0,
				Words:           0,
				ReadTime:        "1 sec",
				EngagementScore: domain.EngagementMedium,
			},
		},
		{
			name:         "read time floors at word count over three",
			text:         "one two three four five six seven eight nine ten eleven",
			hashtagCount: 0,
			want: domain.ContentStats{
				Characters:      55,
				Words:           11,
				ReadTime:        "3 sec",
				EngagementScore: domain.EngagementMedium,
			},
		},
		{
			name:         "multibyte characters counted as runes",
			text:         "Sale! 🎉🎉",
			hashtagCount: 0,
			want: domain.ContentStats{
				Characters:      8,
				Words:           2,
				ReadTime:        "1 sec",
				EngagementScore: domain.EngagementMedium,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := domain.ComputeStats(tc.text, tc.hashtagCount)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Stats are a pure function of their inputs: repeated computation over the
// same text must always yield identical results.
func TestComputeStatsDeterministic(t *testing.T) {
	t.Parallel()

	const text = "Introducing our new sustainable collection! Every piece tells a story."

	first := domain.ComputeStats(text, 3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, domain.ComputeStats(text, 3))
	}
}
