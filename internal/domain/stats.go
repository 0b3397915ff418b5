package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Engagement score labels. The score is a qualitative heuristic derived
// from the number of hashtags the provider generated, evaluated before any
// request toggle strips them from the response.
const (
	EngagementHigh   = "High"
	EngagementMedium = "Medium"
)

// Hashtag count at or above which content scores EngagementHigh.
const highEngagementHashtagCount = 5

// ContentStats are read-only statistics derived from a generated text
// field. They have no lifecycle of their own.
type ContentStats struct {
	Characters      int    `json:"characters"`
	Words           int    `json:"words"`
	ReadTime        string `json:"readTime"`
	EngagementScore string `json:"engagementScore"`
}

// ComputeStats derives statistics from the primary text field of a
// generation result. hashtagCount is the number of hashtags the provider
// returned, counted before any include-hashtags toggle is applied.
//
// Read time assumes roughly three words per second and never reports less
// than one second. Equal inputs always yield equal stats.
func ComputeStats(text string, hashtagCount int) ContentStats {
	words := len(strings.Fields(text))

	readSeconds := words / 3
	if readSeconds < 1 {
		readSeconds = 1
	}

	score := EngagementMedium
	if hashtagCount >= highEngagementHashtagCount {
		score = EngagementHigh
	}

	// Captions routinely contain emoji, so count characters rather than bytes.
	return ContentStats{
		Characters:      utf8.RuneCountInString(text),
		Words:           words,
		ReadTime:        fmt.Sprintf("%d sec", readSeconds),
		EngagementScore: score,
	}
}
