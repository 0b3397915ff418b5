package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ContentKind identifies what sort of content a generation request produces.
type ContentKind string

// Possible content kinds.
const (
	ContentKindText  ContentKind = "text"
	ContentKindImage ContentKind = "image"
	ContentKindVideo ContentKind = "video"
	ContentKindUGC   ContentKind = "ugc"
)

// Platform identifies the social network a piece of content targets.
type Platform string

// Supported platforms. The set is closed: unknown values are rejected,
// never defaulted.
const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

// Tone identifies the voice requested for generated content.
type Tone string

// Supported tones.
const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneHumorous      Tone = "humorous"
	ToneInspirational Tone = "inspirational"
	ToneEducational   Tone = "educational"
	TonePromotional   Tone = "promotional"
)

// Goal identifies the primary objective of generated content.
type Goal string

// Supported goals.
const (
	GoalEngagement    Goal = "engagement"
	GoalAwareness     Goal = "awareness"
	GoalConversion    Goal = "conversion"
	GoalTraffic       Goal = "traffic"
	GoalEducation     Goal = "education"
	GoalEntertainment Goal = "entertainment"
)

// Topic length bounds enforced before any provider call.
const (
	MinTopicLength = 3
	MaxTopicLength = 500
)

// Common validation errors for generation requests and content records.
var (
	ErrInvalidContentKind = errors.New("invalid content kind")
	ErrInvalidPlatform    = errors.New("invalid platform")
	ErrInvalidTone        = errors.New("invalid tone")
	ErrInvalidGoal        = errors.New("invalid goal")
	ErrTopicLength        = fmt.Errorf(
		"topic must be between %d and %d characters", MinTopicLength, MaxTopicLength)
	ErrEmptyContentUserID = errors.New("content user ID cannot be empty")
)

// Valid reports whether k is one of the closed set of content kinds.
func (k ContentKind) Valid() bool {
	switch k {
	case ContentKindText, ContentKindImage, ContentKindVideo, ContentKindUGC:
		return true
	}
	return false
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformLinkedIn, PlatformTwitter,
		PlatformFacebook, PlatformTikTok, PlatformYouTube:
		return true
	}
	return false
}

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneCasual, ToneHumorous,
		ToneInspirational, ToneEducational, TonePromotional:
		return true
	}
	return false
}

// Valid reports whether g is one of the supported goals.
func (g Goal) Valid() bool {
	switch g {
	case GoalEngagement, GoalAwareness, GoalConversion,
		GoalTraffic, GoalEducation, GoalEntertainment:
		return true
	}
	return false
}

// GenerationRequest describes one content generation job. It is created
// fresh per request and discarded after the response is sent.
type GenerationRequest struct {
	Topic           string
	Platform        Platform
	Tone            Tone
	Goal            Goal
	IncludeHashtags bool
	IncludeCTA      bool
	IncludeEmojis   bool

	// Duration is only meaningful for video scripts (e.g. "15s", "30s", "60s").
	Duration string
}

// Validate checks the request against the domain invariants: topic length
// bounds and membership in the closed platform/tone/goal vocabularies.
func (r GenerationRequest) Validate() error {
	if n := utf8.RuneCountInString(r.Topic); n < MinTopicLength || n > MaxTopicLength {
		return ErrTopicLength
	}
	if !r.Platform.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlatform, r.Platform)
	}
	if !r.Tone.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTone, r.Tone)
	}
	if !r.Goal.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidGoal, r.Goal)
	}
	return nil
}

// ContentRecord is a persisted piece of generated content, kept for
// history listings and dashboard aggregation.
type ContentRecord struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Kind      ContentKind `json:"content_type"`
	Platform  Platform    `json:"platform"`
	Topic     string      `json:"topic"`
	Tone      Tone        `json:"tone"`
	Goal      Goal        `json:"goal"`
	Caption   string      `json:"caption"`
	Hashtags  []string    `json:"hashtags"`
	CTA       string      `json:"cta"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewContentRecord creates a validated ContentRecord with a fresh ID and
// creation timestamp.
func NewContentRecord(
	userID uuid.UUID,
	kind ContentKind,
	platform Platform,
	topic string,
	tone Tone,
	goal Goal,
	caption string,
	hashtags []string,
	cta string,
) (*ContentRecord, error) {
	record := &ContentRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Platform:  platform,
		Topic:     topic,
		Tone:      tone,
		Goal:      goal,
		Caption:   caption,
		Hashtags:  hashtags,
		CTA:       cta,
		CreatedAt: time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks field invariants on the record.
func (c *ContentRecord) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrEmptyContentUserID
	}
	if !c.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidContentKind, c.Kind)
	}
	if !c.Platform.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlatform, c.Platform)
	}
	if n := utf8.RuneCountInString(c.Topic); n < MinTopicLength || n > MaxTopicLength {
		return ErrTopicLength
	}
	if !c.Tone.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTone, c.Tone)
	}
	if !c.Goal.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidGoal, c.Goal)
	}
	return nil
}
