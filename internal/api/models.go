package api

import (
	"time"

	"github.com/craftlypost/craftly-api/internal/domain"
)

// GenerateContentRequest is the request body shared by the four content
// generation endpoints. The include toggles default to true when omitted,
// and duration only applies to video scripts.
type GenerateContentRequest struct {
	Topic           string `json:"topic"           validate:"required,min=3,max=500"`
	Platform        string `json:"platform"        validate:"required"`
	Tone            string `json:"tone"            validate:"required"`
	Goal            string `json:"goal"            validate:"required"`
	IncludeHashtags *bool  `json:"includeHashtags"`
	IncludeCTA      *bool  `json:"includeCTA"`
	IncludeEmojis   *bool  `json:"includeEmojis"`
	Duration        string `json:"duration"`
}

// ToDomain converts the request body to a domain generation request.
// Enum values are validated by the domain layer, not validator tags, so
// invalid values map to the same errors everywhere.
func (req GenerateContentRequest) ToDomain() domain.GenerationRequest {
	return domain.GenerationRequest{
		Topic:           req.Topic,
		Platform:        domain.Platform(req.Platform),
		Tone:            domain.Tone(req.Tone),
		Goal:            domain.Goal(req.Goal),
		IncludeHashtags: boolOrTrue(req.IncludeHashtags),
		IncludeCTA:      boolOrTrue(req.IncludeCTA),
		IncludeEmojis:   boolOrTrue(req.IncludeEmojis),
		Duration:        req.Duration,
	}
}

func boolOrTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}

// SaveContentRequest is the body for explicitly saving content to history.
type SaveContentRequest struct {
	ContentType string   `json:"contentType" validate:"required"`
	Platform    string   `json:"platform"    validate:"required"`
	Topic       string   `json:"topic"       validate:"required,min=3,max=500"`
	Tone        string   `json:"tone"        validate:"required"`
	Goal        string   `json:"goal"        validate:"required"`
	Caption     string   `json:"caption"     validate:"required"`
	Hashtags    []string `json:"hashtags"`
	CTA         string   `json:"cta"`
}

// SaveContentResponse acknowledges an explicit history save.
type SaveContentResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// HistoryItem is one saved content record in a history listing.
type HistoryItem struct {
	ID          string    `json:"id"`
	ContentType string    `json:"contentType"`
	Platform    string    `json:"platform"`
	Topic       string    `json:"topic"`
	Tone        string    `json:"tone"`
	Goal        string    `json:"goal"`
	Caption     string    `json:"caption"`
	Hashtags    []string  `json:"hashtags"`
	CTA         string    `json:"cta"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HistoryResponse is the history listing payload.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

func historyItemFromRecord(record *domain.ContentRecord) HistoryItem {
	hashtags := record.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return HistoryItem{
		ID:          record.ID.String(),
		ContentType: string(record.Kind),
		Platform:    string(record.Platform),
		Topic:       record.Topic,
		Tone:        string(record.Tone),
		Goal:        string(record.Goal),
		Caption:     record.Caption,
		Hashtags:    hashtags,
		CTA:         record.CTA,
		CreatedAt:   record.CreatedAt,
	}
}

// CreditsResponse reports the caller's remaining credits per pool.
type CreditsResponse struct {
	TextCredits  int    `json:"textCredits"`
	ImageCredits int    `json:"imageCredits"`
	VideoCredits int    `json:"videoCredits"`
	TotalCredits int    `json:"totalCredits"`
	Plan         string `json:"plan"`
}

func creditsResponseFromBalance(balance *domain.CreditBalance) CreditsResponse {
	return CreditsResponse{
		TextCredits:  balance.TextCredits,
		ImageCredits: balance.ImageCredits,
		VideoCredits: balance.VideoCredits,
		TotalCredits: balance.Total(),
		Plan:         balance.Plan,
	}
}

// DeductCreditsRequest is the body for an explicit credit deduction.
type DeductCreditsRequest struct {
	CreditType string `json:"creditType" validate:"required,oneof=text image video ugc"`
	Amount     int    `json:"amount"     validate:"omitempty,gt=0"`
}

// DeductCreditsResponse reports the outcome of a credit deduction.
type DeductCreditsResponse struct {
	Success          bool   `json:"success"`
	CreditsRemaining int    `json:"creditsRemaining"`
	Message          string `json:"message"`
}
