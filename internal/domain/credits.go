package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Nominal credit cost per content kind. This core reports costs; the
// billing layer decides what to do with them.
const (
	CreditCostText  = 1
	CreditCostImage = 2
	CreditCostVideo = 3
	CreditCostUGC   = 2
)

// Default free-plan allowances granted to new users.
const (
	DefaultTextCredits  = 150
	DefaultImageCredits = 25
	DefaultVideoCredits = 10
)

// ErrInsufficientCredits is returned when a deduction would take a credit
// pool below zero.
var ErrInsufficientCredits = errors.New("insufficient credits")

// CreditCost returns the nominal cost of generating one item of the given
// kind. Unknown kinds cost zero.
func CreditCost(kind ContentKind) int {
	switch kind {
	case ContentKindText:
		return CreditCostText
	case ContentKindImage:
		return CreditCostImage
	case ContentKindVideo:
		return CreditCostVideo
	case ContentKindUGC:
		return CreditCostUGC
	}
	return 0
}

// CreditBalance tracks a user's remaining generation credits per pool.
type CreditBalance struct {
	UserID       uuid.UUID `json:"user_id"`
	TextCredits  int       `json:"text_credits"`
	ImageCredits int       `json:"image_credits"`
	VideoCredits int       `json:"video_credits"`
	Plan         string    `json:"plan"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewDefaultCreditBalance returns the free-plan starting balance for a user.
func NewDefaultCreditBalance(userID uuid.UUID) *CreditBalance {
	return &CreditBalance{
		UserID:       userID,
		TextCredits:  DefaultTextCredits,
		ImageCredits: DefaultImageCredits,
		VideoCredits: DefaultVideoCredits,
		Plan:         "free",
		UpdatedAt:    time.Now().UTC(),
	}
}

// Total returns the sum of all credit pools.
func (b *CreditBalance) Total() int {
	return b.TextCredits + b.ImageCredits + b.VideoCredits
}

// PoolFor returns the remaining credits in the pool that pays for the
// given content kind. UGC ads draw from the image pool, matching how the
// billing plan groups visual content.
func (b *CreditBalance) PoolFor(kind ContentKind) int {
	switch kind {
	case ContentKindText:
		return b.TextCredits
	case ContentKindImage, ContentKindUGC:
		return b.ImageCredits
	case ContentKindVideo:
		return b.VideoCredits
	}
	return 0
}
