package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/craftlypost/craftly-api/internal/domain"
	"github.com/craftlypost/craftly-api/internal/generation"
	"github.com/craftlypost/craftly-api/internal/redact"
	"github.com/craftlypost/craftly-api/internal/store"
)

// ContentGenerator is the slice of the generation orchestrator the content
// service depends on. Tests substitute a deterministic implementation.
type ContentGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (*generation.Result, error)
}

// TextPostResponse is the externally-visible result of a text post
// generation.
type TextPostResponse struct {
	Success          bool                `json:"success"`
	Caption          string              `json:"caption"`
	Hashtags         []string            `json:"hashtags"`
	CTA              string              `json:"cta"`
	Stats            domain.ContentStats `json:"stats"`
	CreditsUsed      int                 `json:"creditsUsed"`
	CreditsRemaining int                 `json:"creditsRemaining"`
}

// ImagePostResponse adds the AI image generation prompt to the text post
// shape.
type ImagePostResponse struct {
	Success          bool                `json:"success"`
	Caption          string              `json:"caption"`
	Hashtags         []string            `json:"hashtags"`
	CTA              string              `json:"cta"`
	ImagePrompt      string              `json:"imagePrompt"`
	Stats            domain.ContentStats `json:"stats"`
	CreditsUsed      int                 `json:"creditsUsed"`
	CreditsRemaining int                 `json:"creditsRemaining"`
}

// VideoScriptResponse carries a hook distinct from the main script body.
type VideoScriptResponse struct {
	Success          bool                `json:"success"`
	Hook             string              `json:"hook"`
	Script           string              `json:"script"`
	CTA              string              `json:"cta"`
	Hashtags         []string            `json:"hashtags"`
	Stats            domain.ContentStats `json:"stats"`
	CreditsUsed      int                 `json:"creditsUsed"`
	CreditsRemaining int                 `json:"creditsRemaining"`
}

// UGCAdResponse carries creator-style ad copy plus marketing benchmarks
// from a fixed per-platform lookup.
type UGCAdResponse struct {
	Success           bool                `json:"success"`
	Hook              string              `json:"hook"`
	Script            string              `json:"script"`
	Caption           string              `json:"caption"`
	CTA               string              `json:"cta"`
	Hashtags          []string            `json:"hashtags"`
	EstimatedReach    string              `json:"estimatedReach"`
	RecommendedBudget string              `json:"recommendedBudget"`
	Stats             domain.ContentStats `json:"stats"`
	CreditsUsed       int                 `json:"creditsUsed"`
	CreditsRemaining  int                 `json:"creditsRemaining"`
}

// ContentService provides the content generation and history operations.
type ContentService interface {
	// GenerateTextPost generates a social media text post.
	GenerateTextPost(ctx context.Context, userID uuid.UUID, req domain.GenerationRequest) (*TextPostResponse, error)

	// GenerateImagePost generates a caption plus an AI image prompt.
	GenerateImagePost(ctx context.Context, userID uuid.UUID, req domain.GenerationRequest) (*ImagePostResponse, error)

	// GenerateVideoScript generates a video script with hook and CTA.
	GenerateVideoScript(ctx context.Context, userID uuid.UUID, req domain.GenerationRequest) (*VideoScriptResponse, error)

	// GenerateUGCAd generates UGC-style ad copy with marketing benchmarks.
	GenerateUGCAd(ctx context.Context, userID uuid.UUID, req domain.GenerationRequest) (*UGCAdResponse, error)

	// SaveContent persists a content record explicitly.
	SaveContent(ctx context.Context, record *domain.ContentRecord) error

	// History lists the user's most recent content records.
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ContentRecord, error)
}

// Marketing benchmarks for UGC ads, keyed by platform. These are static
// planning figures, not derived from the generated text.
type ugcBenchmark struct {
	reach  string
	budget string
}

var ugcBenchmarks = map[domain.Platform]ugcBenchmark{
	domain.PlatformInstagram: {reach: "15K-60K", budget: "$250-$500"},
	domain.PlatformTikTok:    {reach: "25K-100K", budget: "$200-$400"},
	domain.PlatformFacebook:  {reach: "20K-80K", budget: "$300-$600"},
	domain.PlatformYouTube:   {reach: "10K-45K", budget: "$400-$800"},
}

// Fallback for platforms without a dedicated benchmark row.
var defaultUGCBenchmark = ugcBenchmark{reach: "10K-40K", budget: "$150-$300"}

type contentServiceImpl struct {
	generator    ContentGenerator
	contentStore store.ContentStore
	creditStore  store.CreditStore
	logger       *slog.Logger
}

// NewContentService creates a ContentService over the given generator and
// stores. A nil logger falls back to slog.Default.
func NewContentService(
	generator ContentGenerator,
	contentStore store.ContentStore,
	creditStore store.CreditStore,
	logger *slog.Logger,
) (ContentService, error) {
	if generator == nil {
		return nil, newServiceError("init", "generator is required", errMissingDependency)
	}
	if contentStore == nil {
		return nil, newServiceError("init", "content store is required", errMissingDependency)
	}
	if creditStore == nil {
		return nil, newServiceError("init", "credit store is required", errMissingDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &contentServiceImpl{
		generator:    generator,
		contentStore: contentStore,
		creditStore:  creditStore,
		logger:       logger.With(slog.String("component", "content_service")),
	}, nil
}

// GenerateTextPost implements ContentService.GenerateTextPost.
func (s *contentServiceImpl) GenerateTextPost(
	ctx context.Context,
	userID uuid.UUID,
	req domain.GenerationRequest,
) (*TextPostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	system, user := textPostPrompts(req)
	result, err := s.generator.Generate(ctx, system, user)
	if err != nil {
		return nil, newServiceError("generate_text_post", "provider chain failed", err)
	}

	// The engagement score reflects what the model generated, so it is
	// computed before the toggles strip anything.
	stats := domain.ComputeStats(result.Caption, len(result.Hashtags))
	hashtags, cta := applyToggles(req, result)

	remaining := s.chargeCredits(ctx, userID, domain.ContentKindText)
	s.persist(ctx, userID, domain.ContentKindText, req, result.Caption, hashtags, cta)

	return &TextPostResponse{
		Success:          true,
		Caption:          result.Caption,
		Hashtags:         hashtags,
		CTA:              cta,
		Stats:            stats,
		CreditsUsed:      domain.CreditCostText,
		CreditsRemaining: remaining,
	}, nil
}

// GenerateImagePost implements ContentService.GenerateImagePost.
func (s *contentServiceImpl) GenerateImagePost(
	ctx context.Context,
	userID uuid.UUID,
	req domain.GenerationRequest,
) (*ImagePostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	system, user := imagePostPrompts(req)
	result, err := s.generator.Generate(ctx, system, user)
	if err != nil {
		return nil, newServiceError("generate_image_post", "provider chain failed", err)
	}

	stats := domain.ComputeStats(result.Caption, len(result.Hashtags))
	hashtags, cta := applyToggles(req, result)

	remaining := s.chargeCredits(ctx, userID, domain.ContentKindImage)
	s.persist(ctx, userID, domain.ContentKindImage, req, result.Caption, hashtags, cta)

	return &ImagePostResponse{
		Success:          true,
		Caption:          result.Caption,
		Hashtags:         hashtags,
		CTA:              cta,
		ImagePrompt:      result.ImagePrompt,
		Stats:            stats,
		CreditsUsed:      domain.CreditCostImage,
		CreditsRemaining: remaining,
	}, nil
}

// GenerateVideoScript implements ContentService.GenerateVideoScript.
func (s *contentServiceImpl) GenerateVideoScript(
	ctx context.Context,
	userID uuid.UUID,
	req domain.GenerationRequest,
) (*VideoScriptResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	system, user := videoScriptPrompts(req)
	result, err := s.generator.Generate(ctx, system, user)
	if err != nil {
		return nil, newServiceError("generate_video_script", "provider chain failed", err)
	}

	// The script body is the primary text field for video content.
	stats := domain.ComputeStats(result.Script, len(result.Hashtags))
	hashtags, cta := applyToggles(req, result)

	remaining := s.chargeCredits(ctx, userID, domain.ContentKindVideo)
	s.persist(ctx, userID, domain.ContentKindVideo, req, result.Script, hashtags, cta)

	return &VideoScriptResponse{
		Success:          true,
		Hook:             result.Hook,
		Script:           result.Script,
		CTA:              cta,
		Hashtags:         hashtags,
		Stats:            stats,
		CreditsUsed:      domain.CreditCostVideo,
		CreditsRemaining: remaining,
	}, nil
}

// GenerateUGCAd implements ContentService.GenerateUGCAd.
func (s *contentServiceImpl) GenerateUGCAd(
	ctx context.Context,
	userID uuid.UUID,
	req domain.GenerationRequest,
) (*UGCAdResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	system, user := ugcAdPrompts(req)
	result, err := s.generator.Generate(ctx, system, user)
	if err != nil {
		return nil, newServiceError("generate_ugc_ad", "provider chain failed", err)
	}

	stats := domain.ComputeStats(result.Script, len(result.Hashtags))
	hashtags, cta := applyToggles(req, result)

	benchmark, ok := ugcBenchmarks[req.Platform]
	if !ok {
		benchmark = defaultUGCBenchmark
	}

	remaining := s.chargeCredits(ctx, userID, domain.ContentKindUGC)
	s.persist(ctx, userID, domain.ContentKindUGC, req, result.Script, hashtags, cta)

	return &UGCAdResponse{
		Success:           true,
		Hook:              result.Hook,
		Script:            result.Script,
		Caption:           result.Caption,
		CTA:               cta,
		Hashtags:          hashtags,
		EstimatedReach:    benchmark.reach,
		RecommendedBudget: benchmark.budget,
		Stats:             stats,
		CreditsUsed:       domain.CreditCostUGC,
		CreditsRemaining:  remaining,
	}, nil
}

// SaveContent implements ContentService.SaveContent.
func (s *contentServiceImpl) SaveContent(ctx context.Context, record *domain.ContentRecord) error {
	if err := s.contentStore.Create(ctx, record); err != nil {
		return newServiceError("save_content", "failed to persist content", err)
	}
	return nil
}

// History implements ContentService.History.
func (s *contentServiceImpl) History(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.ContentRecord, error) {
	records, err := s.contentStore.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, newServiceError("history", "failed to list content", err)
	}
	return records, nil
}

// applyToggles replaces provider output the request opted out of. The
// hashtag slice is always non-nil so responses serialize as [] rather
// than null. includeEmojis is a prompt-time instruction only and is not
// post-filtered here.
func applyToggles(req domain.GenerationRequest, result *generation.Result) (hashtags []string, cta string) {
	hashtags = []string{}
	if req.IncludeHashtags && result.Hashtags != nil {
		hashtags = result.Hashtags
	}
	if req.IncludeCTA {
		cta = result.CTA
	}
	return hashtags, cta
}

// chargeCredits deducts the nominal cost for a generation and returns the
// remaining pool balance. Billing is advisory in this core: a failed
// deduction is logged and the generation still succeeds, with the best
// known balance reported.
func (s *contentServiceImpl) chargeCredits(ctx context.Context, userID uuid.UUID, kind domain.ContentKind) int {
	balance, err := s.creditStore.Deduct(ctx, userID, kind, domain.CreditCost(kind))
	if err == nil {
		return balance.PoolFor(kind)
	}

	s.logger.WarnContext(ctx, "credit deduction failed",
		slog.String("user_id", userID.String()),
		slog.String("content_kind", string(kind)),
		slog.String("error", redact.Error(err)))

	balance, err = s.creditStore.GetBalance(ctx, userID)
	if err != nil {
		return 0
	}
	return balance.PoolFor(kind)
}

// persist saves the generated content to history, best effort. A storage
// failure must not fail a generation that already succeeded.
func (s *contentServiceImpl) persist(
	ctx context.Context,
	userID uuid.UUID,
	kind domain.ContentKind,
	req domain.GenerationRequest,
	caption string,
	hashtags []string,
	cta string,
) {
	record, err := domain.NewContentRecord(
		userID, kind, req.Platform, req.Topic, req.Tone, req.Goal, caption, hashtags, cta)
	if err != nil {
		s.logger.WarnContext(ctx, "skipping history save, record invalid",
			slog.String("error", err.Error()))
		return
	}

	if err := s.contentStore.Create(ctx, record); err != nil {
		s.logger.WarnContext(ctx, "failed to save content to history",
			slog.String("content_id", record.ID.String()),
			slog.String("error", redact.Error(err)))
		return
	}

	s.logger.DebugContext(ctx, "content saved to history",
		slog.String("content_id", record.ID.String()),
		slog.String("content_kind", string(kind)))
}
