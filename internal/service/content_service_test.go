package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftlypost/craftly-api/internal/domain"
	"github.com/craftlypost/craftly-api/internal/generation"
)

type stubGenerator struct {
	result     *generation.Result
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (g *stubGenerator) Generate(_ context.Context, systemPrompt, userPrompt string) (*generation.Result, error) {
	g.calls++
	g.lastSystem = systemPrompt
	g.lastUser = userPrompt
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

type stubContentStore struct {
	created        []*domain.ContentRecord
	createErr      error
	recent         []*domain.ContentRecord
	listErr        error
	kindCounts     map[domain.ContentKind]int
	platformCounts map[domain.Platform]int
	countErr       error
}

func (s *stubContentStore) Create(_ context.Context, record *domain.ContentRecord) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, record)
	return nil
}

func (s *stubContentStore) ListRecent(_ context.Context, _ uuid.UUID, _ int) ([]*domain.ContentRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.recent, nil
}

func (s *stubContentStore) CountByKind(_ context.Context, _ uuid.UUID) (map[domain.ContentKind]int, error) {
	if s.countErr != nil {
		return nil, s.countErr
	}
	return s.kindCounts, nil
}

func (s *stubContentStore) CountByPlatform(_ context.Context, _ uuid.UUID) (map[domain.Platform]int, error) {
	if s.countErr != nil {
		return nil, s.countErr
	}
	return s.platformCounts, nil
}

type stubCreditStore struct {
	balance       *domain.CreditBalance
	deductErr     error
	getErr        error
	deductedKind  domain.ContentKind
	deductedTotal int
	deductCalls   int
}

func (s *stubCreditStore) GetBalance(_ context.Context, _ uuid.UUID) (*domain.CreditBalance, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.balance, nil
}

func (s *stubCreditStore) Deduct(_ context.Context, _ uuid.UUID, kind domain.ContentKind, amount int) (*domain.CreditBalance, error) {
	s.deductCalls++
	s.deductedKind = kind
	s.deductedTotal += amount
	if s.deductErr != nil {
		return nil, s.deductErr
	}
	return s.balance, nil
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func validRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		Topic:           "Launching our new running shoe line",
		Platform:        domain.PlatformInstagram,
		Tone:            domain.ToneCasual,
		Goal:            domain.GoalEngagement,
		IncludeHashtags: true,
		IncludeCTA:      true,
		IncludeEmojis:   true,
	}
}

func newTestService(t *testing.T, gen *stubGenerator, content *stubContentStore, credit *stubCreditStore) ContentService {
	t.Helper()
	svc, err := NewContentService(gen, content, credit, testLogger())
	require.NoError(t, err)
	return svc
}

func TestNewContentService_RequiresDependencies(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{}
	content := &stubContentStore{}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}

	_, err := NewContentService(nil, content, credit, testLogger())
	assert.ErrorIs(t, err, errMissingDependency)

	_, err = NewContentService(gen, nil, credit, testLogger())
	assert.ErrorIs(t, err, errMissingDependency)

	_, err = NewContentService(gen, content, nil, testLogger())
	assert.ErrorIs(t, err, errMissingDependency)

	_, err = NewContentService(gen, content, credit, nil)
	assert.NoError(t, err)
}

func TestGenerateTextPost_Success(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{
		Caption:  "Run faster, feel lighter.",
		Hashtags: []string{"#run", "#shoes"},
		CTA:      "Shop now",
	}}
	content := &stubContentStore{}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, content, credit)

	resp, err := svc.GenerateTextPost(context.Background(), uuid.New(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Run faster, feel lighter.", resp.Caption)
	assert.Equal(t, []string{"#run", "#shoes"}, resp.Hashtags)
	assert.Equal(t, "Shop now", resp.CTA)
	assert.Equal(t, 25, resp.Stats.Characters)
	assert.Equal(t, 4, resp.Stats.Words)
	assert.Equal(t, "1 sec", resp.Stats.ReadTime)
	assert.Equal(t, domain.EngagementMedium, resp.Stats.EngagementScore)
	assert.Equal(t, domain.CreditCostText, resp.CreditsUsed)
	assert.Equal(t, domain.DefaultTextCredits, resp.CreditsRemaining)
}

func TestGenerateTextPost_InvalidRequestSkipsGenerator(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{Caption: "x"}}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	req := validRequest()
	req.Topic = "ab"
	_, err := svc.GenerateTextPost(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, domain.ErrTopicLength)
	assert.Zero(t, gen.calls)
	assert.Zero(t, credit.deductCalls)
}

func TestGenerateTextPost_ProviderFailureWrapped(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{err: generation.ErrAllProvidersFailed}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	_, err := svc.GenerateTextPost(context.Background(), uuid.New(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrAllProvidersFailed)
	var svcErr *ContentServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "generate_text_post", svcErr.Operation)
	assert.Zero(t, credit.deductCalls)
}

func TestGenerateTextPost_EngagementScoredBeforeHashtagToggle(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{
		Caption:  "Big launch today",
		Hashtags: []string{"#a", "#b", "#c", "#d", "#e"},
		CTA:      "Shop now",
	}}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	req := validRequest()
	req.IncludeHashtags = false
	resp, err := svc.GenerateTextPost(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.EngagementHigh, resp.Stats.EngagementScore)
	assert.NotNil(t, resp.Hashtags)
	assert.Empty(t, resp.Hashtags)
}

func TestGenerateTextPost_CTAToggleStripsCTA(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{
		Caption:  "Big launch today",
		Hashtags: []string{"#a"},
		CTA:      "Shop now",
	}}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	req := validRequest()
	req.IncludeCTA = false
	resp, err := svc.GenerateTextPost(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	assert.Empty(t, resp.CTA)
	assert.Equal(t, []string{"#a"}, resp.Hashtags)
}

func TestGenerateTextPost_NilProviderHashtagsBecomeEmptySlice(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{Caption: "Just words"}}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	resp, err := svc.GenerateTextPost(context.Background(), uuid.New(), validRequest())
	require.NoError(t, err)

	assert.NotNil(t, resp.Hashtags)
	assert.Empty(t, resp.Hashtags)
}

func TestGenerateTextPost_PersistsHistoryBestEffort(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{
		Caption:  "Big launch today",
		Hashtags: []string{"#a"},
		CTA:      "Shop now",
	}}
	content := &stubContentStore{}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, content, credit)

	userID := uuid.New()
	_, err := svc.GenerateTextPost(context.Background(), userID, validRequest())
	require.NoError(t, err)

	require.Len(t, content.created, 1)
	record := content.created[0]
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, domain.ContentKindText, record.Kind)
	assert.Equal(t, "Big launch today", record.Caption)
}

func TestGenerateTextPost_StorageFailureDoesNotFailGeneration(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{Caption: "Big launch today"}}
	content := &stubContentStore{createErr: errors.New("db down")}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, content, credit)

	resp, err := svc.GenerateTextPost(context.Background(), uuid.New(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestGenerateTextPost_DeductFailureFallsBackToBalance(t *testing.T) {
	t.Parallel()

	balance := domain.NewDefaultCreditBalance(uuid.New())
	balance.TextCredits = 7
	gen := &stubGenerator{result: &generation.Result{Caption: "Big launch today"}}
	credit := &stubCreditStore{balance: balance, deductErr: domain.ErrInsufficientCredits}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	resp, err := svc.GenerateTextPost(context.Background(), uuid.New(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 7, resp.CreditsRemaining)
	assert.Equal(t, 1, credit.deductCalls)
}

func TestGenerateImagePost_IncludesImagePrompt(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{
		Caption:     "Fresh kicks",
		ImagePrompt: "Studio photo of running shoes on concrete",
		Hashtags:    []string{"#shoes"},
		CTA:         "Shop now",
	}}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	resp, err := svc.GenerateImagePost(context.Background(), uuid.New(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Studio photo of running shoes on concrete", resp.ImagePrompt)
	assert.Equal(t, domain.CreditCostImage, resp.CreditsUsed)
	assert.Equal(t, domain.ContentKindImage, credit.deductedKind)
}

func TestGenerateVideoScript_StatsFromScript(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{
		Hook:     "Stop scrolling",
		Script:   "one two three four five six seven eight nine",
		Hashtags: []string{"#video"},
		CTA:      "Follow for more",
	}}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	resp, err := svc.GenerateVideoScript(context.Background(), uuid.New(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Stop scrolling", resp.Hook)
	assert.Equal(t, 9, resp.Stats.Words)
	assert.Equal(t, "3 sec", resp.Stats.ReadTime)
	assert.Equal(t, domain.CreditCostVideo, resp.CreditsUsed)
	assert.Equal(t, domain.ContentKindVideo, credit.deductedKind)
}

func TestGenerateUGCAd_BenchmarksAndImageCreditPool(t *testing.T) {
	t.Parallel()

	balance := domain.NewDefaultCreditBalance(uuid.New())
	gen := &stubGenerator{result: &generation.Result{
		Hook:     "I was skeptical at first",
		Script:   "Honest take after two weeks of daily use",
		Caption:  "Real results",
		Hashtags: []string{"#ad"},
		CTA:      "Try it yourself",
	}}
	credit := &stubCreditStore{balance: balance}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	req := validRequest()
	req.Platform = domain.PlatformTikTok
	resp, err := svc.GenerateUGCAd(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	assert.Equal(t, "25K-100K", resp.EstimatedReach)
	assert.Equal(t, "$200-$400", resp.RecommendedBudget)
	assert.Equal(t, domain.CreditCostUGC, resp.CreditsUsed)
	assert.Equal(t, domain.ContentKindUGC, credit.deductedKind)
	assert.Equal(t, balance.ImageCredits, resp.CreditsRemaining)
}

func TestGenerateUGCAd_UnknownPlatformUsesDefaultBenchmark(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{result: &generation.Result{Script: "Quick take"}}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, gen, &stubContentStore{}, credit)

	req := validRequest()
	req.Platform = domain.PlatformTwitter
	resp, err := svc.GenerateUGCAd(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	assert.Equal(t, defaultUGCBenchmark.reach, resp.EstimatedReach)
	assert.Equal(t, defaultUGCBenchmark.budget, resp.RecommendedBudget)
}

func TestHistory_ReturnsStoreRecords(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	record, err := domain.NewContentRecord(
		userID, domain.ContentKindText, domain.PlatformInstagram,
		"topic text", domain.ToneCasual, domain.GoalEngagement,
		"caption", []string{"#x"}, "cta")
	require.NoError(t, err)

	content := &stubContentStore{recent: []*domain.ContentRecord{record}}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(userID)}
	svc := newTestService(t, &stubGenerator{}, content, credit)

	records, err := svc.History(context.Background(), userID, 50)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}

func TestSaveContent_WrapsStoreError(t *testing.T) {
	t.Parallel()

	record, err := domain.NewContentRecord(
		uuid.New(), domain.ContentKindText, domain.PlatformInstagram,
		"topic text", domain.ToneCasual, domain.GoalEngagement,
		"caption", nil, "")
	require.NoError(t, err)

	content := &stubContentStore{createErr: errors.New("db down")}
	credit := &stubCreditStore{balance: domain.NewDefaultCreditBalance(uuid.New())}
	svc := newTestService(t, &stubGenerator{}, content, credit)

	err = svc.SaveContent(context.Background(), record)
	require.Error(t, err)
	var svcErr *ContentServiceError
	assert.ErrorAs(t, err, &svcErr)
}
