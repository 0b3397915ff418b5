package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/craftlypost/craftly-api/internal/config"
	"github.com/craftlypost/craftly-api/internal/generation"
)

const (
	temperature     = 0.8
	maxOutputTokens = 1000
)

// Generator implements generation.Generator using Google's Gemini API.
type Generator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGenerator creates a Gemini-backed generator from the provider
// configuration. Returns generation.ErrInvalidConfig if the API key or
// model is missing, or if the client cannot be constructed.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.ProvidersConfig) (*Generator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.GeminiModel == "" {
		return nil, fmt.Errorf("%w: gemini model cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		client: client,
		model:  cfg.GeminiModel,
		logger: logger.With(slog.String("component", "gemini_generator")),
	}, nil
}

// Ensure Generator implements the generation.Generator interface.
var _ generation.Generator = (*Generator)(nil)

// Name identifies this provider in logs and orchestrator errors.
func (g *Generator) Name() string { return "gemini" }

// Generate issues one generation call with JSON output requested via the
// response MIME type. Gemini takes a single prompt, so the system and user
// prompts are concatenated.
func (g *Generator) Generate(ctx context.Context, systemPrompt, userPrompt string) (*generation.Result, error) {
	prompt := systemPrompt + "\n\n" + userPrompt

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](temperature),
			MaxOutputTokens:  maxOutputTokens,
			ResponseMIMEType: "application/json",
		})
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates in gemini response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: gemini safety filter", generation.ErrContentBlocked)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty content in gemini response", generation.ErrInvalidResponse)
	}

	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	g.logger.DebugContext(ctx, "gemini generation succeeded",
		slog.String("model", g.model),
		slog.Int("response_length", len(text)))

	return generation.ParseResult(text)
}
