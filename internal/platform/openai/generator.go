package openai

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/craftlypost/craftly-api/internal/config"
	"github.com/craftlypost/craftly-api/internal/generation"
)

// Generation parameters shared by every call.
const (
	temperature = 0.8
	maxTokens   = 1000
)

// Generator implements generation.Generator using the OpenAI chat
// completions API. It is stateless across calls apart from the held
// credentials and safe for concurrent use.
type Generator struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewGenerator creates an OpenAI-backed generator from the provider
// configuration. Returns generation.ErrInvalidConfig if the API key or
// model is missing.
func NewGenerator(logger *slog.Logger, cfg config.ProvidersConfig) (*Generator, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.OpenAIModel == "" {
		return nil, fmt.Errorf("%w: openai model cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		client: openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey)),
		model:  cfg.OpenAIModel,
		logger: logger.With(slog.String("component", "openai_generator")),
	}, nil
}

// Ensure Generator implements the generation.Generator interface.
var _ generation.Generator = (*Generator)(nil)

// Name identifies this provider in logs and orchestrator errors.
func (g *Generator) Name() string { return "openai" }

// Generate issues one chat completion call with JSON output mode and
// parses the response into a normalized result.
func (g *Generator) Generate(ctx context.Context, systemPrompt, userPrompt string) (*generation.Result, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in openai response", generation.ErrInvalidResponse)
	}

	g.logger.DebugContext(ctx, "openai completion succeeded",
		slog.String("model", g.model),
		slog.Int("response_length", len(resp.Choices[0].Message.Content)))

	return generation.ParseResult(resp.Choices[0].Message.Content)
}
