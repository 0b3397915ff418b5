package groq

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

// baseURL is Groq's OpenAI-compatible API endpoint.
const baseURL = "https://api.groq.com/openai/v1"

const (
	temperature = 0.8
	maxTokens   = 1024
)

// jsonOnlyInstruction is appended to the system prompt. The smaller models
// Groq serves need the output contract restated bluntly.
const jsonOnlyInstruction = "\n\nIMPORTANT: Respond ONLY with valid JSON. " +
	"No markdown, no code blocks, no extra text."

// Generator implements generation.Generator against Groq's
// OpenAI-compatible chat completions endpoint.
type Generator struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewGenerator creates a Groq-backed generator from the provider
// configuration. Returns generation.ErrInvalidConfig if the API key or
// model is missing.
func NewGenerator(logger *slog.Logger, cfg config.ProvidersConfig) (*Generator, error) {
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("%w: groq API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.GroqModel == "" {
		return nil, fmt.Errorf("%w: groq model cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		client: openai.NewClient(
			option.WithAPIKey(cfg.GroqAPIKey),
			option.WithBaseURL(baseURL),
		),
		model:  cfg.GroqModel,
		logger: logger.With(slog.String("component", "groq_generator")),
	}, nil
}

// Ensure Generator implements the generation.Generator interface.
var _ generation.Generator = (*Generator)(nil)

// Name identifies this provider in logs and orchestrator errors.
func (g *Generator) Name() string { return "groq" }

// Generate issues one chat completion call with the JSON-only instruction
// appended to the system prompt, then strips any markdown fence and parses
// the result.
func (g *Generator) Generate(ctx context.Context, systemPrompt, userPrompt string) (*generation.Result, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt + jsonOnlyInstruction),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("groq completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in groq response", generation.ErrInvalidResponse)
	}

	g.logger.DebugContext(ctx, "groq completion succeeded",
		slog.String("model", g.model),
		slog.Int("response_length", len(resp.Choices[0].Message.Content)))

	return generation.ParseResult(resp.Choices[0].Message.Content)
}
