package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftlypost/craftly-api/internal/config"
	"github.com/craftlypost/craftly-api/internal/generation"
	"github.com/craftlypost/craftly-api/internal/platform/gemini"
	"github.com/craftlypost/craftly-api/internal/platform/groq"
	"github.com/craftlypost/craftly-api/internal/platform/openai"
	"github.com/craftlypost/craftly-api/internal/platform/postgres"
	"github.com/craftlypost/craftly-api/internal/service"
	"github.com/craftlypost/craftly-api/internal/service/auth"
	"github.com/craftlypost/craftly-api/internal/store"
)

// application holds the shared application dependencies to simplify
// wiring and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	contentStore store.ContentStore
	creditStore  store.CreditStore

	orchestrator     *generation.Orchestrator
	tokenValidator   auth.TokenValidator
	contentService   service.ContentService
	dashboardService service.DashboardService
}

// newApplication wires up all application dependencies from the loaded
// configuration. The database connection must already be established.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	contentStore := postgres.NewContentStore(db, logger)
	creditStore := postgres.NewCreditStore(db, logger)

	orchestrator, err := buildOrchestrator(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	tokenValidator, err := auth.NewTokenValidator(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create token validator: %w", err)
	}

	contentService, err := service.NewContentService(orchestrator, contentStore, creditStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	dashboardService, err := service.NewDashboardService(contentStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		contentStore:     contentStore,
		creditStore:      creditStore,
		orchestrator:     orchestrator,
		tokenValidator:   tokenValidator,
		contentService:   contentService,
		dashboardService: dashboardService,
	}, nil
}

// buildOrchestrator assembles the provider fallback chain from whatever
// API keys are configured, in fixed priority order. Missing keys skip the
// provider; a chain with zero providers is valid at startup and fails
// requests with a distinct error instead.
func buildOrchestrator(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*generation.Orchestrator, error) {
	var generators []generation.Generator

	if cfg.Providers.OpenAIAPIKey != "" {
		gen, err := openai.NewGenerator(logger, cfg.Providers)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai generator: %w", err)
		}
		generators = append(generators, gen)
	}

	if cfg.Providers.GeminiAPIKey != "" {
		gen, err := gemini.NewGenerator(ctx, logger, cfg.Providers)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini generator: %w", err)
		}
		generators = append(generators, gen)
	}

	if cfg.Providers.GroqAPIKey != "" {
		gen, err := groq.NewGenerator(logger, cfg.Providers)
		if err != nil {
			return nil, fmt.Errorf("failed to create groq generator: %w", err)
		}
		generators = append(generators, gen)
	}

	retryDelay := generation.DefaultRetryDelay
	if cfg.Providers.RetryDelaySeconds > 0 {
		retryDelay = time.Duration(cfg.Providers.RetryDelaySeconds) * time.Second
	}

	orchestrator := generation.NewOrchestrator(generators, retryDelay, logger)
	logger.Info("generation providers configured",
		"providers", orchestrator.Providers(),
		"retry_delay", retryDelay.String())

	return orchestrator, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
