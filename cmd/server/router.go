package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/craftlypost/craftly-api/internal/api"
	apiMiddleware "github.com/craftlypost/craftly-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and
// middleware registered.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	contentHandler := api.NewContentHandler(app.contentService)
	creditsHandler := api.NewCreditsHandler(app.creditStore)
	dashboardHandler := api.NewDashboardHandler(app.dashboardService)
	healthHandler := api.NewHealthHandler(app.orchestrator.Providers(), app.db)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenValidator)

	// Public endpoints
	r.Get("/health", healthHandler.Check)

	// Protected API
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/content", func(r chi.Router) {
			r.Post("/text", contentHandler.GenerateTextPost)
			r.Post("/image", contentHandler.GenerateImagePost)
			r.Post("/video", contentHandler.GenerateVideoScript)
			r.Post("/ugc", contentHandler.GenerateUGCAd)
			r.Post("/history", contentHandler.SaveToHistory)
			r.Get("/history", contentHandler.GetHistory)
		})

		r.Route("/credits", func(r chi.Router) {
			r.Get("/", creditsHandler.GetCredits)
			r.Post("/deduct", creditsHandler.DeductCredits)
		})

		r.Get("/dashboard/stats", dashboardHandler.GetStats)
	})

	return r
}
