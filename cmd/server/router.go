package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/prepwise-api/internal/api"
	apiMiddleware "github.com/phrazzld/prepwise-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.passwordVerifier)
	historyHandler := api.NewHistoryHandler(app.historyService)
	predictionHandler := api.NewPredictionHandler(app.predictionService)
	scheduleHandler := api.NewScheduleHandler(app.scheduleService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// History ingestion endpoints
			r.Post("/study-records", historyHandler.CreateStudyRecord)
			r.Get("/study-records", historyHandler.ListStudyRecords)
			r.Post("/test-records", historyHandler.CreateTestRecord)
			r.Get("/test-records", historyHandler.ListTestRecords)
			r.Post("/cycle-records", historyHandler.CreateCycleRecord)
			r.Get("/cycle-records", historyHandler.ListCycleRecords)
			r.Post("/sessions", historyHandler.CreateSessionRecord)
			r.Get("/sessions", historyHandler.ListSessionRecords)

			// Prediction endpoint
			r.Get("/predictions/rank", predictionHandler.GetRankPrediction)

			// Schedule endpoints
			r.Get("/schedule/today", scheduleHandler.GetTodaySchedule)
			r.Get("/schedule/forecast", scheduleHandler.GetForecast)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
