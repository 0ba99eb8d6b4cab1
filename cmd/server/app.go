package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/prepwise-api/internal/config"
	"github.com/phrazzld/prepwise-api/internal/domain/prediction"
	"github.com/phrazzld/prepwise-api/internal/platform/postgres"
	"github.com/phrazzld/prepwise-api/internal/service"
	"github.com/phrazzld/prepwise-api/internal/service/auth"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	studyStore   store.StudyRecordStore
	testStore    store.TestRecordStore
	cycleStore   store.CycleRecordStore
	sessionStore store.SessionRecordStore

	// Service interfaces
	jwtService        auth.JWTService
	passwordVerifier  auth.PasswordVerifier
	userService       service.UserService
	historyService    service.HistoryService
	predictionService service.PredictionService
	scheduleService   service.ScheduleService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password verifier
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger, cfg.Auth.BCryptCost)
	app.studyStore = postgres.NewPostgresStudyRecordStore(db, logger)
	app.testStore = postgres.NewPostgresTestRecordStore(db, logger)
	app.cycleStore = postgres.NewPostgresCycleRecordStore(db, logger)
	app.sessionStore = postgres.NewPostgresSessionRecordStore(db, logger)

	// Initialize services
	app.userService = service.NewUserService(app.userStore, db, logger)
	app.historyService = service.NewHistoryService(
		app.studyStore,
		app.testStore,
		app.cycleStore,
		app.sessionStore,
		db,
		logger,
	)
	app.predictionService = service.NewPredictionService(
		app.studyStore,
		app.testStore,
		app.cycleStore,
		app.sessionStore,
		prediction.NewDefaultService(),
		time.Time{}, // fall back to the default exam date
		logger,
	)
	app.scheduleService = service.NewScheduleService(app.cycleStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
