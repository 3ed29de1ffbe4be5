package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/minhvu-dev/personal_finance_app/internal/adapters/openai"
	"github.com/minhvu-dev/personal_finance_app/internal/core/ports"
	"github.com/minhvu-dev/personal_finance_app/internal/core/services"
	"github.com/minhvu-dev/personal_finance_app/internal/handlers"
	"github.com/minhvu-dev/personal_finance_app/internal/middleware"
	"github.com/minhvu-dev/personal_finance_app/internal/platform/config"
	"github.com/minhvu-dev/personal_finance_app/internal/repositories/database/sqlite"
	"github.com/minhvu-dev/personal_finance_app/pkg/database"
)

// @title PFA Backend API
// @version 1.0
// @description Personal finance tracking backend: transactions, accounts, savings goals, reports and AI spending tips.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// --- Run Database Migrations ---
	logger.Info("Running database migrations...")
	if err := sqlite.RunMigrations(cfg.SQLitePath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied successfully.")

	db, err := database.NewSQLiteDB(context.Background(), cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseSQLiteDB(db)

	store, err := sqlite.NewStore(context.Background(), sqlite.NewKVStore(db), logger)
	if err != nil {
		logger.Error("Failed to load application state", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Insights stay available as fixed messages when no credential is set.
	var generator ports.TextGenerator
	if cfg.OpenAIAPIKey != "" {
		generator = openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	}

	serviceContainer := services.NewServiceContainer(services.ContainerDeps{
		TxnRepo:         store,
		AccountRepo:     store,
		GoalRepo:        store,
		Generator:       generator,
		InsightsTimeout: cfg.InsightsTimeout,
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the dashboard UI)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
