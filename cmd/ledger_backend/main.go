package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/budget_ledger/internal/adapters/messaging/amqp"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/core/services"
	"github.com/SscSPs/budget_ledger/internal/handlers"
	"github.com/SscSPs/budget_ledger/internal/middleware"
	"github.com/SscSPs/budget_ledger/internal/platform/config"
	"github.com/SscSPs/budget_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/budget_ledger/internal/validation"
	"github.com/SscSPs/budget_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Budget Ledger API
// @version 1.0
// @description Multi-tenant monthly budgeting ledger with reimbursement workflow.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	validation.Setup()

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	applied, err := database.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	notifier, closeNotifier := newInvitationNotifier(cfg, logger)
	defer closeNotifier()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, notifier)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Global middleware (logging, recovery, cors, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.RateLimit(rateLimiter),
	)

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

// newInvitationNotifier connects to the broker when AMQP_URL is set and falls
// back to logging invitations otherwise.
func newInvitationNotifier(cfg *config.Config, logger *slog.Logger) (portssvc.InvitationNotifier, func()) {
	if cfg.AMQPURL == "" {
		return amqp.LogNotifier{}, func() {}
	}
	notifier, err := amqp.NewNotifier(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPInviteRoutingKey)
	if err != nil {
		logger.Warn("AMQP unavailable, invitations will only be logged", slog.String("error", err.Error()))
		return amqp.LogNotifier{}, func() {}
	}
	logger.Info("Invitation notifier connected", slog.String("exchange", cfg.AMQPExchange))
	return notifier, func() {
		if err := notifier.Close(); err != nil {
			logger.Error("Error closing AMQP connection", slog.String("error", err.Error()))
		}
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
