package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/events"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/identity"
	"finance-dashboard/internal/middleware"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	log.Info().Msg("Connected to database")

	verifier, err := identity.NewFromConfig(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create token verifier")
	}

	var publisher events.Publisher = events.NoopPublisher{}
	var healthOpts []handlers.HealthOption
	if cfg.EventsEnabled() {
		amqpPublisher, err := events.NewAMQPPublisher(
			cfg.Events.AMQPURL,
			cfg.Events.Exchange,
			cfg.Events.Queue,
			cfg.Events.PublishTimeout,
			log.Logger.With().Str("component", "events").Logger(),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to message broker")
		}
		breaker := events.NewBreakerPublisher(
			amqpPublisher,
			events.DefaultBreakerConfig(),
			log.Logger.With().Str("component", "events").Logger(),
		)
		publisher = breaker
		healthOpts = append(healthOpts, handlers.WithDependency("events", breaker.Ready))
		log.Info().Str("exchange", cfg.Events.Exchange).Msg("Publishing transaction events")
	}

	// Initialize repositories
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	historyRepo := repositories.NewHistoryRepository(db.DB)
	settingsRepo := repositories.NewUserSettingsRepository(db.DB)

	// Initialize services
	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	serviceLogger := log.Logger.With().Str("layer", "service").Logger()

	transactionService := services.NewTransactionService(
		transactionRepo, categoryRepo, settingsRepo, publisher, metrics, serviceLogger, cfg.Stats.DefaultCurrency,
	)
	historyService := services.NewHistoryService(historyRepo, metrics, serviceLogger)
	statsService := services.NewStatsService(transactionRepo, metrics, serviceLogger)
	categoryService := services.NewCategoryService(categoryRepo, serviceLogger)
	settingsService := services.NewUserSettingsService(settingsRepo, cfg.Stats.DefaultCurrency, serviceLogger)

	// Initialize handlers
	handlerLogger := log.Logger.With().Str("layer", "handler").Logger()
	h := handlers.Handlers{
		Health:       handlers.NewHealthCheckHandler(db, healthOpts...),
		History:      handlers.NewHistoryHandler(historyService, handlerLogger),
		Stats:        handlers.NewStatsHandler(statsService, handlerLogger),
		Transactions: handlers.NewTransactionHandler(transactionService, handlerLogger),
		Categories:   handlers.NewCategoryHandler(categoryService, handlerLogger),
		Settings:     handlers.NewSettingsHandler(settingsService, handlerLogger),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.NewValidator(validation.WithMaxDateRangeDays(cfg.Stats.MaxDateRangeDays))
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	rateLimiter := middleware.NewRateLimiter(cfg.Security)
	go rateLimiter.RunCleanup(ctx)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log.Logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
		MaxAge:       86400,
	}))
	e.Use(rateLimiter.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handlers.RegisterRoutes(e, middleware.RequireAuth(verifier), h)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Server.Environment).Msg("Starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := publisher.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close event publisher")
	}
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}

	log.Info().Msg("Server exited")
}
