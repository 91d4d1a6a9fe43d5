package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cardledger/internal/bankfeed"
	"cardledger/internal/config"
	"cardledger/internal/database"
	"cardledger/internal/handlers"
	"cardledger/internal/middleware"
	"cardledger/internal/repositories"
	"cardledger/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Registers on the global prometheus registry, so exactly one instance
	// is created and shared between the services and the middleware.
	metrics := services.NewPrometheusMetrics()

	feedClient, err := bankfeed.NewPlaidClient(cfg.BankFeed)
	if err != nil {
		if !stderrors.Is(err, bankfeed.ErrNotConfigured) {
			logger.Error("Failed to initialize bank feed client", "error", err)
			os.Exit(1)
		}
		logger.Warn("Bank feed credentials not configured, linking and refresh are disabled")
		feedClient = bankfeed.NewDisabledClient()
	}

	accountRepo := repositories.NewAccountRepository(db)

	accountService := services.NewAccountService(accountRepo, metrics, logger)
	summaryService := services.NewSummaryService(accountRepo, metrics, logger)
	scheduleService := services.NewPaymentScheduleService(accountRepo, metrics, logger)
	bankFeedService := services.NewBankFeedService(feedClient, accountRepo, metrics, logger)

	accountHandler := handlers.NewAccountHandler(accountService)
	summaryHandler := handlers.NewSummaryHandler(summaryService, scheduleService)
	bankFeedHandler := handlers.NewBankFeedHandler(bankFeedService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(metrics)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestMetrics(metrics))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.UserIDHeader, middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.UserContext(middleware.UserContextConfig{
		DevUserID: cfg.Security.DevUserID,
	}))

	api.GET("/accounts", accountHandler.ListAccounts)
	api.POST("/accounts", accountHandler.CreateAccount)
	api.GET("/accounts/:accountId", accountHandler.GetAccount)
	api.PUT("/accounts/:accountId", accountHandler.UpdateAccount)
	api.DELETE("/accounts/:accountId", accountHandler.DeleteAccount)
	api.POST("/accounts/:accountId/payment", accountHandler.RecordPayment)
	api.PATCH("/accounts/reorder", accountHandler.ReorderAccounts)

	api.GET("/summary", summaryHandler.GetSummary)
	api.GET("/payments/upcoming", summaryHandler.GetUpcomingPayments)

	api.POST("/bankfeed/link-token", bankFeedHandler.CreateLinkToken)
	api.POST("/bankfeed/exchange", bankFeedHandler.ExchangeToken)
	api.POST("/bankfeed/refresh-all", bankFeedHandler.RefreshAll)
	api.POST("/accounts/:accountId/link", bankFeedHandler.LinkAccount)
	api.POST("/accounts/:accountId/refresh", bankFeedHandler.RefreshAccount)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(accountRepo)
		api.POST("/dev/seed-accounts", devHandler.SeedAccounts)
		api.DELETE("/dev/accounts", devHandler.ClearAccounts)
		logger.Info("Development endpoints enabled")
	}

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Failed to close database connection", "error", err)
		}
	}
}
