package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/joho/godotenv"

	"github.com/connect2study/server/internal/config"
	"github.com/connect2study/server/internal/database"
	"github.com/connect2study/server/internal/handlers"
	"github.com/connect2study/server/internal/logging"
	"github.com/connect2study/server/internal/middleware"
	"github.com/connect2study/server/internal/payments"
	"github.com/connect2study/server/internal/routes"
	"github.com/connect2study/server/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	// Local development convenience; env vars win in production.
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// DB log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cleanupDone)

	// Services
	gateway := payments.NewClient(cfg.PaymentAPIURL, cfg.PaymentSecretKey, cfg.PaymentCurrency)
	tokenService := services.NewTokenService(cfg)
	userService := services.NewUserService(db)
	sessionService := services.NewSessionService(db)
	bookingService := services.NewBookingService(db)
	noteService := services.NewNoteService(db)
	materialService := services.NewMaterialService(db)
	reviewService := services.NewReviewService(db)
	paymentService := services.NewPaymentService(db, gateway, cfg.PaymentCurrency)
	announcementService := services.NewAnnouncementService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(tokenService, userService)
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	noteHandler := handlers.NewNoteHandler(noteService)
	materialHandler := handlers.NewMaterialHandler(materialService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, db,
		authHandler, healthHandler, userHandler, sessionHandler,
		bookingHandler, noteHandler, materialHandler, reviewHandler,
		paymentHandler, announcementHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Never leak 5xx detail to clients.
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "route", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
