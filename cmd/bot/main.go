package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartedybot/internal/completion"
	"smartedybot/internal/config"
	"smartedybot/internal/document"
	"smartedybot/internal/handler"
	"smartedybot/internal/health"
	"smartedybot/internal/locale"
	"smartedybot/internal/middleware"
	"smartedybot/internal/payment"
	"smartedybot/internal/repository"
	"smartedybot/internal/repository/postgres"
	"smartedybot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting SmartEdyBot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("model", cfg.OpenAI.Model),
		zap.Strings("languages", locale.Tags()),
		zap.Bool("journal", cfg.Database.Enabled()),
	)
	if cfg.Stripe.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is not set, checkout will fail")
	}

	// Journal storage is optional
	var (
		userRepo     repository.UserRepository
		checkoutRepo repository.CheckoutRepository
	)
	if cfg.Database.Enabled() {
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connection established")

		if err := runMigrations(db, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		userRepo = postgres.NewUserRepo(db)
		checkoutRepo = postgres.NewCheckoutRepo(db)
	}

	// Initialize services
	checkoutService := service.NewCheckoutService(payment.NewStripeProvider(cfg.Stripe), checkoutRepo, logger)
	completionService := service.NewCompletionService(completion.NewOpenAICompleter(cfg.OpenAI), logger)
	documentService := service.NewDocumentService(document.NewPDFRenderer(cfg.Document), cfg.Document.Dir, logger)
	userService := service.NewUserService(userRepo)

	if removed, err := documentService.SweepStale(); err != nil {
		logger.Warn("Failed to sweep stale documents", zap.Error(err))
	} else if removed > 0 {
		logger.Info("Removed stale documents", zap.Int("count", removed))
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:       cfg.BotToken,
		Poller:      &tele.LongPoller{Timeout: 10 * time.Second},
		Synchronous: true,
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("user_id", c.Sender().ID))
			}
			logger.Error("Handler failed", fields...)
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Middleware must be installed before handlers are registered
	bot.Use(middleware.Recover(logger), middleware.TrackUser(userService, logger))

	h := handler.NewHandler(bot, checkoutService, completionService, documentService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Keepalive port for the hosting platform
	healthServer := health.NewServer(cfg.Addr(), logger)
	go healthServer.Run()

	if checkoutRepo != nil {
		go runCleanupJob(ctx, service.NewJournalService(checkoutRepo, logger), logger)
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Failed to stop health endpoint", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case err == migrate.ErrNoChange:
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runCleanupJob runs periodic cleanup of the checkout journal
func runCleanupJob(ctx context.Context, journal *service.JournalService, logger *zap.Logger) {
	// Run cleanup once at startup
	if err := journal.CleanupOldData(); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	// Then run every 24 hours
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if err := journal.CleanupOldData(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
