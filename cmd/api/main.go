// Package main is the entry point for the PyME Finance API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pyme-finance/backend/config"
	"github.com/pyme-finance/backend/internal/application/usecase/reminder"
	"github.com/pyme-finance/backend/internal/infra/db"
	"github.com/pyme-finance/backend/internal/infra/dependency"
	"github.com/pyme-finance/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting PyME Finance API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.CompanyModel{},
		&model.TransactionModel{},
		&model.CheckModel{},
		&model.CreditModel{},
		&model.SupplierModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis connection (rate limiting)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Wire dependencies
	injector, err := dependency.NewInjector(cfg, database.DB(), redisClient)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(workerCtx)
	}
	if cfg.Reminder.Enabled {
		go runReminderSweep(workerCtx, injector.ReminderUC, cfg.Reminder)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// runReminderSweep runs the due-check reminder sweep on its interval until
// the context is cancelled. The first sweep runs immediately on startup.
func runReminderSweep(ctx context.Context, uc *reminder.EnqueueCheckRemindersUseCase, cfg config.ReminderConfig) {
	slog.Info("Reminder sweep started",
		"interval", cfg.SweepInterval,
		"window_days", cfg.WindowDays,
	)

	sweep := func() {
		output, err := uc.Execute(ctx, reminder.EnqueueCheckRemindersInput{
			Now:        time.Now().UTC(),
			WindowDays: cfg.WindowDays,
		})
		if err != nil {
			slog.Error("Reminder sweep failed", "error", err)
			return
		}
		slog.Info("Reminder sweep completed",
			"companies", output.CompaniesNotified,
			"emails_queued", output.EmailsQueued,
		)
	}

	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	sweep()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder sweep shutting down")
			return
		case <-ticker.C:
			sweep()
		}
	}
}
