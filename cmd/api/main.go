// Package main is the entry point for the LedgerKeep API server.
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

	"github.com/ledgerkeep/backend/config"
	"github.com/ledgerkeep/backend/internal/application/adapter"
	"github.com/ledgerkeep/backend/internal/infra/db"
	"github.com/ledgerkeep/backend/internal/infra/dependency"
	"github.com/ledgerkeep/backend/internal/infra/kv"
	"github.com/ledgerkeep/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting LedgerKeep API",
		"environment", cfg.Server.Environment,
		"backend", cfg.Storage.Backend,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	ledger, healthChecker, closeStorage := openStorage(cfg)
	defer closeStorage()

	injector := dependency.NewInjector(cfg, ledger, healthChecker)
	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// openStorage connects the configured backend and returns the ledger
// repository, its health checker and a close function.
func openStorage(cfg *config.Config) (adapter.LedgerRepository, func() bool, func()) {
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		store, err := kv.NewRedisConnection(&cfg.Redis)
		if err != nil {
			slog.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		ledger := persistence.NewKVLedgerRepository(store.Client())
		return ledger, store.HealthCheck, func() {
			if err := store.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}

	case config.StorageBackendPostgres:
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		if err := database.AutoMigrate(persistence.Models()...); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		ledger := persistence.NewSQLLedgerRepository(database.DB())
		return ledger, database.HealthCheck, func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}

	default:
		slog.Error("Unknown storage backend", "backend", cfg.Storage.Backend)
		os.Exit(1)
		return nil, nil, nil
	}
}
