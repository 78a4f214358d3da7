package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/swipe-tasks/internal/config"
	"github.com/BuzzLyutic/swipe-tasks/internal/gesture"
	"github.com/BuzzLyutic/swipe-tasks/internal/handler"
	"github.com/BuzzLyutic/swipe-tasks/internal/repo"
	"github.com/BuzzLyutic/swipe-tasks/internal/service"
	"github.com/BuzzLyutic/swipe-tasks/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	backend, closeBackend, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open storage backend", zap.String("backend", cfg.Backend), zap.Error(err))
	}
	defer closeBackend()
	logger.Info("Storage backend ready", zap.String("backend", cfg.Backend))

	taskStore := store.New(backend, logger, store.WithKey(cfg.StorageKey))
	taskStore.LoadInitial(ctx)

	taskService := service.NewTaskService(taskStore, gesture.NewInterpreter(logger), logger,
		service.WithPulse(cfg.HapticPulse),
	)
	taskHandler := handler.NewTaskHandler(taskService, logger)

	srv := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.NewRouter(taskHandler, true),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
		return
	}
	logger.Info("Server stopped successfully")
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// openBackend returns the configured key-value backend and a func that
// releases it.
func openBackend(ctx context.Context, cfg config.Config) (repo.Backend, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping: %w", err)
		}
		b, err := repo.NewPostgresBackend(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return b, pool.Close, nil
	case config.BackendSQLite:
		b, err := repo.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { b.Close() }, nil
	default:
		return repo.NewMemoryBackend(), func() {}, nil
	}
}
