package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-wallet/config"
	httpHandler "crypto-wallet/internal/adapter/http/handler"
	memStorage "crypto-wallet/internal/adapter/storage/memory"
	pgStorage "crypto-wallet/internal/adapter/storage/postgres"
	redisStorage "crypto-wallet/internal/adapter/storage/redis"
	"crypto-wallet/internal/core/ports"
	"crypto-wallet/internal/service"
	"crypto-wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Crypto Wallet API")

	ctx := context.Background()

	// Initialize the wallet store per the configured driver.
	var (
		store          ports.WalletStore
		healthCheckers []ports.HealthChecker
		cleanup        func()
	)
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		cleanup = pool.Close

		pgStore := pgStorage.NewWalletStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare wallet schema")
		}
		store = pgStore
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))

	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		cleanup = func() { _ = rdb.Close() }

		store = redisStorage.NewWalletStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))

	case "memory":
		store = memStorage.NewWalletStore()
		cleanup = func() {}

	default:
		log.Fatal().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver")
	}
	defer cleanup()

	// Restore wallet state; an empty store starts from the seed assets.
	book, txLog, err := service.LoadWalletState(ctx, store)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load wallet state")
	}
	log.Info().
		Int("assets", len(book.List())).
		Int("transactions", txLog.Len()).
		Msg("Wallet state loaded")

	// Initialize business services
	directory := service.NewAddressDirectory(cfg.Wallet.Addresses)
	walletSvc := service.NewWalletService(book, txLog, store, directory, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
