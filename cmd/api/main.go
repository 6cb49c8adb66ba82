package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"group-wager-ledger/config"
	httpHandler "group-wager-ledger/internal/adapter/http/handler"
	"group-wager-ledger/internal/adapter/notify"
	pgStorage "group-wager-ledger/internal/adapter/storage/postgres"
	redisStorage "group-wager-ledger/internal/adapter/storage/redis"
	"group-wager-ledger/internal/core/ports"
	"group-wager-ledger/internal/extract"
	"group-wager-ledger/internal/service"
	"group-wager-ledger/pkg/logger"
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
		Int("port", cfg.Server.Port).
		Msg("Starting Group Wager Ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	wagerRepo := pgStorage.NewWagerRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	outcomeCache := redisStorage.NewOutcomeCache(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	extractor := extract.New(cfg.Game.TerminalKeyword, cfg.Game.WinnerMarker)
	notifier := notify.NewLogNotifier(log)
	ledgerSvc := service.NewLedgerService(userRepo, txRepo, transactor, cfg.Game.DefaultCommissionBps, log)
	gameSvc := service.NewGameService(wagerRepo, cfg.Game.ExpiryWindow, log)
	resolutionSvc := service.NewResolutionService(extractor, ledgerSvc, gameSvc, outcomeCache, notifier, log)
	expirySvc := service.NewExpiryService(ledgerSvc, gameSvc, notifier, cfg.Game.SweepInterval, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Resolver:       resolutionSvc,
		Ledger:         ledgerSvc,
		Games:          gameSvc,
		Sweep:          expirySvc.SweepOnce,
		HashSvc:        hashSvc,
		TokenSvc:       tokenSvc,
		Admin:          cfg.Admin,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// Background expiry sweeper
	sweepCtx, stopSweeper := context.WithCancel(ctx)
	go expirySvc.Run(sweepCtx)

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

	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
