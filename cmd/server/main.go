// Package main is the entry point for the Festa API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"festa/internal/config"
	"festa/internal/core/security"
	"festa/internal/domain/auth"
	v1 "festa/internal/infrastructure/http/v1"
	"festa/internal/infrastructure/storage/postgres"
	"festa/internal/infrastructure/storage/postgres/auth_repo"
	"festa/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	ctx := context.Background()
	log.Info("starting festa server")

	// --- Database ---
	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalw("failed to run migrations", "error", err)
		}
		log.Info("database schema up to date")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalw("failed to ping database", "error", err)
	}
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Auth ---
	jwtConfig := auth.DefaultJWTConfig(cfg.JWTSecret)
	jwtConfig.AccessTokenTTL = cfg.AccessTokenTTL
	jwtService := auth.NewJWTService(jwtConfig)

	authConfig := auth.DefaultServiceConfig()
	authConfig.MaxLoginAttempts = cfg.MaxLoginAttempts
	authConfig.LockDuration = cfg.LockDuration
	authConfig.RefreshTokenExpiry = cfg.RefreshTokenExpiry

	authService := auth.NewService(
		auth_repo.NewUserRepo(txManager),
		auth_repo.NewTokenRepo(txManager),
		jwtService,
		authConfig,
	)

	// --- Access policy ---
	policy := security.MustPolicy(security.DefaultRules)

	// --- Audit trail ---
	auditService, err := postgres.NewAuditService(txManager, cfg.AuditCompressThreshold)
	if err != nil {
		log.Fatalw("failed to create audit service", "error", err)
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:         pool,
		TxManager:    txManager,
		Logger:       log,
		JWTValidator: jwtService,
		AuthService:  authService,
		Policy:       policy,
		Audit:        auditService,
		Location:     cfg.Location(),
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		log.Infow("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		runTokenCleanup(gctx, authService, log)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		// Give outstanding requests 30 seconds to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalw("server failed", "error", err)
	}

	log.Info("server stopped")
}

// runTokenCleanup purges expired and long-revoked refresh tokens once an hour.
func runTokenCleanup(ctx context.Context, authService *auth.Service, log *logger.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := authService.CleanupExpiredTokens(ctx)
			if err != nil {
				log.Warnw("token cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				log.Infow("expired refresh tokens removed", "count", removed)
			}
		}
	}
}
