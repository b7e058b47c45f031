package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/freelanceos/internal/adapters/resetfn"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portsrepo "github.com/SscSPs/freelanceos/internal/core/ports/repositories"
	"github.com/SscSPs/freelanceos/internal/core/services"
	"github.com/SscSPs/freelanceos/internal/handlers"
	"github.com/SscSPs/freelanceos/internal/middleware"
	"github.com/SscSPs/freelanceos/internal/platform/analytics"
	"github.com/SscSPs/freelanceos/internal/platform/config"
	"github.com/SscSPs/freelanceos/internal/platform/metrics"
	"github.com/SscSPs/freelanceos/internal/repositories/database/pgsql"
	"github.com/SscSPs/freelanceos/internal/repositories/memory"
	"github.com/SscSPs/freelanceos/pkg/database"
	"github.com/SscSPs/freelanceos/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// @title FreelanceOS Backend API
// @version 1.0
// @description Project, note and bill API of the FreelanceOS demo, together with the demo data reset system.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, prometheus.DefaultRegisterer)
	stop()
	if err != nil {
		slog.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run serves until ctx is cancelled. Resources opened along the way are released before it
// returns, including on error.
func run(ctx context.Context, reg prometheus.Registerer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize structured logger
	logger := logging.New(cfg.IsProduction)
	slog.SetDefault(logger)

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize %s store: %w", cfg.StoreDriver, err)
	}
	defer closeStore()

	m := metrics.New(reg)

	tracker := analytics.NewTracker(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer tracker.Close()

	invoker := resetfn.NewClient(cfg.SupabaseURL, cfg.ResetFunctionPath, cfg.ServiceRoleKey, cfg.ResetRequestTimeout)
	serviceContainer := services.NewServiceContainer(cfg, repos, invoker, m, tracker)

	if cfg.ResetSchedulerEnabled {
		scheduler, err := services.NewResetScheduler(serviceContainer.ResetOrchestrator, cfg.ResetInterval, cfg.ResetLocation, logger)
		if err != nil {
			return fmt.Errorf("failed to create reset scheduler: %w", err)
		}
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start reset scheduler: %w", err)
		}
		defer func() {
			if err := scheduler.Stop(); err != nil {
				logger.Error("Failed to stop reset scheduler", slog.String("error", err.Error()))
			}
		}()
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, m, tracker); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// openStore connects the configured store driver. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using the in-memory store; data is lost on restart")
		store := memory.NewStore(domain.User{
			UserID:    domain.DemoUserID,
			Email:     cfg.DemoUserEmail,
			CreatedAt: time.Now().UTC(),
		})
		return memory.NewRepositoryProvider(store), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}
