package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/wallet-import/internal/config"
	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/internal/eventbus"
	"github.com/grachmannico95/wallet-import/internal/handler"
	"github.com/grachmannico95/wallet-import/internal/importer"
	"github.com/grachmannico95/wallet-import/internal/metrics"
	"github.com/grachmannico95/wallet-import/internal/scheduler"
	"github.com/grachmannico95/wallet-import/internal/server"
	"github.com/grachmannico95/wallet-import/internal/service"
	"github.com/grachmannico95/wallet-import/internal/storage"
	"github.com/grachmannico95/wallet-import/internal/storage/postgres"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	repo := storage.NewMemoryStore()
	log.Info(ctx, "Run store initialized")

	backend, database, closeBackend := openBackend(ctx, cfg, log)
	defer closeBackend()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	eventBusCfg := &eventbus.Config{
		ChannelBuffer:  cfg.EventBus.ChannelBufferSize,
		MaxRetries:     cfg.Worker.MaxRetries,
		RetryBaseDelay: cfg.EventBus.RetryBaseDelay,
		RetryMaxDelay:  cfg.EventBus.RetryMaxDelay,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	notificationConsumer := eventbus.NewNotificationConsumer(
		repo,
		backend,
		log,
		cfg.Worker.PoolSize,
	)
	log.Info(ctx, "Notification consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	err := bus.Subscribe(eventbus.EventTypeImportCompleted, notificationConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	err = bus.Start(ctx)
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	importService := service.NewImportService(repo, backend, bus, log,
		service.WithPreviewRows(cfg.Import.PreviewRows),
		service.WithErrorDisplayLimit(cfg.Import.ErrorDisplayLimit),
		service.WithRateLimiter(importer.NewLimiter(cfg.Import.SubmitRatePerSec)),
		service.WithMetrics(m),
	)
	log.Info(ctx, "Services initialized")

	sweeper := scheduler.NewSweeper(importService, cfg.Session.SweepSchedule, cfg.Session.TTL, log)
	if err := sweeper.Start(); err != nil {
		log.Fatal(ctx, "Failed to start session sweeper",
			"error", err,
		)
	}

	importHandler := handler.NewImportHandler(importService, log)
	notificationHandler := handler.NewNotificationHandler(importService, log)
	healthHandler := handler.NewHealthHandler(database)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, registry, importHandler, notificationHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown in order:
	// 1. Stop accepting new HTTP requests
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	// 2. Stop sweeping sessions
	<-sweeper.Stop().Done()

	// 3. Let running imports finish so their completion events are published
	if err := importService.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Import runs did not finish in time",
			"error", err,
		)
	}

	// 4. Stop event bus and wait for workers to finish
	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}

// openBackend connects to PostgreSQL when DATABASE_URL is set and otherwise
// falls back to a seeded in-memory backend for local use.
func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.Backend, handler.Pinger, func()) {
	if cfg.Database.URL == "" {
		backend := storage.NewMemoryBackend()
		seedMemoryBackend(backend, cfg.Auth.DefaultUserID)
		log.Warn(ctx, "DATABASE_URL not set, using in-memory backend",
			"seed_user", cfg.Auth.DefaultUserID,
		)
		return backend, nil, func() {}
	}

	pool, err := postgres.Connect(ctx, postgres.PoolConfig{
		DSN:             cfg.Database.URL,
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal(ctx, "Failed to connect to database",
			"error", err,
		)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal(ctx, "Failed to run migrations",
				"error", err,
			)
		}
		log.Info(ctx, "Database migrations applied")
	}

	log.Info(ctx, "PostgreSQL backend initialized")
	return postgres.New(pool), pool, pool.Close
}

func seedMemoryBackend(b *storage.MemoryBackend, userID string) {
	for _, c := range []struct {
		name string
		kind domain.Kind
	}{
		{"Comida", domain.KindExpense},
		{"Transporte", domain.KindExpense},
		{"Servicios", domain.KindExpense},
		{"Salario", domain.KindIncome},
	} {
		b.AddCategory(userID, c.name, c.kind)
	}
	b.AddWallet(userID, "Efectivo")
	b.AddWallet(userID, "Banco")
}
