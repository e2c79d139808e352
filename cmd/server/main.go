// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/cinecatalog/docs" // Import generated swagger docs
	"github.com/tomtom215/cinecatalog/internal/api"
	"github.com/tomtom215/cinecatalog/internal/catalog"
	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/events"
	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/metrics"
	"github.com/tomtom215/cinecatalog/internal/seed"
	"github.com/tomtom215/cinecatalog/internal/store"
	"github.com/tomtom215/cinecatalog/internal/store/backend"
	"github.com/tomtom215/cinecatalog/internal/store/badgerstore"
	"github.com/tomtom215/cinecatalog/internal/store/guard"
	"github.com/tomtom215/cinecatalog/internal/supervisor"
	"github.com/tomtom215/cinecatalog/internal/supervisor/services"
	"github.com/tomtom215/cinecatalog/internal/tracing"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("store", cfg.Store.Backend).
		Bool("events", cfg.Events.Enabled).
		Bool("tracing", cfg.Tracing.Enabled).
		Msg("Starting Cinecatalog with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Setup(ctx, &cfg.Tracing, version)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize tracing")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("Error flushing traces")
		}
	}()

	raw, err := backend.Open(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	guarded := guard.Wrap(raw, cfg.Store)
	defer func() {
		if err := guarded.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()
	logging.Info().Str("backend", raw.Name()).Msg("Store opened")

	metrics.AppInfo.WithLabelValues(version, runtime.Version(), raw.Name()).Set(1)

	if cfg.Seed.OnStartup {
		seedCatalog(ctx, guarded, cfg.Seed)
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	// Store layer
	if gc, ok := raw.(*badgerstore.Store); ok {
		tree.AddStoreService(services.NewGCService(gc, badgerstore.GCInterval, 0.5))
		logging.Info().Msg("Badger value log GC added to supervisor tree")
	}

	// Events layer
	var publisher events.Publisher = events.Discard{}
	if cfg.Events.Enabled {
		transport, err := events.Open(ctx, &cfg.Events, events.NewLogger())
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to open event transport")
		}
		defer func() {
			if err := transport.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing event transport")
			}
		}()

		bus := events.NewBus(transport.Publisher, cfg.Events.Topic)
		defer bus.Close()
		publisher = bus

		tree.AddEventsService(events.NewAuditor(transport.Subscriber, cfg.Events.Topic, transport.Logger, nil))
		logging.Info().
			Str("transport", cfg.Events.Transport).
			Str("topic", cfg.Events.Topic).
			Msg("Movie event auditor added to supervisor tree")
	}

	// API layer
	svc := catalog.New(guarded, publisher, cfg.API)
	router := api.NewRouter(
		api.NewHandler(svc, version),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security)),
	)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, u := range unstopped {
			logging.Warn().Str("service", u.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// seedCatalog loads the demo dataset before the server starts. A failure is
// logged and the server starts with whatever the store already holds.
func seedCatalog(ctx context.Context, s store.Store, cfg config.SeedConfig) {
	res, err := seed.New(s, cfg).Run(ctx)
	if err != nil {
		logging.Error().Err(err).Msg("Startup seed failed")
		return
	}
	logging.Info().
		Int64("wiped", res.Wiped).
		Int("inserted", res.Inserted).
		Dur("duration", res.Duration).
		Msg("Startup seed complete")
}
