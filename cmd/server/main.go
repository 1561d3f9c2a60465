// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/vidtrends/docs" // Import generated swagger docs
	"github.com/tomtom215/vidtrends/internal/analytics"
	"github.com/tomtom215/vidtrends/internal/api"
	"github.com/tomtom215/vidtrends/internal/config"
	"github.com/tomtom215/vidtrends/internal/database"
	"github.com/tomtom215/vidtrends/internal/logging"
	"github.com/tomtom215/vidtrends/internal/metrics"
	"github.com/tomtom215/vidtrends/internal/supervisor"
	"github.com/tomtom215/vidtrends/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// storeProbeInterval is how often the supervised probe refreshes vidtrends_store_up.
const storeProbeInterval = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger; config not yet available
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Vidtrends")
	metrics.SetBuildInfo(version)

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin; restrict security.cors_origins in production")
	}

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Vidtrends stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run owns every resource opened after configuration, so deferred cleanup
// runs before main exits.
func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Database.SeedMockData {
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		n, err := db.SeedMockData(seedCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to seed mock data: %w", err)
		}
		if n > 0 {
			logging.Info().Int("samples", n).Msg("Mock data seeding complete")
		}
	}

	svc := analytics.NewService(db, cfg.API)
	handler := api.NewHandler(svc, db, version)
	chiMw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewStoreProbeService(db, storeProbeInterval, services.DefaultProbeTimeout))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if errors.Is(treeErr, context.Canceled) {
		treeErr = nil
	}
	if treeErr != nil {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, s := range unstopped {
		logging.Warn().Str("service", s.Name).Msg("Service failed to stop within timeout")
	}

	return treeErr
}
