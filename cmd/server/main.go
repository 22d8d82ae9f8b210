// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

// Package main is the entry point for the CityGuide server.
//
// CityGuide is a self-hosted point-of-interest recommendation service.
// It stores a curated catalog of city places (cafes, parks, nightlife,
// attractions) in DuckDB and serves personalized recommendations over a
// REST API: text search, category browsing, random picks, radius-based
// nearby scans, and per-user favorites, all filtered by per-user
// preferences (kid-friendly, dog-friendly, price tier).
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables and config file (Koanf v2)
//  2. Database: DuckDB with the places/users/favorites schema
//  3. Recommendation core: preference-aware queries plus session state
//  4. CSV importer: bulk place ingestion endpoint
//  5. HTTP server: chi-routed REST API with Prometheus metrics
//
// All long-running components run under a suture supervisor tree, so a
// crashing HTTP server restarts with backoff instead of taking down the
// process.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (SERVER_*, DATABASE_*, GUIDE_*, LOGGING_*, IMPORT_*)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (shutdown timeout)
//   - Closes the database connection
//
// # Example Usage
//
//	export DATABASE_PATH=/data/cityguide.duckdb
//	export GUIDE_DEFAULT_CITY=Batumi
//	./cityguide
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mzhvania/cityguide/internal/api"
	"github.com/mzhvania/cityguide/internal/config"
	"github.com/mzhvania/cityguide/internal/database"
	"github.com/mzhvania/cityguide/internal/guide"
	"github.com/mzhvania/cityguide/internal/importer"
	"github.com/mzhvania/cityguide/internal/logging"
	"github.com/mzhvania/cityguide/internal/supervisor"
	"github.com/mzhvania/cityguide/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("default_city", cfg.Guide.DefaultCity).
		Float64("default_radius_km", cfg.Guide.DefaultRadiusKm).
		Msg("Configuration loaded")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	// Constructors tag their own component field.
	svc := guide.New(db, cfg.Guide, logging.Logger())
	imp := importer.New(db, cfg.Import, logging.Logger())

	handler := api.NewHandler(svc, imp, db, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
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

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor has fully stopped
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
