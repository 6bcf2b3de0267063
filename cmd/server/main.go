// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

// Package main is the entry point for the Hawkins API server.
//
// Hawkins serves a fixed Stranger Things dataset (characters, creatures,
// episodes, locations, quotes) over a read-only REST API. Every collection
// supports listing with field filters and pagination, lookup by id, and a
// uniform random pick; a cross-entity search endpoint scans all collections
// at once.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered defaults, config file, and environment (Koanf v2)
//  2. Logging: zerolog, configured from the loaded settings
//  3. Store: embedded JSON datasets, with an optional file-backed quotes
//     collection that reloads on each read
//  4. HTTP layer: Chi router with CORS, rate limiting, sanitization, and
//     Prometheus instrumentation
//  5. Supervisor tree: the HTTP server runs as a supervised suture service
//     with graceful shutdown on SIGINT/SIGTERM
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hawkinslab/hawkins/internal/api"
	"github.com/hawkinslab/hawkins/internal/config"
	"github.com/hawkinslab/hawkins/internal/logging"
	"github.com/hawkinslab/hawkins/internal/store"
	"github.com/hawkinslab/hawkins/internal/supervisor"
	"github.com/hawkinslab/hawkins/internal/supervisor/services"
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
	})

	logging.Info().Msg("Starting Hawkins with supervisor tree")

	if cfg.Data.QuotesPath != "" {
		logging.Info().
			Str("quotes_path", cfg.Data.QuotesPath).
			Str("environment", cfg.Server.Environment).
			Msg("Configuration loaded (file-backed quotes)")
	} else {
		logging.Info().
			Str("environment", cfg.Server.Environment).
			Msg("Configuration loaded (embedded datasets only)")
	}

	// Load the dataset store. With an empty quotes path everything comes
	// from the embedded JSON files.
	st, err := store.Load(cfg.Data.QuotesPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset store")
	}
	logging.Info().
		Int("characters", len(st.Characters())).
		Int("creatures", len(st.Creatures())).
		Int("episodes", len(st.Episodes())).
		Int("locations", len(st.Locations())).
		Int("quotes", len(st.Quotes())).
		Msg("Dataset store loaded")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter.
	// This bridges zerolog to slog for sutureslog compatibility.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Wire the HTTP layer
	handler := api.NewHandler(st, cfg)
	mw := api.NewChiMiddlewareFromConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
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

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
