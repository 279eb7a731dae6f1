// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// Package main is the entry point for the Forkcast server.
//
// Forkcast is an in-memory food ordering recommendation engine. A single
// catalog indexes every food across a relationship graph, nutrition tree,
// per-cuisine rating heaps, cuisine trie, offer tree, and recency list, and
// a recommendation engine answers cuisine, personalized, nutrition,
// popularity, time-based, and pairing queries over it.
//
// # Startup order
//
//  1. Configuration: Koanf v2 layered loading (defaults, YAML file,
//     FORKCAST_ environment variables)
//  2. Logging: zerolog, JSON or console format
//  3. Catalog, session manager, recommendation engine, seasonal menu
//  4. HTTP API: chi router under /api/v1
//  5. Supervisor: suture tree running the HTTP server
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits for in-flight requests to complete
// within the configured shutdown timeout.
//
// # Example Usage
//
//	export FORKCAST_AUTH_SECRET=$(openssl rand -hex 32)
//	export FORKCAST_SERVER_PORT=8080
//	./forkcast
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/tomtom215/forkcast/internal/api"
	"github.com/tomtom215/forkcast/internal/catalog"
	"github.com/tomtom215/forkcast/internal/config"
	"github.com/tomtom215/forkcast/internal/logging"
	"github.com/tomtom215/forkcast/internal/recommend"
	"github.com/tomtom215/forkcast/internal/seasonal"
	"github.com/tomtom215/forkcast/internal/session"
	"github.com/tomtom215/forkcast/internal/supervisor"
)

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

	logger := logging.Logger()
	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Int("recency_capacity", cfg.Catalog.RecencyCapacity).
		Msg("Starting Forkcast")

	cat := catalog.New(cfg.Catalog.RecencyCapacity, logger)

	sessions, err := session.NewManager(cfg.Auth, cat, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize session manager")
	}

	engine, err := recommend.NewEngine(&cfg.Recommend, cat, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	menu := seasonal.NewMenu(logger)

	router := api.NewRouter(api.RouterConfig{
		CORSOrigins:     cfg.Server.CORSOrigins,
		RateLimitReqs:   cfg.Server.RateLimitReqs,
		RateLimitWindow: cfg.Server.RateLimitWindow,
	}, cat, engine, sessions, menu, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.Add(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("addr", server.Addr).Msg("HTTP server listening")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor exited with error")
	}

	logger.Info().Msg("Forkcast stopped")
}
