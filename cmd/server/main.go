// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/reelsift/internal/api"
	"github.com/tomtom215/reelsift/internal/cache"
	"github.com/tomtom215/reelsift/internal/config"
	"github.com/tomtom215/reelsift/internal/database"
	"github.com/tomtom215/reelsift/internal/dataset"
	"github.com/tomtom215/reelsift/internal/logging"
	"github.com/tomtom215/reelsift/internal/metrics"
	"github.com/tomtom215/reelsift/internal/mood"
	"github.com/tomtom215/reelsift/internal/normalize"
	"github.com/tomtom215/reelsift/internal/query"
	"github.com/tomtom215/reelsift/internal/supervisor"
	"github.com/tomtom215/reelsift/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// responseCacheEntries bounds the response cache.
const responseCacheEntries = 10000

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

	logging.Info().Str("version", version).Msg("Starting Reelsift with supervisor tree")
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("movies_path", cfg.Dataset.MoviesPath).
		Str("series_path", cfg.Dataset.SeriesPath).
		Bool("watch", cfg.Dataset.Watch).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("Configuration loaded")

	moods, err := mood.Load(cfg.Moods.CatalogPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load mood catalog")
	}
	logging.Info().Int("moods", moods.Len()).Str("path", cfg.Moods.CatalogPath).Msg("Mood catalog loaded")

	loader, err := database.NewLoader(database.LoaderConfig{})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize dataset loader")
	}
	defer func() {
		if err := loader.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing dataset loader")
		}
	}()

	store := dataset.NewStore()
	preparer := dataset.NewPreparer(normalize.New(cfg.Dataset.GenreSynonyms))
	reloader := dataset.NewReloader(store, loader, preparer, dataset.Sources{
		MoviesPath: cfg.Dataset.MoviesPath,
		SeriesPath: cfg.Dataset.SeriesPath,
	}, dataset.ReloaderConfig{MinInterval: cfg.Dataset.ReloadMinInterval})

	// The server never starts without a first snapshot.
	initCtx, initCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	snap, err := reloader.Reload(initCtx)
	initCancel()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load initial dataset")
	}
	logging.Info().
		Uint64("version", snap.Version).
		Int("movies", len(snap.Movies)).
		Int("series", len(snap.Series)).
		Msg("Initial dataset loaded")

	var responseCache *cache.Cache
	if cfg.Cache.Enabled {
		responseCache = cache.New("responses", cfg.Cache.TTL, responseCacheEntries)
		defer responseCache.Close()
	}

	engine := query.NewEngine(moods, preparer)
	handler := api.NewHandler(store, engine, responseCache, cfg.API, version)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Dataset.Watch {
		tree.AddDataService(services.NewDatasetWatchService(reloader))
		logging.Info().Msg("Dataset watcher added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Reelsift stopped gracefully")
}
