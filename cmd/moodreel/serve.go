// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/moodreel/internal/api"
	"github.com/tomtom215/moodreel/internal/config"
	"github.com/tomtom215/moodreel/internal/logging"
	"github.com/tomtom215/moodreel/internal/recommend"
	"github.com/tomtom215/moodreel/internal/supervisor"
	"github.com/tomtom215/moodreel/internal/supervisor/services"
)

type serveOptions struct {
	statsInterval time.Duration
}

func newServeCmd(global *globalOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recommendation HTTP API",
		Long: `Run the HTTP API under a supervisor tree.

Routes:
  POST /api/v1/recommendations   JSON body {"genres": [...], "mood": "...", "k": 5}
  GET  /api/v1/recommendations   ?genre=Action&genre=Sci-Fi&mood=Excited&k=5
  GET  /api/v1/genres | /api/v1/moods | /api/v1/movies
  GET  /health | /metrics

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}

			logging.Init(logging.Config{
				Level:     cfg.Logging.Level,
				Format:    cfg.Logging.Format,
				Caller:    cfg.Logging.Caller,
				Timestamp: true,
				Output:    cmd.ErrOrStderr(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, opts)
		},
	}

	cmd.Flags().DurationVar(&opts.statsInterval, "stats-interval", services.DefaultStatsInterval, "how often engine counters are logged")
	return cmd
}

// serve builds the engine, HTTP server and supervisor tree, then blocks until
// ctx is canceled.
func serve(ctx context.Context, cfg *config.Config, opts *serveOptions) error {
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("catalog", catalogSource(cfg)).
		Int("movies", engine.Catalog().Len()).
		Str("version", version).
		Msg("starting moodreel")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	tree.AddAPIService(services.NewHTTPServerService(newHTTPServer(cfg, engine), cfg.Server.ShutdownTimeout))
	tree.AddTelemetryService(services.NewStatsService(engine, services.StatsServiceConfig{
		Interval:      opts.statsInterval,
		LogOnShutdown: true,
	}, logging.WithComponent("telemetry")))

	err = tree.Serve(ctx)

	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("service did not stop within shutdown timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logging.Info().Msg("moodreel stopped")
	return nil
}

func newHTTPServer(cfg *config.Config, engine *recommend.Engine) *http.Server {
	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	router := api.NewRouter(api.NewHandler(engine, version), api.NewChiMiddleware(mwConfig))

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}
}

func catalogSource(cfg *config.Config) string {
	if cfg.Catalog.Path == "" {
		return "built-in"
	}
	return cfg.Catalog.Path
}
