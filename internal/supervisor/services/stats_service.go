// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/recommend"
)

// DefaultStatsInterval is used when StatsServiceConfig.Interval is not positive.
const DefaultStatsInterval = 5 * time.Minute

// StatsSource reports recommendation engine counters.
// *recommend.Engine satisfies it.
type StatsSource interface {
	GetMetrics() recommend.Metrics
}

// StatsServiceConfig holds configuration for the stats service.
type StatsServiceConfig struct {
	// Interval is how often the counters are logged.
	Interval time.Duration

	// LogOnShutdown logs a final snapshot when the service stops.
	LogOnShutdown bool
}

// StatsService periodically logs engine request, error and latency counters.
type StatsService struct {
	source StatsSource
	config StatsServiceConfig
	logger zerolog.Logger
	name   string
}

// NewStatsService creates a new stats service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsService(source StatsSource, cfg StatsServiceConfig, logger zerolog.Logger) *StatsService {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultStatsInterval
	}
	return &StatsService{
		source: source,
		config: cfg,
		logger: logger.With().Str("service", "stats").Logger(),
		name:   "stats-service",
	}
}

// Serve implements suture.Service.
func (s *StatsService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.config.Interval).Msg("stats service starting")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if s.config.LogOnShutdown {
				s.report()
			}
			return ctx.Err()

		case <-ticker.C:
			s.report()
		}
	}
}

func (s *StatsService) report() {
	m := s.source.GetMetrics()
	s.logger.Info().
		Int64("requests", m.RequestCount).
		Int64("errors", m.ErrorCount).
		Float64("avg_latency_ms", m.AverageLatencyMS).
		Msg("recommendation stats")
}

// String returns the service name for logging.
func (s *StatsService) String() string {
	return s.name
}
