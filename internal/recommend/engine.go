// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/catalog"
	"github.com/tomtom215/moodreel/internal/logging"
	"github.com/tomtom215/moodreel/internal/metrics"
)

// Engine scores a catalog against genre and mood selections.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	catalog *catalog.Catalog
	logger  zerolog.Logger

	requestCount atomic.Int64
	errorCount   atomic.Int64
	latencyNanos atomic.Int64
}

// NewEngine creates a new recommendation engine over cat.
// A nil cfg selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := checkHeadroom(cat, cfg.GenreBoost); err != nil {
		return nil, err
	}

	metrics.SetCatalogSize(cat.Len(), len(cat.Priors), len(cat.Moods))

	return &Engine{
		config:  cfg.Clone(),
		catalog: cat,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// checkHeadroom rejects catalogs whose working weights could overflow
// before normalization. total*boost*maxFactor bounds every working sum.
func checkHeadroom(cat *catalog.Catalog, boost float64) error {
	total := 0.0
	for _, p := range cat.Priors {
		total += p.Weight
	}
	maxFactor := 1.0
	for i := range cat.Moods {
		for _, w := range cat.Moods[i].Weights {
			maxFactor = math.Max(maxFactor, 1+w.Weight)
		}
	}
	if bound := total * math.Max(boost, 1) * maxFactor; math.IsInf(bound, 0) || math.IsNaN(bound) {
		return fmt.Errorf("%w: prior weights overflow when boosted", catalog.ErrInvalidCatalog)
	}
	return nil
}

// Catalog returns the catalog the engine scores against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend ranks the catalog for req and returns the top K movies.
// An empty genre selection fails with ErrInvalidInput.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req, err := e.prepareRequest(ctx, req)
	if err != nil {
		e.fail(req, metrics.OutcomeInvalid, start)
		return nil, err
	}

	logger := e.createRequestLogger(req)

	if err := ctx.Err(); err != nil {
		e.fail(req, metrics.OutcomeError, start)
		return nil, fmt.Errorf("recommend: %w", err)
	}

	w := e.buildWeights(req.Genres, req.Mood)
	if !w.moodApplied && req.Mood != "" {
		logger.Debug().Msg("unknown mood, skipping mood adjustment")
	}
	if len(w.ignored) > 0 {
		logger.Debug().Strs("ignored_genres", w.ignored).Msg("selected genres without prior weight")
	}

	items := e.rank(w.probs, req.K)

	elapsed := time.Since(start)
	e.latencyNanos.Add(elapsed.Nanoseconds())
	metrics.RecordRecommendation(e.moodLabel(req.Mood), metrics.OutcomeSuccess, elapsed)
	for _, g := range w.genres {
		metrics.RecordGenreSelection(e.genreLabel(g))
	}

	resp := &Response{
		Items:   items,
		Weights: w.probs,
		Metadata: ResponseMetadata{
			RequestID:       req.RequestID,
			Genres:          w.genres,
			IgnoredGenres:   w.ignored,
			Mood:            req.Mood,
			MoodApplied:     w.moodApplied,
			TotalCandidates: e.catalog.Len(),
			LatencyMS:       elapsed.Milliseconds(),
			Timestamp:       time.Now(),
		},
	}

	logger.Debug().
		Int("returned", len(items)).
		Dur("latency", elapsed).
		Msg("recommendation complete")

	return resp, nil
}

// Distribution returns the normalized genre weights for a selection
// without ranking any movies.
func (e *Engine) Distribution(genres []string, mood string) (map[string]float64, error) {
	if len(genres) == 0 {
		return nil, ErrNoGenres
	}
	return e.buildWeights(genres, mood).probs, nil
}

// GetMetrics returns a snapshot of the engine counters.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
	}
	if ok := m.RequestCount - m.ErrorCount; ok > 0 {
		m.AverageLatencyMS = float64(e.latencyNanos.Load()) / float64(ok) / float64(time.Millisecond)
	}
	return m
}

// prepareRequest validates req and applies defaults.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) (Request, error) {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}

	if len(req.Genres) == 0 {
		return req, ErrNoGenres
	}
	if req.K < 0 {
		return req, fmt.Errorf("%w: k must be non-negative, got %d", ErrInvalidInput, req.K)
	}

	if req.K == 0 {
		req.K = e.config.Limits.DefaultK
	}
	if req.K > e.config.Limits.MaxK {
		req.K = e.config.Limits.MaxK
	}

	return req, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Strs("genres", req.Genres).
		Str("mood", req.Mood).
		Int("k", req.K).
		Logger()
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) fail(req Request, outcome string, start time.Time) {
	e.errorCount.Add(1)
	metrics.RecordRecommendation(e.moodLabel(req.Mood), outcome, time.Since(start))
}

// weights is the per-request working vector and how the selection was read.
type weights struct {
	probs       map[string]float64
	genres      []string
	ignored     []string
	moodApplied bool
}

// buildWeights boosts, mood-adjusts and normalizes a copy of the priors.
func (e *Engine) buildWeights(selected []string, mood string) weights {
	w := weights{probs: e.catalog.PriorMap()}

	seen := make(map[string]struct{}, len(selected))
	for _, g := range selected {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		w.genres = append(w.genres, g)

		if p, ok := w.probs[g]; ok {
			w.probs[g] = p * e.config.GenreBoost
		} else {
			w.ignored = append(w.ignored, g)
		}
	}

	if adj, ok := e.catalog.MoodWeights(mood); ok {
		w.moodApplied = true
		for _, gw := range adj {
			// Mood genres without a prior are dropped, not inserted.
			if p, ok := w.probs[gw.Genre]; ok {
				w.probs[gw.Genre] = p * (1 + gw.Weight)
			}
		}
	}

	// Sum in declaration order so repeated requests are bit-identical.
	total := 0.0
	for _, p := range e.catalog.Priors {
		total += w.probs[p.Genre]
	}
	for g := range w.probs {
		w.probs[g] /= total
	}

	return w
}

// rank scores every movie and returns the top k by (score, rating).
func (e *Engine) rank(probs map[string]float64, k int) []ScoredMovie {
	scored := make([]ScoredMovie, 0, e.catalog.Len())
	for _, m := range e.catalog.Movies {
		score := 0.0
		for _, g := range m.Genres {
			score += probs[g]
		}
		scored = append(scored, ScoredMovie{
			Title:  m.Title,
			Score:  score,
			Rating: m.Rating,
			Genres: append([]string(nil), m.Genres...),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Rating > scored[j].Rating
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

func (e *Engine) moodLabel(mood string) string {
	if e.catalog.HasMood(mood) {
		return mood
	}
	return metrics.UnknownLabel
}

func (e *Engine) genreLabel(genre string) string {
	if e.catalog.HasGenre(genre) {
		return genre
	}
	return metrics.UnknownLabel
}
