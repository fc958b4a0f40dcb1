// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Label values are restricted to catalog vocabulary (or "unknown") so that
// arbitrary client input cannot grow series cardinality.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for RecommendationRequests.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// UnknownLabel replaces label values outside the catalog vocabulary.
const UnknownLabel = "unknown"

var (
	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_recommendation_requests_total",
			Help: "Total number of recommendation requests by mood and outcome",
		},
		[]string{"mood", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodreel_recommendation_duration_seconds",
			Help:    "Time spent scoring and ranking a recommendation request",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
	)

	GenreSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_genre_selections_total",
			Help: "Number of times each genre was selected in a request",
		},
		[]string{"genre"},
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodreel_catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogGenres = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodreel_catalog_genres",
			Help: "Number of genres with a prior weight in the loaded catalog",
		},
	)

	CatalogMoods = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodreel_catalog_moods",
			Help: "Number of moods in the loaded catalog",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodreel_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodreel_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	APIRateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodreel_api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// RecordRecommendation records a finished recommendation request.
func RecordRecommendation(mood, outcome string, duration time.Duration) {
	RecommendationRequests.WithLabelValues(mood, outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordGenreSelection counts one selection of genre.
func RecordGenreSelection(genre string) {
	GenreSelections.WithLabelValues(genre).Inc()
}

// SetCatalogSize publishes the size of the loaded catalog.
func SetCatalogSize(movies, genres, moods int) {
	CatalogMovies.Set(float64(movies))
	CatalogGenres.Set(float64(genres))
	CatalogMoods.Set(float64(moods))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit() {
	APIRateLimitHits.Inc()
}
