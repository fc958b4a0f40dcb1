// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package recommend

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput is wrapped by every request rejected before scoring.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoGenres is returned for an empty genre selection. It wraps ErrInvalidInput.
var ErrNoGenres = fmt.Errorf("%w: please select at least one genre", ErrInvalidInput)

// Request is a single recommendation request.
type Request struct {
	// Genres is the user's genre selection. Must be non-empty.
	// Duplicates count once; genres without a prior are ignored.
	Genres []string `json:"genres"`

	// Mood selects a mood-conditional adjustment. Unknown or empty moods
	// leave the weights unadjusted.
	Mood string `json:"mood"`

	// K is the number of movies to return.
	// Defaults to Config.Limits.DefaultK if zero, capped at Config.Limits.MaxK.
	K int `json:"k,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// ScoredMovie is a movie with its recommendation score.
type ScoredMovie struct {
	Title  string   `json:"title"`
	Score  float64  `json:"score"`
	Rating float64  `json:"rating"`
	Genres []string `json:"genres"`
}

// Response is the ranked result of a request.
type Response struct {
	// Items is ordered by (score, rating) descending.
	Items []ScoredMovie `json:"items"`

	// Weights is the normalized genre weight vector the items were scored with.
	Weights map[string]float64 `json:"weights"`

	// Metadata describes how the request was interpreted.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains diagnostic information about a response.
type ResponseMetadata struct {
	RequestID string `json:"request_id"`

	// Genres is the distinct selection in request order.
	Genres []string `json:"genres"`

	// IgnoredGenres lists selected genres that have no prior weight.
	IgnoredGenres []string `json:"ignored_genres,omitempty"`

	Mood string `json:"mood"`

	// MoodApplied is false when the mood is not in the catalog.
	MoodApplied bool `json:"mood_applied"`

	// TotalCandidates is the catalog size.
	TotalCandidates int `json:"total_candidates"`

	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// Metrics is a snapshot of engine counters.
type Metrics struct {
	RequestCount     int64   `json:"request_count"`
	ErrorCount       int64   `json:"error_count"`
	AverageLatencyMS float64 `json:"average_latency_ms"`
}
