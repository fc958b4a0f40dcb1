// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"time"

	"github.com/tomtom215/moodreel/internal/recommend"
)

// Handler serves the API endpoints over a single recommendation engine.
type Handler struct {
	engine    *recommend.Engine
	version   string
	startTime time.Time
	timeout   time.Duration
}

// defaultRequestTimeout bounds a single recommendation.
const defaultRequestTimeout = 5 * time.Second

// NewHandler creates a new API handler.
func NewHandler(engine *recommend.Engine, version string) *Handler {
	return &Handler{
		engine:    engine,
		version:   version,
		startTime: time.Now(),
		timeout:   defaultRequestTimeout,
	}
}
