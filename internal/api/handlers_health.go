// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moodreel/internal/models"
)

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()

	respondSuccess(w, r, models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Movies:  cat.Len(),
		Genres:  len(cat.Priors),
		Moods:   len(cat.Moods),
	}, 0)
}

// notFound answers unknown routes with the JSON envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Resource not found", nil)
}

// methodNotAllowed answers known routes called with the wrong method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
