// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/moodreel/internal/models"
	"github.com/tomtom215/moodreel/internal/recommend"
)

// noGenresMessage is shown to clients that submit an empty genre selection.
const noGenresMessage = "Please select at least one genre."

// respondEngineError maps a recommend.Engine error to an HTTP response.
func respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrNoGenres):
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, noGenresMessage, nil)
	case errors.Is(err, recommend.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeTimeout, "Recommendation timed out", err)
	default:
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal, "Failed to generate recommendations", err)
	}
}
