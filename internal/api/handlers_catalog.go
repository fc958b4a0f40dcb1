// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"net/http"

	"github.com/tomtom215/moodreel/internal/models"
)

// Genres handles GET /api/v1/genres.
// Genres are listed in catalog order with their prior weight.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()

	genres := make([]models.GenreInfo, 0, len(cat.Priors))
	for _, p := range cat.Priors {
		genres = append(genres, models.GenreInfo{Name: p.Genre, Prior: p.Weight})
	}

	respondSuccess(w, r, genres, 0)
}

// Moods handles GET /api/v1/moods.
func (h *Handler) Moods(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.engine.Catalog().Moods, 0)
}

// Movies handles GET /api/v1/movies.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.engine.Catalog().Movies, 0)
}
