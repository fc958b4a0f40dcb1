// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tomtom215/moodreel/internal/logging"
	"github.com/tomtom215/moodreel/internal/models"
	"github.com/tomtom215/moodreel/internal/recommend"
)

// Recommendations handles POST /api/v1/recommendations.
//
//	{"genres": ["Action", "Sci-Fi"], "mood": "Excited", "k": 5}
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest, err.Error(), nil)
		return
	}

	h.serveRecommendations(w, r, &req)
}

// RecommendationsQuery handles GET /api/v1/recommendations.
//
//	?genre=Action&genre=Sci-Fi&mood=Excited&k=5
//
// genre may be repeated or comma-separated.
func (h *Handler) RecommendationsQuery(w http.ResponseWriter, r *http.Request) {
	req := models.RecommendationRequest{
		Genres: getQueryList(r, "genre"),
		Mood:   r.URL.Query().Get("mood"),
	}

	if kStr := r.URL.Query().Get("k"); kStr != "" {
		k, err := strconv.Atoi(kStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest, "k must be an integer", nil)
			return
		}
		req.K = k
	}

	h.serveRecommendations(w, r, &req)
}

func (h *Handler) serveRecommendations(w http.ResponseWriter, r *http.Request, req *models.RecommendationRequest) {
	if apiErr := validateRequest(req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	// An omitted mood is the first catalog mood, as in the CLI.
	mood := req.Mood
	if mood == "" {
		mood = h.engine.Catalog().DefaultMood()
	}

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Genres:    req.Genres,
		Mood:      mood,
		K:         req.K,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondSuccess(w, r, resp, resp.Metadata.LatencyMS)
}
