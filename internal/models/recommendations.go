// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package models

// RecommendationRequest is the body of POST /api/v1/recommendations and the
// decoded query of the GET form.
//
// An empty Genres list passes validation and is rejected by the engine
// with INVALID_INPUT.
type RecommendationRequest struct {
	Genres []string `json:"genres" validate:"max=32,dive,label,max=64"`
	Mood   string   `json:"mood" validate:"omitempty,label,max=64"`
	K      int      `json:"k,omitempty" validate:"gte=0,lte=1000"`
}

// GenreInfo is one entry of the genre listing.
type GenreInfo struct {
	Name  string  `json:"name"`
	Prior float64 `json:"prior"`
}
