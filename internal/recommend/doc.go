// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package recommend scores catalog movies against a genre selection and a mood.
//
// # Scoring
//
// For each request the engine builds a working weight vector:
//
//  1. Copy the catalog's genre priors.
//  2. Multiply every selected genre that has a prior by Config.GenreBoost (2.0).
//  3. If the mood is known, multiply each genre it lists by (1 + weight).
//     Genres without a prior are skipped, never inserted.
//  4. Normalize so the weights sum to 1.
//
// A movie's score is the sum of the normalized weights of its genres. Movies
// are ordered by score, then rating, both descending; exact ties keep catalog
// order. The first K (default 5) are returned.
//
// The weighting is ad hoc multiplicative boosting, not Bayesian inference.
// Nothing is learned between requests and no state outlives a call, so
// identical requests always produce identical rankings.
//
// # Usage
//
//	engine, err := recommend.NewEngine(catalog.Default(), recommend.DefaultConfig(), logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Genres: []string{"Sci-Fi"},
//	    Mood:   "Thoughtful",
//	})
//	if errors.Is(err, recommend.ErrInvalidInput) {
//	    // no genre selected
//	}
//
// # Thread Safety
//
// The engine is safe for concurrent use. The catalog is read-only and each
// request works on its own copy of the weights.
package recommend
