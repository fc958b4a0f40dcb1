// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

// Package validation provides struct validation using go-playground/validator v10.
//
// The package exposes a thread-safe singleton validator with one custom tag
// and translates validator errors into short human-readable messages that the
// API layer can return verbatim.
//
// # Custom Tags
//
//   - label: a non-blank string with no leading/trailing whitespace and no
//     control characters. Used for genre, mood and movie title labels.
//
// Field names in error messages come from the `json` struct tag when present,
// so API clients see the same names they sent.
//
// # Usage
//
//	type Request struct {
//	    Genres []string `json:"genres" validate:"required,min=1,dive,label"`
//	    K      int      `json:"k" validate:"gte=0,lte=50"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	}
package validation
