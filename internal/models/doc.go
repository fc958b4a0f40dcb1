// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package models defines the HTTP API data structures for Moodreel.

Key Components:

  - APIResponse: Standard response envelope for every endpoint
  - APIError: Machine-readable error code with a human message
  - RecommendationRequest: JSON body and query form of a recommendation request
  - GenreInfo, HealthStatus: Listing and health payloads

Movie, mood and score types live with the code that owns them
(internal/catalog and internal/recommend) and are embedded in
APIResponse.Data as-is.
*/
package models
