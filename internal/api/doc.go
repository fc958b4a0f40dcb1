// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package api provides the Moodreel HTTP API on the chi router.

Endpoints:

	POST /api/v1/recommendations   JSON body {"genres": [...], "mood": "...", "k": 5}
	GET  /api/v1/recommendations   ?genre=Action&genre=Sci-Fi&mood=Excited&k=5
	GET  /api/v1/genres            genre labels with prior weights
	GET  /api/v1/moods             moods with their genre adjustments
	GET  /api/v1/movies            the full catalog
	GET  /health                   liveness and catalog size
	GET  /metrics                  Prometheus exposition

Every JSON response uses the models.APIResponse envelope. An empty genre
selection is answered with 400 INVALID_INPUT; malformed requests with 400
VALIDATION_ERROR or BAD_REQUEST. An omitted mood falls back to the
catalog's first mood.

Global middleware: request ID, access log, real IP, panic recovery, CORS.
/api/v1 adds rate limiting (httprate), security headers, Prometheus
instrumentation and gzip.
*/
package api
