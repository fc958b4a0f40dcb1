// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package middleware provides HTTP middleware components for the Moodreel API.

Key Components:

  - RequestID: UUID-based request tracking, propagated into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - AccessLog: one structured zerolog line per completed request

All three are written as func(http.HandlerFunc) http.HandlerFunc. The api
package adapts them to chi's func(http.Handler) http.Handler with a small
wrapper, so they can be tested without a router.

Middleware Stack:

	r.Use(chiMiddleware(middleware.RequestID))          // Layer 1: request tracking
	r.Use(chiMiddleware(middleware.AccessLog))          // Layer 2: access log
	r.Use(cors)                                         // Layer 3: CORS preflight
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(rateLimit)                                // Layer 4: httprate
	    r.Use(chiMiddleware(middleware.PrometheusMetrics)) // Layer 5: metrics
	})

Prometheus endpoint labels use the chi route pattern when the request was
routed by chi, which keeps label cardinality bounded by the route table.
*/
package middleware
