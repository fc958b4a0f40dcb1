// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package services provides suture.Service wrappers for Moodreel's long-running
components.

Each wrapper translates a component's own lifecycle into suture's
context-aware Serve pattern:

  - HTTPServerService runs an *http.Server and shuts it down gracefully
    when its context is canceled.
  - StatsService periodically logs the recommendation engine counters.

Services return ctx.Err() on a requested shutdown so the supervisor can tell
a stop from a crash.
*/
package services
