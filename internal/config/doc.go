// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package config provides centralized configuration management for Moodreel.

Configuration is layered with koanf. Later sources override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, moodreel.yaml, /etc/moodreel/config.yaml)
 3. Environment variables

Only the environment variables listed in envTransformFunc are recognized.
Anything else in the environment is ignored.

# Environment Variables

HTTP server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 10s)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per client (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file and line (default: false)

Catalog:
  - CATALOG_PATH: YAML catalog replacing the built-in movies (default: built-in)

Recommendations:
  - RECOMMEND_GENRE_BOOST: Multiplier for selected genres (default: 2.0)
  - RECOMMEND_DEFAULT_K: Results when a request leaves k unset (default: 5)
  - RECOMMEND_MAX_K: Upper bound for k (default: 50)

# Usage Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Server.Addr())
*/
package config
