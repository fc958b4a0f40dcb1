// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	catalogFile := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(catalogFile, []byte("priors: []\n"), 0o644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too high", func(c *Config) { c.Server.Port = 65536 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "HTTP_SHUTDOWN_TIMEOUT"},
		{"no cors origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit window too short", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, ""},
		{"existing catalog", func(c *Config) { c.Catalog.Path = catalogFile }, ""},
		{"missing catalog", func(c *Config) { c.Catalog.Path = "/no/such/catalog.yaml" }, "CATALOG_PATH"},
		{"negative boost", func(c *Config) { c.Recommend.GenreBoost = -1 }, "RECOMMEND_GENRE_BOOST"},
		{"nan boost", func(c *Config) { c.Recommend.GenreBoost = math.NaN() }, "RECOMMEND_GENRE_BOOST"},
		{"zero default k", func(c *Config) { c.Recommend.DefaultK = 0 }, "RECOMMEND_DEFAULT_K"},
		{"max below default", func(c *Config) { c.Recommend.MaxK = 2 }, "RECOMMEND_MAX_K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestHasWildcardCORS(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("HasWildcardCORS() = false for default *")
	}
	cfg.Security.CORSOrigins = []string{"https://movies.example"}
	if cfg.HasWildcardCORS() {
		t.Error("HasWildcardCORS() = true for explicit origin")
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "::1", Port: 8080}
	if got := s.Addr(); got != "[::1]:8080" {
		t.Errorf("Addr() = %q, want [::1]:8080", got)
	}
}
