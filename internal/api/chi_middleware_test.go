// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/models"
)

func TestRateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"*"}
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	h := setupTestRouter(t, cfg)

	before := testutil.ToFloat64(metrics.APIRateLimitHits)

	for i := 0; i < 2; i++ {
		if rec, _ := doRequest(t, h, http.MethodGet, "/api/v1/genres", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	rec, env := doRequest(t, h, http.MethodGet, "/api/v1/genres", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if env.Error == nil || env.Error.Code != models.ErrCodeRateLimited {
		t.Errorf("error = %+v, want RATE_LIMIT_EXCEEDED", env.Error)
	}
	if d := testutil.ToFloat64(metrics.APIRateLimitHits) - before; d != 1 {
		t.Errorf("rate limit hits delta = %v, want 1", d)
	}

	// Health is outside /api/v1 and not limited.
	if rec, _ := doRequest(t, h, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("/health status = %d, want 200", rec.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	h := setupTestRouter(t, cfg)

	for i := 0; i < 5; i++ {
		if rec, _ := doRequest(t, h, http.MethodGet, "/api/v1/moods", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://movies.example"}
	cfg.RateLimitDisabled = true
	h := setupTestRouter(t, cfg)

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"allowed origin", "https://movies.example", "https://movies.example"},
		{"other origin", "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPISecurityHeaders_HSTS(t *testing.T) {
	handler := APISecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("expected HSTS behind TLS-terminating proxy")
	}
}

func TestNewChiMiddleware_NilConfig(t *testing.T) {
	m := NewChiMiddleware(nil)
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("config = %+v, want defaults", m.config)
	}
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want empty", m.config.CORSAllowedOrigins)
	}
}
