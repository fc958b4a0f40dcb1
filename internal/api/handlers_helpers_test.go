// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodreel/internal/models"
	"github.com/tomtom215/moodreel/internal/recommend"
)

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"Sci-Fi ünïcode", "Sci-Fi ünïcode"},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"k":1}`))
	b := generateETag([]byte(`{"k":1}`))
	c := generateETag([]byte(`{"k":2}`))

	if a != b {
		t.Errorf("same input produced %q and %q", a, b)
	}
	if a == c {
		t.Errorf("different input produced the same ETag %q", a)
	}
	if !strings.HasPrefix(a, `W/"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("ETag %q is not a quoted weak validator", a)
	}
}

func TestParseCommaSeparated(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Action", []string{"Action"}},
		{"Action, Sci-Fi ,,Drama", []string{"Action", "Sci-Fi", "Drama"}},
		{" , ", nil},
	}

	for _, tt := range tests {
		if got := parseCommaSeparated(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseCommaSeparated(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetQueryList(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?genre=Action&genre=Drama,Crime&genre=", nil)
	want := []string{"Action", "Drama", "Crime"}
	if got := getQueryList(req, "genre"); !reflect.DeepEqual(got, want) {
		t.Errorf("getQueryList() = %v, want %v", got, want)
	}
}

func TestRespondEngineError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"no genres", recommend.ErrNoGenres, http.StatusBadRequest, models.ErrCodeInvalidInput},
		{"other invalid input", fmt.Errorf("%w: k must be non-negative", recommend.ErrInvalidInput), http.StatusBadRequest, models.ErrCodeInvalidInput},
		{"deadline", fmt.Errorf("recommend: %w", context.DeadlineExceeded), http.StatusServiceUnavailable, "TIMEOUT"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, models.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondEngineError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp models.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestRespondJSON_Headers(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, &models.APIResponse{Status: models.StatusSuccess})

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag")
	}
}
