// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/cinecatalog/internal/config"
)

func TestRateLimit(t *testing.T) {
	sec := testSecurity()
	sec.RateLimitReqs = 2
	sec.RateLimitWindow = time.Hour
	h, _ := newTestServer(t, sec)

	codes := make([]int, 3)
	for i := range codes {
		w, env := do(t, h, http.MethodGet, "/api/movies", "")
		codes[i] = w.Code
		if i == 2 && env.Code != ErrCodeTooManyRequests {
			t.Errorf("limited env = %+v", env)
		}
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}

	// Health is outside the limited group.
	w, _ := do(t, h, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	m := NewChiMiddleware(ChiMiddlewareConfigFrom(&config.SecurityConfig{
		RateLimitReqs:     1,
		RateLimitWindow:   time.Hour,
		RateLimitDisabled: true,
	}))
	h := m.RateLimit("/x")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("request %d limited", i)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestServer(t, testSecurity())

	req := httptest.NewRequest(http.MethodOptions, "/api/movies", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/movies", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin allowed: %q", got)
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	h, _ := newTestServer(t, testSecurity())
	w, _ := do(t, h, http.MethodGet, "/api/health", "")
	if w.Header().Get("X-Content-Type-Options") != "nosniff" || w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("headers = %v", w.Header())
	}
}

func TestClassify(t *testing.T) {
	status, code := classify(http.ErrAbortHandler)
	if status != http.StatusInternalServerError || code != ErrCodeInternalError {
		t.Errorf("unknown error => %d %s", status, code)
	}
}
