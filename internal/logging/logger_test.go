// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func captureGlobal(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	Init(Config{Level: level, Format: "json", Output: &buf})
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", line, err)
	}
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidLevel(t *testing.T) {
	if !ValidLevel("warn") {
		t.Error("warn should be valid")
	}
	if ValidLevel("loud") {
		t.Error("loud should be invalid")
	}
}

func TestInit_JSONFieldNames(t *testing.T) {
	buf := captureGlobal(t, "info")

	Info().Str("backend", "duckdb").Msg("store opened")

	entry := decodeLine(t, strings.TrimSpace(buf.String()))
	if entry["message"] != "store opened" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["backend"] != "duckdb" {
		t.Errorf("backend = %v", entry["backend"])
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := captureGlobal(t, "warn")

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn entry missing")
	}
}

func TestCtx_AddsIDs(t *testing.T) {
	buf := captureGlobal(t, "debug")

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	Ctx(ctx).Info().Msg("with ids")

	entry := decodeLine(t, strings.TrimSpace(buf.String()))
	if entry["request_id"] != "req-1" || entry["correlation_id"] != "corr-1" {
		t.Errorf("ids missing: %v", entry)
	}
}

func TestContextIDs_Absent(t *testing.T) {
	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || CorrelationIDFromContext(ctx) != "" {
		t.Error("expected empty IDs on bare context")
	}
	if got := len(GenerateCorrelationID()); got != 8 {
		t.Errorf("correlation ID length = %d, want 8", got)
	}
	if GenerateRequestID() == GenerateRequestID() {
		t.Error("request IDs should be unique")
	}
}

func TestSlogLogger_WritesThroughZerolog(t *testing.T) {
	buf := captureGlobal(t, "debug")

	logger := NewSlogLogger().WithGroup("svc").With("name", "http-server")
	logger.Warn("service restarted", slog.Int("attempt", 2))

	entry := decodeLine(t, strings.TrimSpace(buf.String()))
	if entry["level"] != "warn" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["svc.name"] != "http-server" {
		t.Errorf("svc.name = %v", entry["svc.name"])
	}
	if entry["svc.attempt"] != float64(2) {
		t.Errorf("svc.attempt = %v", entry["svc.attempt"])
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	captureGlobal(t, "error")

	h := NewSlogHandler()
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at error level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled")
	}
}
