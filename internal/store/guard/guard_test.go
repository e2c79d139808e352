// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
	"github.com/tomtom215/cinecatalog/internal/store"
	"github.com/tomtom215/cinecatalog/internal/store/storetest"
)

func testConfig() config.StoreConfig {
	return config.StoreConfig{
		QueryTimeout: time.Second,
		Breaker: config.BreakerConfig{
			Enabled:      true,
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Hour,
			MinRequests:  3,
			FailureRatio: 0.5,
		},
	}
}

func TestGuard_Suite(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return Wrap(storetest.NewMemory(), testConfig())
	})
}

func TestGuard_BreakerOpensAndRejects(t *testing.T) {
	mem := storetest.NewMemory(storetest.Fixture()...)
	g := Wrap(mem, testConfig())
	ctx := context.Background()

	mem.Fail(errors.New("connection refused"))
	for i := 0; i < 3; i++ {
		if _, err := g.Count(ctx, query.Predicate{}); !errors.Is(err, models.ErrStoreUnavailable) {
			t.Fatalf("call %d: err = %v, want ErrStoreUnavailable", i, err)
		}
	}
	if g.State() != "open" {
		t.Fatalf("State = %q, want open", g.State())
	}

	// Recovery of the backend is not observed while the breaker is open.
	mem.Fail(nil)
	calls := mem.Calls()
	_, err := g.Find(ctx, query.Predicate{}, nil, 0, 10)
	if !errors.Is(err, models.ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
	if mem.Calls() != calls {
		t.Error("open breaker should not reach the backend")
	}

	// Ping bypasses the breaker.
	if err := g.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestGuard_NotFoundDoesNotTrip(t *testing.T) {
	g := Wrap(storetest.NewMemory(), testConfig())
	for i := 0; i < 10; i++ {
		if _, err := g.Get(context.Background(), "missing"); !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	}
	if g.State() != "closed" {
		t.Errorf("State = %q, want closed", g.State())
	}
}

func TestGuard_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Breaker.Enabled = false
	mem := storetest.NewMemory()
	g := Wrap(mem, cfg)

	mem.Fail(errors.New("down"))
	for i := 0; i < 5; i++ {
		_, _ = g.Count(context.Background(), query.Predicate{})
	}
	if g.State() != "disabled" {
		t.Errorf("State = %q", g.State())
	}
	if mem.Calls() != 5 {
		t.Errorf("Calls = %d, want 5", mem.Calls())
	}
	if g.Unwrap() != store.Store(mem) {
		t.Error("Unwrap should return the wrapped store")
	}
}

func TestIsSuccessful(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, true},
		{models.NotFoundID("x"), true},
		{models.InvalidQueryf("bad"), true},
		{context.Canceled, true},
		{models.Unavailable("find", errors.New("io")), false},
	}
	for _, tt := range tests {
		if got := isSuccessful(tt.err); got != tt.want {
			t.Errorf("isSuccessful(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
