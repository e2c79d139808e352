// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package guard decorates a store.Store with the per-call concerns every
// backend shares: a query timeout, a circuit breaker, Prometheus metrics and
// an OpenTelemetry span.
//
// The breaker never retries. It only turns a run of ErrStoreUnavailable
// failures into immediate ErrStoreUnavailable rejections until the backend
// has had Timeout to recover. NotFound and InvalidQuery results count as
// successes.
package guard

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/metrics"
	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
	"github.com/tomtom215/cinecatalog/internal/store"
)

const tracerName = "github.com/tomtom215/cinecatalog/internal/store/guard"

// Store wraps another store.Store.
type Store struct {
	next    store.Store
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[interface{}]
	name    string
	tracer  trace.Tracer
}

var _ store.Store = (*Store)(nil)

// Wrap returns next guarded by cfg. A disabled breaker leaves only the
// timeout, metrics and tracing in place.
func Wrap(next store.Store, cfg config.StoreConfig) *Store {
	g := &Store{
		next:    next,
		timeout: cfg.QueryTimeout,
		name:    "store-" + next.Name(),
		tracer:  otel.Tracer(tracerName),
	}
	if cfg.Breaker.Enabled {
		g.cb = newBreaker(g.name, cfg.Breaker)
	}
	return g
}

func newBreaker(name string, cfg config.BreakerConfig) *gobreaker.CircuitBreaker[interface{}] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
		IsSuccessful: isSuccessful,
	})
}

// isSuccessful decides what the breaker counts as a backend failure.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	return !errors.Is(err, models.ErrStoreUnavailable)
}

// State reports the breaker state ("closed", "half-open", "open"), or
// "disabled".
func (g *Store) State() string {
	if g.cb == nil {
		return "disabled"
	}
	return stateToString(g.cb.State())
}

// Unwrap returns the guarded store.
func (g *Store) Unwrap() store.Store { return g.next }

// do runs fn with the timeout, span, breaker and metrics applied.
func do[T any](ctx context.Context, g *Store, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ctx, span := g.tracer.Start(ctx, "store."+op, trace.WithAttributes(
		attribute.String("db.system", g.next.Name()),
		attribute.String("db.operation", op),
	))
	defer span.End()

	start := time.Now()
	result, err := g.execute(ctx, op, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	metrics.RecordStoreOperation(g.next.Name(), op, time.Since(start), err)

	if err != nil {
		if !isSuccessful(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("store %s: unexpected result type %T", op, result)
	}
	return typed, nil
}

func (g *Store) execute(ctx context.Context, op string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	if g.cb == nil {
		return fn(ctx)
	}

	result, err := g.cb.Execute(func() (interface{}, error) {
		return fn(ctx)
	})
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, "rejected").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("operation", op).Msg("[CIRCUIT BREAKER] Request rejected")
		return nil, models.Unavailable(op, err)
	case isSuccessful(err):
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, "success").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, "failure").Inc()
	}
	return result, err
}

// none is the result type of operations that only return an error.
type none struct{}

func (g *Store) Name() string { return g.next.Name() }

func (g *Store) Find(ctx context.Context, pred query.Predicate, keys []query.SortKey, skip, limit int) ([]models.Movie, error) {
	return do(ctx, g, "find", func(ctx context.Context) ([]models.Movie, error) {
		return g.next.Find(ctx, pred, keys, skip, limit)
	})
}

func (g *Store) Count(ctx context.Context, pred query.Predicate) (int64, error) {
	return do(ctx, g, "count", func(ctx context.Context) (int64, error) {
		return g.next.Count(ctx, pred)
	})
}

func (g *Store) Get(ctx context.Context, id string) (*models.Movie, error) {
	return do(ctx, g, "get", func(ctx context.Context) (*models.Movie, error) {
		return g.next.Get(ctx, id)
	})
}

func (g *Store) Insert(ctx context.Context, movies ...models.Movie) error {
	_, err := do(ctx, g, "insert", func(ctx context.Context) (none, error) {
		return none{}, g.next.Insert(ctx, movies...)
	})
	return err
}

func (g *Store) Replace(ctx context.Context, m *models.Movie) error {
	_, err := do(ctx, g, "replace", func(ctx context.Context) (none, error) {
		return none{}, g.next.Replace(ctx, m)
	})
	return err
}

func (g *Store) Delete(ctx context.Context, id string) error {
	_, err := do(ctx, g, "delete", func(ctx context.Context) (none, error) {
		return none{}, g.next.Delete(ctx, id)
	})
	return err
}

func (g *Store) DeleteAll(ctx context.Context) (int64, error) {
	return do(ctx, g, "delete_all", func(ctx context.Context) (int64, error) {
		return g.next.DeleteAll(ctx)
	})
}

func (g *Store) Analytics(ctx context.Context) (*models.Analytics, error) {
	return do(ctx, g, "analytics", func(ctx context.Context) (*models.Analytics, error) {
		return g.next.Analytics(ctx)
	})
}

func (g *Store) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return do(ctx, g, "filter_options", func(ctx context.Context) (*models.FilterOptions, error) {
		return g.next.FilterOptions(ctx)
	})
}

// Ping bypasses the breaker so health checks observe the backend itself.
func (g *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	ctx, span := g.tracer.Start(ctx, "store.ping")
	defer span.End()
	return g.next.Ping(ctx)
}

func (g *Store) Close() error { return g.next.Close() }

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
