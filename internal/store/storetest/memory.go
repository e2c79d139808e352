// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package storetest provides an in-memory store and a behavior suite that
// every store backend must pass.
package storetest

import (
	"context"
	"sync"

	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
)

// Memory is a map-backed store for tests. Setting Err makes every call fail
// with models.ErrStoreUnavailable wrapping it.
type Memory struct {
	mu     sync.RWMutex
	movies map[string]models.Movie
	err    error
	calls  int
}

// NewMemory returns an empty Memory store holding movies.
func NewMemory(movies ...models.Movie) *Memory {
	m := &Memory{movies: make(map[string]models.Movie)}
	for i := range movies {
		m.movies[movies[i].ID] = clone(movies[i])
	}
	return m
}

// Fail makes subsequent calls fail; nil restores normal operation.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Calls reports how many store operations reached the backend.
func (m *Memory) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

func (m *Memory) enter(op string) error {
	m.calls++
	if m.err != nil {
		return models.Unavailable(op, m.err)
	}
	return nil
}

func clone(mv models.Movie) models.Movie {
	mv.Genre = append([]string(nil), mv.Genre...)
	mv.Cast = append([]string(nil), mv.Cast...)
	return mv
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) snapshot(pred query.Predicate) []models.Movie {
	out := make([]models.Movie, 0, len(m.movies))
	for _, mv := range m.movies {
		if pred.Match(&mv) {
			out = append(out, clone(mv))
		}
	}
	return out
}

func (m *Memory) Find(_ context.Context, pred query.Predicate, keys []query.SortKey, skip, limit int) ([]models.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("find"); err != nil {
		return nil, err
	}
	matches := m.snapshot(pred)
	query.SortMovies(matches, keys)
	return query.Window(matches, skip, limit), nil
}

func (m *Memory) Count(_ context.Context, pred query.Predicate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("count"); err != nil {
		return 0, err
	}
	return int64(len(m.snapshot(pred))), nil
}

func (m *Memory) Get(_ context.Context, id string) (*models.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("get"); err != nil {
		return nil, err
	}
	mv, ok := m.movies[id]
	if !ok {
		return nil, models.NotFoundID(id)
	}
	mv = clone(mv)
	return &mv, nil
}

func (m *Memory) Insert(_ context.Context, movies ...models.Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("insert"); err != nil {
		return err
	}
	for i := range movies {
		m.movies[movies[i].ID] = clone(movies[i])
	}
	return nil
}

func (m *Memory) Replace(_ context.Context, mv *models.Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("replace"); err != nil {
		return err
	}
	if _, ok := m.movies[mv.ID]; !ok {
		return models.NotFoundID(mv.ID)
	}
	m.movies[mv.ID] = clone(*mv)
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("delete"); err != nil {
		return err
	}
	if _, ok := m.movies[id]; !ok {
		return models.NotFoundID(id)
	}
	delete(m.movies, id)
	return nil
}

func (m *Memory) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("delete_all"); err != nil {
		return 0, err
	}
	n := int64(len(m.movies))
	m.movies = make(map[string]models.Movie)
	return n, nil
}

func (m *Memory) Analytics(_ context.Context) (*models.Analytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("analytics"); err != nil {
		return nil, err
	}
	return query.Aggregate(m.snapshot(query.Predicate{})), nil
}

func (m *Memory) FilterOptions(_ context.Context) (*models.FilterOptions, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("filter_options"); err != nil {
		return nil, err
	}
	return query.Options(m.snapshot(query.Predicate{})), nil
}

func (m *Memory) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enter("ping")
}

func (m *Memory) Close() error { return nil }
