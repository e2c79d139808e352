// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package store defines the document store contract shared by the DuckDB,
// Badger and MongoDB backends, and the pagination engine that runs on top
// of it.
//
// Backends wrap connectivity and timeout failures with
// models.ErrStoreUnavailable and unknown ids with models.ErrNotFound. They
// never retry.
package store

import (
	"context"

	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
)

// Reader is the read half used by listing and pagination.
type Reader interface {
	// Find returns up to limit movies matching pred, ordered by keys, after
	// skipping skip matches.
	Find(ctx context.Context, pred query.Predicate, keys []query.SortKey, skip, limit int) ([]models.Movie, error)

	// Count returns the number of movies matching pred.
	Count(ctx context.Context, pred query.Predicate) (int64, error)
}

// Store is a movie document store.
type Store interface {
	Reader

	// Name identifies the backend in health output and metrics.
	Name() string

	Get(ctx context.Context, id string) (*models.Movie, error)

	// Insert adds movies in one batch. IDs must already be assigned.
	Insert(ctx context.Context, movies ...models.Movie) error

	// Replace overwrites the stored document with the same ID.
	Replace(ctx context.Context, m *models.Movie) error

	Delete(ctx context.Context, id string) error

	// DeleteAll empties the catalog and reports how many movies were removed.
	DeleteAll(ctx context.Context) (int64, error)

	Analytics(ctx context.Context) (*models.Analytics, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)

	Ping(ctx context.Context) error
	Close() error
}
