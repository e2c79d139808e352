// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package backend opens the store selected by configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/store"
	"github.com/tomtom215/cinecatalog/internal/store/badgerstore"
	"github.com/tomtom215/cinecatalog/internal/store/duckdb"
	"github.com/tomtom215/cinecatalog/internal/store/mongostore"
)

// Open returns the configured backend. The caller owns Close.
func Open(ctx context.Context, cfg *config.Config) (store.Store, error) {
	var (
		s   store.Store
		err error
	)
	switch cfg.Store.Backend {
	case config.BackendDuckDB:
		s, err = asStore(duckdb.New(&cfg.Database))
	case config.BackendBadger:
		s, err = asStore(badgerstore.Open(&cfg.Badger))
	case config.BackendMongo:
		s, err = asStore(mongostore.Open(ctx, &cfg.Mongo))
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	return s, nil
}

// asStore avoids returning a typed nil inside a non-nil interface.
func asStore[T store.Store](s T, err error) (store.Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
