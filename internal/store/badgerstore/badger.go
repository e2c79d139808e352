// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package badgerstore keeps movies as JSON documents in BadgerDB. Badger has
// no query language, so filters, ordering and aggregation run in memory over
// a prefix scan using the query package.
package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
)

const movieKeyPrefix = "movie:"

// ErrClosed is returned after Close.
var ErrClosed = errors.New("badger store is closed")

// Store implements store.Store on BadgerDB.
type Store struct {
	db       *badger.DB
	inMemory bool

	mu     sync.RWMutex
	closed bool
}

// Open opens the database described by cfg.
func Open(cfg *config.BadgerConfig) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Compression = options.Snappy
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("Badger movie store opened")
	return &Store{db: db, inMemory: cfg.InMemory}, nil
}

func movieKey(id string) []byte {
	return []byte(movieKeyPrefix + id)
}

// Name implements store.Store.
func (s *Store) Name() string { return config.BackendBadger }

func (s *Store) check(ctx context.Context, op string) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return models.Unavailable(op, ErrClosed)
	}
	if err := ctx.Err(); err != nil {
		return models.Unavailable(op, err)
	}
	return nil
}

// scan decodes every movie matching pred.
func (s *Store) scan(ctx context.Context, op string, pred query.Predicate) ([]models.Movie, error) {
	if err := s.check(ctx, op); err != nil {
		return nil, err
	}

	var out []models.Movie
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = []byte(movieKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		n := 0
		for it.Rewind(); it.Valid(); it.Next() {
			if n++; n%256 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			var m models.Movie
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			if pred.Match(&m) {
				out = append(out, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, models.Unavailable(op, err)
	}
	return out, nil
}

// Find implements store.Reader.
func (s *Store) Find(ctx context.Context, pred query.Predicate, keys []query.SortKey, skip, limit int) ([]models.Movie, error) {
	matches, err := s.scan(ctx, "badger find", pred)
	if err != nil {
		return nil, err
	}
	query.SortMovies(matches, keys)
	return query.Window(matches, skip, limit), nil
}

// Count implements store.Reader.
func (s *Store) Count(ctx context.Context, pred query.Predicate) (int64, error) {
	matches, err := s.scan(ctx, "badger count", pred)
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}

// Get returns one movie by id.
func (s *Store) Get(ctx context.Context, id string) (*models.Movie, error) {
	if err := s.check(ctx, "badger get"); err != nil {
		return nil, err
	}
	var m models.Movie
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(movieKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &m)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, models.NotFoundID(id)
	}
	if err != nil {
		return nil, models.Unavailable("badger get", err)
	}
	return &m, nil
}

// Insert writes movies through a WriteBatch.
func (s *Store) Insert(ctx context.Context, movies ...models.Movie) error {
	if err := s.check(ctx, "badger insert"); err != nil {
		return err
	}
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for i := range movies {
		data, err := json.Marshal(&movies[i])
		if err != nil {
			return fmt.Errorf("marshal movie %s: %w", movies[i].ID, err)
		}
		if err := wb.Set(movieKey(movies[i].ID), data); err != nil {
			return models.Unavailable("badger insert", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return models.Unavailable("badger insert", err)
	}
	return nil
}

// Replace overwrites an existing document.
func (s *Store) Replace(ctx context.Context, m *models.Movie) error {
	if err := s.check(ctx, "badger replace"); err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal movie %s: %w", m.ID, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(movieKey(m.ID)); err != nil {
			return err
		}
		return txn.Set(movieKey(m.ID), data)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.NotFoundID(m.ID)
	}
	if err != nil {
		return models.Unavailable("badger replace", err)
	}
	return nil
}

// Delete removes one document.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.check(ctx, "badger delete"); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(movieKey(id)); err != nil {
			return err
		}
		return txn.Delete(movieKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.NotFoundID(id)
	}
	if err != nil {
		return models.Unavailable("badger delete", err)
	}
	return nil
}

// DeleteAll drops every movie key.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.Count(ctx, query.Predicate{})
	if err != nil {
		return 0, err
	}
	if err := s.db.DropPrefix([]byte(movieKeyPrefix)); err != nil {
		return 0, models.Unavailable("badger delete all", err)
	}
	return n, nil
}

// Analytics aggregates a full scan.
func (s *Store) Analytics(ctx context.Context) (*models.Analytics, error) {
	all, err := s.scan(ctx, "badger analytics", query.Predicate{})
	if err != nil {
		return nil, err
	}
	return query.Aggregate(all), nil
}

// FilterOptions collects distinct values from a full scan.
func (s *Store) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	all, err := s.scan(ctx, "badger filter options", query.Predicate{})
	if err != nil {
		return nil, err
	}
	return query.Options(all), nil
}

// Ping reports whether the store is open.
func (s *Store) Ping(ctx context.Context) error {
	return s.check(ctx, "badger ping")
}

// RunGC reclaims value log space until Badger reports nothing to rewrite.
// It is a no-op for in-memory stores.
func (s *Store) RunGC(ratio float64) error {
	if s.inMemory {
		return nil
	}
	if err := s.check(context.Background(), "badger gc"); err != nil {
		return err
	}
	for {
		err := s.db.RunValueLogGC(ratio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// GCInterval is how often the supervisor runs RunGC.
const GCInterval = 10 * time.Minute

// Close closes the database. Further calls fail with ErrStoreUnavailable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
