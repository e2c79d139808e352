// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package seed loads the demo catalog: a curated set of real movies plus
// deterministic synthetic ones, inserted in paced batches.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/metrics"
	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/store"
)

// Result summarizes one seeding run.
type Result struct {
	Wiped    int64
	Inserted int
	Batches  int
	Duration time.Duration
	Report   *models.Analytics
}

// Seeder writes the demo catalog into a store.
type Seeder struct {
	store   store.Store
	cfg     config.SeedConfig
	limiter *rate.Limiter
	now     func() time.Time
	newID   func() string
}

// New returns a Seeder. BatchesPerSecond <= 0 disables pacing.
func New(s store.Store, cfg config.SeedConfig) *Seeder {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	limit := rate.Inf
	if cfg.BatchesPerSecond > 0 {
		limit = rate.Limit(cfg.BatchesPerSecond)
	}
	return &Seeder{
		store:   s,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
		newID:   func() string { return ksuid.New().String() },
	}
}

// Dataset returns the movies a run would insert, without identity or
// timestamps. Movies released before MinYear are dropped.
func (s *Seeder) Dataset() []models.Movie {
	all := append(Curated(), NewGenerator(s.cfg.RandomSeed).Generate(s.cfg.GeneratedCount)...)
	kept := all[:0]
	for i := range all {
		if all[i].Year >= s.cfg.MinYear {
			kept = append(kept, all[i])
		}
	}
	return kept
}

// Run optionally wipes the store, inserts the dataset and returns the
// resulting analytics.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	start := s.now()
	log := logging.WithComponent("seed")

	if s.cfg.Wipe {
		n, err := s.store.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("wipe catalog: %w", err)
		}
		res.Wiped = n
		log.Info().Int64("removed", n).Msg("Cleared existing movies")
	}

	movies := s.Dataset()
	stamp := s.now().UTC()
	for i := range movies {
		movies[i].ID = s.newID()
		movies[i].ApplyDefaults()
		movies[i].CreatedAt = stamp
		movies[i].UpdatedAt = stamp
	}

	log.Info().
		Int("movies", len(movies)).
		Int("batch_size", s.cfg.BatchSize).
		Int("min_year", s.cfg.MinYear).
		Msg("Seeding catalog")

	for lo := 0; lo < len(movies); lo += s.cfg.BatchSize {
		hi := min(lo+s.cfg.BatchSize, len(movies))

		if err := s.limiter.Wait(ctx); err != nil {
			return res, fmt.Errorf("seed batch %d: %w", res.Batches+1, err)
		}
		if err := s.store.Insert(ctx, movies[lo:hi]...); err != nil {
			return res, fmt.Errorf("seed batch %d: %w", res.Batches+1, err)
		}

		res.Batches++
		res.Inserted += hi - lo
		metrics.SeedMoviesInserted.Add(float64(hi - lo))

		log.Info().
			Int("batch", res.Batches).
			Int("inserted", res.Inserted).
			Int("total", len(movies)).
			Str("progress", fmt.Sprintf("%.1f%%", float64(res.Inserted)*100/float64(len(movies)))).
			Msg("Inserted batch")
	}

	res.Duration = s.now().Sub(start)

	report, err := s.store.Analytics(ctx)
	if err != nil {
		return res, fmt.Errorf("seed report: %w", err)
	}
	res.Report = report

	log.Info().
		Int("inserted", res.Inserted).
		Dur("duration", res.Duration).
		Msg("Seeding complete")
	return res, nil
}
