// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Command seed loads the demo movie catalog into the configured store and
// prints a distribution report.
//
// Store and seed settings come from the same configuration as the server;
// flags override them for one run:
//
//	seed -wipe=false -count 500 -rate 2
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/seed"
	"github.com/tomtom215/cinecatalog/internal/store/backend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	flag.BoolVar(&cfg.Seed.Wipe, "wipe", cfg.Seed.Wipe, "delete every movie before inserting")
	flag.IntVar(&cfg.Seed.GeneratedCount, "count", cfg.Seed.GeneratedCount, "number of generated movies added to the curated set")
	flag.IntVar(&cfg.Seed.BatchSize, "batch", cfg.Seed.BatchSize, "movies per insert")
	flag.Float64Var(&cfg.Seed.BatchesPerSecond, "rate", cfg.Seed.BatchesPerSecond, "insert batches per second, 0 for unpaced")
	flag.Int64Var(&cfg.Seed.RandomSeed, "seed", cfg.Seed.RandomSeed, "random seed for generated movies")
	flag.IntVar(&cfg.Seed.MinYear, "min-year", cfg.Seed.MinYear, "drop movies released before this year")
	flag.StringVar(&cfg.Store.Backend, "store", cfg.Store.Backend, "store backend: duckdb, badger or mongo")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := backend.Open(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := s.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	res, err := seed.New(s, cfg.Seed).Run(ctx)
	if err != nil {
		logging.Error().Err(err).Msg("Seeding failed")
		stop()
		_ = s.Close()
		os.Exit(1)
	}

	if err := seed.WriteReport(os.Stdout, res.Report); err != nil {
		logging.Error().Err(err).Msg("Failed to write report")
	}
}
