// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package services

import (
	"context"
	"time"

	"github.com/tomtom215/cinecatalog/internal/logging"
)

// GarbageCollector reclaims space in a key-value store. RunGC returns nil
// once there is nothing left to reclaim. Implemented by *badgerstore.Store.
type GarbageCollector interface {
	RunGC(discardRatio float64) error
}

// GCService periodically runs value-log garbage collection.
type GCService struct {
	gc       GarbageCollector
	interval time.Duration
	ratio    float64
}

// NewGCService runs gc every interval with the given discard ratio.
func NewGCService(gc GarbageCollector, interval time.Duration, ratio float64) *GCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}
	return &GCService{gc: gc, interval: interval, ratio: ratio}
}

// Serve implements suture.Service.
func (s *GCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.gc.RunGC(s.ratio); err != nil {
				logging.Warn().Err(err).Msg("Store garbage collection failed")
			}
		}
	}
}

func (s *GCService) String() string {
	return "store-gc"
}
