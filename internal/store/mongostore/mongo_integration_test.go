// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

//go:build integration

package mongostore

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/store"
	"github.com/tomtom215/cinecatalog/internal/store/storetest"
	"github.com/tomtom215/cinecatalog/internal/testinfra"
)

// TestStore_Container runs the backend suite against a MongoDB container.
func TestStore_Container(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	mongo, err := testinfra.NewMongoContainer(ctx)
	if err != nil {
		t.Fatalf("start mongo: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, mongo)

	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := Open(ctx, &config.MongoConfig{
			URI:            mongo.URI,
			Database:       "cinecatalog_it",
			Collection:     "movies_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
			ConnectTimeout: 10 * time.Second,
		})
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		return droppingStore{s}
	})
}
