// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package duckdb

import (
	"context"
	"fmt"
)

// genre and cast keep their order as JSON text; movie_genres is the
// queryable copy of genre.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id             VARCHAR PRIMARY KEY,
		title          VARCHAR NOT NULL,
		genre_json     VARCHAR NOT NULL,
		rating         DOUBLE NOT NULL,
		year           INTEGER NOT NULL,
		movie_language VARCHAR NOT NULL,
		movie_country  VARCHAR NOT NULL,
		description    VARCHAR NOT NULL,
		poster_url     VARCHAR NOT NULL,
		director       VARCHAR NOT NULL,
		cast_json      VARCHAR NOT NULL,
		runtime        INTEGER NOT NULL,
		created_at     TIMESTAMP NOT NULL,
		updated_at     TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS movie_genres (
		movie_id VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		genre    VARCHAR NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movie_genres_genre ON movie_genres(genre)`,
	`CREATE INDEX IF NOT EXISTS idx_movie_genres_movie ON movie_genres(movie_id)`,
}

func (s *Store) initialize(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
