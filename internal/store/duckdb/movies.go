// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
)

const selectColumns = `id, title, genre_json, rating, year, movie_language, movie_country,
	description, poster_url, director, cast_json, runtime, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovie(row rowScanner) (models.Movie, error) {
	var m models.Movie
	var genreJSON, castJSON string
	if err := row.Scan(&m.ID, &m.Title, &genreJSON, &m.Rating, &m.Year, &m.Language, &m.Country,
		&m.Description, &m.PosterURL, &m.Director, &castJSON, &m.Runtime, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return m, err
	}
	if err := json.Unmarshal([]byte(genreJSON), &m.Genre); err != nil {
		return m, fmt.Errorf("decode genre of %s: %w", m.ID, err)
	}
	if err := json.Unmarshal([]byte(castJSON), &m.Cast); err != nil {
		return m, fmt.Errorf("decode cast of %s: %w", m.ID, err)
	}
	if m.Cast == nil {
		m.Cast = []string{}
	}
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}

// Find implements store.Reader.
func (s *Store) Find(ctx context.Context, pred query.Predicate, keys []query.SortKey, skip, limit int) ([]models.Movie, error) {
	wb, err := whereFor(pred)
	if err != nil {
		return nil, err
	}
	order, err := orderBy(keys)
	if err != nil {
		return nil, err
	}
	where, args := wb.BuildWithPrefix()
	args = append(args, int64(limit), int64(skip))

	q := fmt.Sprintf("SELECT %s FROM movies %s ORDER BY %s LIMIT ? OFFSET ?", selectColumns, where, order)
	rows, err := s.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, models.Unavailable("duckdb find", err)
	}
	defer closeQuietly(rows)

	movies := make([]models.Movie, 0, limit)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, models.Unavailable("duckdb find", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Unavailable("duckdb find", err)
	}
	return movies, nil
}

// Count implements store.Reader.
func (s *Store) Count(ctx context.Context, pred query.Predicate) (int64, error) {
	wb, err := whereFor(pred)
	if err != nil {
		return 0, err
	}
	where, args := wb.BuildWithPrefix()

	var n int64
	if err := s.conn.QueryRowContext(ctx, "SELECT count(*) FROM movies "+where, args...).Scan(&n); err != nil {
		return 0, models.Unavailable("duckdb count", err)
	}
	return n, nil
}

// Get returns one movie by id.
func (s *Store) Get(ctx context.Context, id string) (*models.Movie, error) {
	row := s.conn.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM movies WHERE id = ?", id)
	m, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFoundID(id)
	}
	if err != nil {
		return nil, models.Unavailable("duckdb get", err)
	}
	return &m, nil
}

// Insert adds movies in a single transaction.
func (s *Store) Insert(ctx context.Context, movies ...models.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return models.Unavailable("duckdb insert", err)
	}
	defer rollbackQuietly(tx)

	insert, err := tx.PrepareContext(ctx, `INSERT INTO movies (`+selectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Unavailable("duckdb insert", err)
	}
	defer closeQuietly(insert)

	for i := range movies {
		m := &movies[i]
		genreJSON, castJSON, err := encodeLists(m)
		if err != nil {
			return err
		}
		if _, err := insert.ExecContext(ctx, m.ID, m.Title, genreJSON, m.Rating, m.Year, m.Language, m.Country,
			m.Description, m.PosterURL, m.Director, castJSON, m.Runtime, m.CreatedAt.UTC(), m.UpdatedAt.UTC()); err != nil {
			return models.Unavailable("duckdb insert", err)
		}
		if err := insertGenres(ctx, tx, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Unavailable("duckdb insert", err)
	}
	return nil
}

// Replace overwrites every field except id.
func (s *Store) Replace(ctx context.Context, m *models.Movie) error {
	genreJSON, castJSON, err := encodeLists(m)
	if err != nil {
		return err
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return models.Unavailable("duckdb replace", err)
	}
	defer rollbackQuietly(tx)

	res, err := tx.ExecContext(ctx, `UPDATE movies SET
			title = ?, genre_json = ?, rating = ?, year = ?, movie_language = ?, movie_country = ?,
			description = ?, poster_url = ?, director = ?, cast_json = ?, runtime = ?,
			created_at = ?, updated_at = ?
		WHERE id = ?`,
		m.Title, genreJSON, m.Rating, m.Year, m.Language, m.Country,
		m.Description, m.PosterURL, m.Director, castJSON, m.Runtime,
		m.CreatedAt.UTC(), m.UpdatedAt.UTC(), m.ID)
	if err != nil {
		return models.Unavailable("duckdb replace", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Unavailable("duckdb replace", err)
	} else if n == 0 {
		return models.NotFoundID(m.ID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM movie_genres WHERE movie_id = ?", m.ID); err != nil {
		return models.Unavailable("duckdb replace", err)
	}
	if err := insertGenres(ctx, tx, m); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return models.Unavailable("duckdb replace", err)
	}
	return nil
}

// Delete removes one movie and its genre rows.
func (s *Store) Delete(ctx context.Context, id string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return models.Unavailable("duckdb delete", err)
	}
	defer rollbackQuietly(tx)

	if _, err := tx.ExecContext(ctx, "DELETE FROM movie_genres WHERE movie_id = ?", id); err != nil {
		return models.Unavailable("duckdb delete", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return models.Unavailable("duckdb delete", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Unavailable("duckdb delete", err)
	} else if n == 0 {
		return models.NotFoundID(id)
	}

	if err := tx.Commit(); err != nil {
		return models.Unavailable("duckdb delete", err)
	}
	return nil
}

// DeleteAll empties both tables.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, models.Unavailable("duckdb delete all", err)
	}
	defer rollbackQuietly(tx)

	if _, err := tx.ExecContext(ctx, "DELETE FROM movie_genres"); err != nil {
		return 0, models.Unavailable("duckdb delete all", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM movies")
	if err != nil {
		return 0, models.Unavailable("duckdb delete all", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, models.Unavailable("duckdb delete all", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, models.Unavailable("duckdb delete all", err)
	}
	return n, nil
}

func encodeLists(m *models.Movie) (string, string, error) {
	genre := m.Genre
	if genre == nil {
		genre = []string{}
	}
	cast := m.Cast
	if cast == nil {
		cast = []string{}
	}
	g, err := json.Marshal(genre)
	if err != nil {
		return "", "", fmt.Errorf("encode genre of %s: %w", m.ID, err)
	}
	c, err := json.Marshal(cast)
	if err != nil {
		return "", "", fmt.Errorf("encode cast of %s: %w", m.ID, err)
	}
	return string(g), string(c), nil
}

func insertGenres(ctx context.Context, tx *sql.Tx, m *models.Movie) error {
	for pos, g := range m.Genre {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO movie_genres (movie_id, position, genre) VALUES (?, ?, ?)", m.ID, pos, g); err != nil {
			return models.Unavailable("duckdb genres", err)
		}
	}
	return nil
}
