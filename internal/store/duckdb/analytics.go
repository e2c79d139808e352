// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package duckdb

import (
	"context"

	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
)

// Analytics aggregates the whole catalog in SQL.
func (s *Store) Analytics(ctx context.Context) (*models.Analytics, error) {
	a := models.EmptyAnalytics()

	err := s.conn.QueryRowContext(ctx, `SELECT count(*),
			coalesce(avg(rating), 0), coalesce(min(rating), 0), coalesce(max(rating), 0)
		FROM movies`).Scan(&a.TotalMovies, &a.Rating.Average, &a.Rating.Min, &a.Rating.Max)
	if err != nil {
		return nil, models.Unavailable("duckdb analytics", err)
	}
	a.Rating.Average = query.RoundRating(a.Rating.Average)

	if a.Languages, err = s.textBuckets(ctx,
		"SELECT movie_language, count(*) FROM movies GROUP BY 1"); err != nil {
		return nil, err
	}
	if a.Countries, err = s.textBuckets(ctx,
		"SELECT movie_country, count(*) FROM movies GROUP BY 1"); err != nil {
		return nil, err
	}
	if a.Genres, err = s.textBuckets(ctx,
		"SELECT genre, count(*) FROM movie_genres GROUP BY 1"); err != nil {
		return nil, err
	}
	if a.Years, err = s.yearBuckets(ctx,
		"SELECT year, count(*) FROM movies GROUP BY 1"); err != nil {
		return nil, err
	}
	if a.Decades, err = s.yearBuckets(ctx,
		"SELECT year - year % 10 AS decade, count(*) FROM movies GROUP BY 1"); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) textBuckets(ctx context.Context, q string) ([]models.Bucket, error) {
	rows, err := s.conn.QueryContext(ctx, q)
	if err != nil {
		return nil, models.Unavailable("duckdb analytics", err)
	}
	defer closeQuietly(rows)

	out := []models.Bucket{}
	for rows.Next() {
		var b models.Bucket
		if err := rows.Scan(&b.Value, &b.Count); err != nil {
			return nil, models.Unavailable("duckdb analytics", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Unavailable("duckdb analytics", err)
	}
	models.SortBuckets(out)
	return out, nil
}

func (s *Store) yearBuckets(ctx context.Context, q string) ([]models.YearBucket, error) {
	rows, err := s.conn.QueryContext(ctx, q)
	if err != nil {
		return nil, models.Unavailable("duckdb analytics", err)
	}
	defer closeQuietly(rows)

	out := []models.YearBucket{}
	for rows.Next() {
		var b models.YearBucket
		if err := rows.Scan(&b.Year, &b.Count); err != nil {
			return nil, models.Unavailable("duckdb analytics", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Unavailable("duckdb analytics", err)
	}
	models.SortYearBucketsDesc(out)
	return out, nil
}

// FilterOptions reads distinct languages, countries and years.
func (s *Store) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	opts := &models.FilterOptions{}
	var err error
	if opts.Languages, err = s.distinctText(ctx, "SELECT DISTINCT movie_language FROM movies"); err != nil {
		return nil, err
	}
	if opts.Countries, err = s.distinctText(ctx, "SELECT DISTINCT movie_country FROM movies"); err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx, "SELECT DISTINCT year FROM movies")
	if err != nil {
		return nil, models.Unavailable("duckdb filter options", err)
	}
	defer closeQuietly(rows)
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, models.Unavailable("duckdb filter options", err)
		}
		opts.Years = append(opts.Years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Unavailable("duckdb filter options", err)
	}
	return query.NormalizeOptions(opts), nil
}

func (s *Store) distinctText(ctx context.Context, q string) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx, q)
	if err != nil {
		return nil, models.Unavailable("duckdb filter options", err)
	}
	defer closeQuietly(rows)

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, models.Unavailable("duckdb filter options", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Unavailable("duckdb filter options", err)
	}
	return out, nil
}
