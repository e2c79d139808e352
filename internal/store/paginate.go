// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package store

import (
	"context"

	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
)

// Paginate runs the two reads behind one listing page: the windowed items
// and the total match count. Either failure fails the whole page so callers
// never see partial data.
func Paginate(ctx context.Context, r Reader, q query.Compiled, page query.Page) (*models.MoviePage, error) {
	skip := page.Skip()

	items, err := r.Find(ctx, q.Predicate, q.Sort, skip, page.Size)
	if err != nil {
		return nil, err
	}
	total, err := r.Count(ctx, q.Predicate)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []models.Movie{}
	}
	return &models.MoviePage{
		Items: items,
		Meta:  page.Meta(total, len(items)),
	}, nil
}
