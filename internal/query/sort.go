// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package query

import (
	"sort"
	"strings"

	"github.com/tomtom215/cinecatalog/internal/models"
)

// DefaultSort is applied when no sortBy token is given.
const DefaultSort = "-rating"

// SortKey orders results by one field.
type SortKey struct {
	Field      Field
	Descending bool
}

var sortableFields = map[string]Field{
	"rating":    FieldRating,
	"year":      FieldYear,
	"title":     FieldTitle,
	"runtime":   FieldRuntime,
	"createdAt": FieldCreatedAt,
	"updatedAt": FieldUpdatedAt,
}

// ParseSort converts a signed token ("-rating", "year") into sort keys.
// A leading "-" means descending. An _id ascending tie-break is always
// appended so that pagination windows never overlap.
func ParseSort(token string) ([]SortKey, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		token = DefaultSort
	}

	desc := strings.HasPrefix(token, "-")
	name := strings.TrimPrefix(token, "-")

	field, ok := sortableFields[name]
	if !ok {
		return nil, models.InvalidQueryf("unknown sort field %q", name)
	}
	return []SortKey{
		{Field: field, Descending: desc},
		{Field: FieldID},
	}, nil
}

// SortMovies orders movies in place by keys.
func SortMovies(movies []models.Movie, keys []SortKey) {
	sort.SliceStable(movies, func(i, j int) bool {
		return Less(&movies[i], &movies[j], keys)
	})
}

// Less reports whether a sorts before b under keys.
func Less(a, b *models.Movie, keys []SortKey) bool {
	for _, k := range keys {
		c := compareField(a, b, k.Field)
		if c == 0 {
			continue
		}
		if k.Descending {
			return c > 0
		}
		return c < 0
	}
	return false
}

func compareField(a, b *models.Movie, f Field) int {
	switch f {
	case FieldCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case FieldUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	}
	if f.IsNumeric() {
		x, y := numberValue(a, f), numberValue(b, f)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(textValue(a, f), textValue(b, f))
}
