// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package query compiles listing parameters into a store-neutral predicate,
// sort order and page window. Backends translate the predicate into their
// own query language; document backends without one evaluate it in memory
// with Match, SortMovies and Aggregate.
package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/cinecatalog/internal/models"
)

// AllGenres is the client's sentinel for "no genre filter".
const AllGenres = "All"

// Criteria are the filter parameters accepted by the listing endpoint.
// Empty strings and nil pointers mean "not supplied".
type Criteria struct {
	Search    string
	Genre     string
	Language  string
	Country   string
	Year      *int
	MinRating *float64
	SortBy    string
}

// ParseCriteria reads filter parameters from a query string. Values are
// trimmed; empty values are treated as absent.
func ParseCriteria(values url.Values) (Criteria, error) {
	c := Criteria{
		Search:   strings.TrimSpace(values.Get("search")),
		Genre:    strings.TrimSpace(values.Get("genre")),
		Language: strings.TrimSpace(values.Get("movieLanguage")),
		Country:  strings.TrimSpace(values.Get("movieCountry")),
		SortBy:   strings.TrimSpace(values.Get("sortBy")),
	}

	if raw := strings.TrimSpace(values.Get("year")); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return Criteria{}, models.InvalidQueryf("year must be an integer, got %q", raw)
		}
		c.Year = &y
	}

	if raw := strings.TrimSpace(values.Get("minRating")); raw != "" {
		r, err := ParseMinRating(raw)
		if err != nil {
			return Criteria{}, err
		}
		c.MinRating = &r
	}

	return c, nil
}

// ParseMinRating parses a rating lower bound within [0,10].
func ParseMinRating(raw string) (float64, error) {
	r, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, models.InvalidQueryf("minRating must be a number, got %q", raw)
	}
	if math.IsNaN(r) || r < models.MinRating || r > models.MaxRating {
		return 0, models.InvalidQueryf("minRating must be within [0,10], got %v", r)
	}
	return r, nil
}

// Predicate compiles the criteria. Conditions appear in a fixed order:
// search, genre, language, country, year, minimum rating. The "All" genre
// contributes nothing.
func (c Criteria) Predicate() Predicate {
	var p Predicate
	if c.Search != "" {
		p = p.And(Search(c.Search))
	}
	if c.Genre != "" && c.Genre != AllGenres {
		p = p.And(HasElement(FieldGenre, c.Genre))
	}
	if c.Language != "" {
		p = p.And(EqualsText(FieldLanguage, c.Language))
	}
	if c.Country != "" {
		p = p.And(EqualsText(FieldCountry, c.Country))
	}
	if c.Year != nil {
		p = p.And(EqualsNumber(FieldYear, float64(*c.Year)))
	}
	if c.MinRating != nil {
		p = p.And(AtLeast(FieldRating, *c.MinRating))
	}
	return p
}

// Compiled is a listing query ready for a store.
type Compiled struct {
	Predicate Predicate
	Sort      []SortKey
}

// Compile parses criteria and sort from a query string.
func Compile(values url.Values) (Compiled, error) {
	c, err := ParseCriteria(values)
	if err != nil {
		return Compiled{}, err
	}
	keys, err := ParseSort(c.SortBy)
	if err != nil {
		return Compiled{}, err
	}
	return Compiled{Predicate: c.Predicate(), Sort: keys}, nil
}
