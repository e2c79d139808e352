// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package duckdb

import (
	"fmt"
	"strings"

	"github.com/tomtom215/cinecatalog/internal/query"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
//	wb := NewWhereBuilder()
//	wb.AddClause("year = ?", 2019)
//	wb.AddGenre("Drama")
//	whereClause, args := wb.Build()
//	// year = ? AND EXISTS (SELECT 1 FROM movie_genres g WHERE ...)
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddSearch matches a lower-cased term inside any of the columns.
func (wb *WhereBuilder) AddSearch(term string, columns ...string) *WhereBuilder {
	if len(columns) == 0 {
		return wb
	}
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("contains(lower(%s), ?)", col)
		wb.args = append(wb.args, term)
	}
	wb.clauses = append(wb.clauses, "("+strings.Join(parts, " OR ")+")")
	return wb
}

// AddGenre requires the movie's genre list to contain genre.
func (wb *WhereBuilder) AddGenre(genre string) *WhereBuilder {
	return wb.AddClause("EXISTS (SELECT 1 FROM movie_genres g WHERE g.movie_id = movies.id AND g.genre = ?)", genre)
}

// Build joins clauses with AND. Returns ("1=1", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns the WHERE clause with "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

// Count returns the number of clauses added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}

var columns = map[query.Field]string{
	query.FieldID:          "id",
	query.FieldTitle:       "title",
	query.FieldDescription: "description",
	query.FieldRating:      "rating",
	query.FieldYear:        "year",
	query.FieldLanguage:    "movie_language",
	query.FieldCountry:     "movie_country",
	query.FieldRuntime:     "runtime",
	query.FieldCreatedAt:   "created_at",
	query.FieldUpdatedAt:   "updated_at",
}

func column(f query.Field) (string, error) {
	col, ok := columns[f]
	if !ok {
		return "", fmt.Errorf("field %q has no column", f)
	}
	return col, nil
}

// whereFor translates a predicate into a WhereBuilder.
func whereFor(pred query.Predicate) (*WhereBuilder, error) {
	wb := NewWhereBuilder()
	for _, c := range pred.Conditions {
		switch c.Kind {
		case query.KindSearch:
			cols := make([]string, 0, len(c.Fields))
			for _, f := range c.Fields {
				col, err := column(f)
				if err != nil {
					return nil, err
				}
				cols = append(cols, col)
			}
			wb.AddSearch(c.Text, cols...)
		case query.KindHasElement:
			if c.Field != query.FieldGenre {
				return nil, fmt.Errorf("field %q is not a list", c.Field)
			}
			wb.AddGenre(c.Text)
		case query.KindEquals:
			col, err := column(c.Field)
			if err != nil {
				return nil, err
			}
			if c.Field.IsNumeric() {
				wb.AddClause(col+" = ?", numericArg(c.Field, c.Number))
			} else {
				wb.AddClause(col+" = ?", c.Text)
			}
		case query.KindAtLeast:
			col, err := column(c.Field)
			if err != nil {
				return nil, err
			}
			wb.AddClause(col+" >= ?", numericArg(c.Field, c.Number))
		default:
			return nil, fmt.Errorf("unsupported condition %s", c.Kind)
		}
	}
	return wb, nil
}

// numericArg binds integer columns as integers.
func numericArg(f query.Field, v float64) interface{} {
	if f == query.FieldRating {
		return v
	}
	return int64(v)
}

// orderBy renders sort keys as an ORDER BY list.
func orderBy(keys []query.SortKey) (string, error) {
	if len(keys) == 0 {
		return "id ASC", nil
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		col, err := column(k.Field)
		if err != nil {
			return "", err
		}
		dir := "ASC"
		if k.Descending {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	return strings.Join(parts, ", "), nil
}
