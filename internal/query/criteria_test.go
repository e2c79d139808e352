// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package query

import (
	"errors"
	"net/url"
	"testing"

	"github.com/tomtom215/cinecatalog/internal/models"
)

func TestCompile_EmptyCriteria(t *testing.T) {
	c, err := Compile(url.Values{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !c.Predicate.IsEmpty() {
		t.Errorf("expected empty predicate, got %+v", c.Predicate)
	}
	if len(c.Sort) != 2 || c.Sort[0] != (SortKey{Field: FieldRating, Descending: true}) || c.Sort[1] != (SortKey{Field: FieldID}) {
		t.Errorf("default sort = %+v", c.Sort)
	}
}

func TestCompile_ConditionOrder(t *testing.T) {
	v := url.Values{}
	v.Set("minRating", "7.5")
	v.Set("year", "2010")
	v.Set("movieCountry", "USA")
	v.Set("movieLanguage", "English")
	v.Set("genre", "Drama")
	v.Set("search", "  Dark  ")

	c, err := Compile(v)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	want := []Condition{
		Search("Dark"),
		HasElement(FieldGenre, "Drama"),
		EqualsText(FieldLanguage, "English"),
		EqualsText(FieldCountry, "USA"),
		EqualsNumber(FieldYear, 2010),
		AtLeast(FieldRating, 7.5),
	}
	if len(c.Predicate.Conditions) != len(want) {
		t.Fatalf("got %d conditions, want %d", len(c.Predicate.Conditions), len(want))
	}
	for i, w := range want {
		got := c.Predicate.Conditions[i]
		if got.Kind != w.Kind || got.Field != w.Field || got.Text != w.Text || got.Number != w.Number {
			t.Errorf("condition %d = %+v, want %+v", i, got, w)
		}
	}
	if c.Predicate.Conditions[0].Text != "dark" {
		t.Errorf("search term should be trimmed and lower-cased, got %q", c.Predicate.Conditions[0].Text)
	}
}

func TestCompile_AllGenreIsNoFilter(t *testing.T) {
	c, err := Compile(url.Values{"genre": {"All"}})
	if err != nil {
		t.Fatal(err)
	}
	if !c.Predicate.IsEmpty() {
		t.Errorf("All genre produced %+v", c.Predicate)
	}
}

func TestCompile_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric year", "year", "twenty"},
		{"non-numeric rating", "minRating", "high"},
		{"NaN rating", "minRating", "NaN"},
		{"rating above range", "minRating", "11"},
		{"rating below range", "minRating", "-1"},
		{"unknown sort field", "sortBy", "-budget"},
		{"bare minus sort", "sortBy", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(url.Values{tt.key: {tt.value}})
			if !errors.Is(err, models.ErrInvalidQuery) {
				t.Errorf("err = %v, want ErrInvalidQuery", err)
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		token string
		want  SortKey
	}{
		{"", SortKey{Field: FieldRating, Descending: true}},
		{"year", SortKey{Field: FieldYear}},
		{"-year", SortKey{Field: FieldYear, Descending: true}},
		{"title", SortKey{Field: FieldTitle}},
		{"-createdAt", SortKey{Field: FieldCreatedAt, Descending: true}},
		{"runtime", SortKey{Field: FieldRuntime}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			keys, err := ParseSort(tt.token)
			if err != nil {
				t.Fatal(err)
			}
			if keys[0] != tt.want {
				t.Errorf("keys[0] = %+v, want %+v", keys[0], tt.want)
			}
			if keys[len(keys)-1] != (SortKey{Field: FieldID}) {
				t.Errorf("missing _id tie-break: %+v", keys)
			}
		})
	}
}
