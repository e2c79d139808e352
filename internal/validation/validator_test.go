// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/cinecatalog/internal/models"
)

func validInput() models.MovieInput {
	rating, year := 8.6, 2019
	return models.MovieInput{
		Title:       "Parasite",
		Genre:       []string{"Drama", "Thriller"},
		Rating:      &rating,
		Year:        &year,
		Description: "Greed and class discrimination.",
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	in := validInput()
	if err := ValidateStruct(&in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStruct_ZeroRatingAccepted(t *testing.T) {
	in := validInput()
	zero := 0.0
	in.Rating = &zero
	if err := ValidateStruct(&in); err != nil {
		t.Fatalf("rating 0 should be valid: %v", err)
	}
}

func TestValidateStruct_Failures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.MovieInput)
		wantField string
		wantText  string
	}{
		{"missing title", func(in *models.MovieInput) { in.Title = "" }, "title", "title is required"},
		{"empty genre", func(in *models.MovieInput) { in.Genre = []string{} }, "genre", "at least 1 items"},
		{"nil genre", func(in *models.MovieInput) { in.Genre = nil }, "genre", "genre is required"},
		{"blank genre element", func(in *models.MovieInput) { in.Genre = []string{"Drama", ""} }, "genre[1]", "is required"},
		{"missing rating", func(in *models.MovieInput) { in.Rating = nil }, "rating", "rating is required"},
		{"rating above 10", func(in *models.MovieInput) { r := 10.5; in.Rating = &r }, "rating", "less than or equal to 10"},
		{"rating below 0", func(in *models.MovieInput) { r := -1.0; in.Rating = &r }, "rating", "greater than or equal to 0"},
		{"missing year", func(in *models.MovieInput) { in.Year = nil }, "year", "year is required"},
		{"missing description", func(in *models.MovieInput) { in.Description = "" }, "description", "description is required"},
		{"negative runtime", func(in *models.MovieInput) { r := -5; in.Runtime = &r }, "runtime", "greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := ValidateStruct(&in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, models.ErrValidation) {
				t.Error("error should match models.ErrValidation")
			}
			found := false
			for _, f := range err.Fields {
				if f.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("field %q not reported: %+v", tt.wantField, err.Fields)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("message %q does not contain %q", err.Error(), tt.wantText)
			}
		})
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("validator should be a singleton")
	}
}
