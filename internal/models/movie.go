// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package models holds the movie record, request bodies, response envelope and
// the error taxonomy shared by the server, the stores and the client.
package models

import (
	"strings"
	"time"
)

// Field defaults applied on create and on full update.
const (
	DefaultLanguage  = "English"
	DefaultCountry   = "USA"
	DefaultPosterURL = "https://via.placeholder.com/300x450/1a1a2e/00d4ff?text=Movie+Poster"
	DefaultDirector  = "Unknown"
	DefaultRuntime   = 120

	MinRating = 0.0
	MaxRating = 10.0
)

// Movie is the catalog's only persistent entity.
type Movie struct {
	ID          string    `json:"_id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Genre       []string  `json:"genre" bson:"genre"`
	Rating      float64   `json:"rating" bson:"rating"`
	Year        int       `json:"year" bson:"year"`
	Language    string    `json:"movieLanguage" bson:"movieLanguage"`
	Country     string    `json:"movieCountry" bson:"movieCountry"`
	Description string    `json:"description" bson:"description"`
	PosterURL   string    `json:"posterUrl" bson:"posterUrl"`
	Director    string    `json:"director" bson:"director"`
	Cast        []string  `json:"cast" bson:"cast"`
	Runtime     int       `json:"runtime" bson:"runtime"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills unset optional fields and trims the title.
func (m *Movie) ApplyDefaults() {
	m.Title = strings.TrimSpace(m.Title)
	if strings.TrimSpace(m.Language) == "" {
		m.Language = DefaultLanguage
	}
	if strings.TrimSpace(m.Country) == "" {
		m.Country = DefaultCountry
	}
	if strings.TrimSpace(m.PosterURL) == "" {
		m.PosterURL = DefaultPosterURL
	}
	if strings.TrimSpace(m.Director) == "" {
		m.Director = DefaultDirector
	}
	if m.Cast == nil {
		m.Cast = []string{}
	}
	if m.Runtime == 0 {
		m.Runtime = DefaultRuntime
	}
}

// Decade returns the first year of the movie's decade (2019 -> 2010).
func (m *Movie) Decade() int {
	return m.Year - m.Year%10
}

// MovieInput is the body accepted by create and full update. Pointer fields
// distinguish "missing" from a legitimate zero value.
type MovieInput struct {
	Title       string   `json:"title" validate:"required,max=300"`
	Genre       []string `json:"genre" validate:"required,min=1,dive,required,max=50"`
	Rating      *float64 `json:"rating" validate:"required,gte=0,lte=10"`
	Year        *int     `json:"year" validate:"required,gte=1870,lte=2100"`
	Language    string   `json:"movieLanguage" validate:"omitempty,max=50"`
	Country     string   `json:"movieCountry" validate:"omitempty,max=60"`
	Description string   `json:"description" validate:"required,max=5000"`
	PosterURL   string   `json:"posterUrl" validate:"omitempty,max=2048"`
	Director    string   `json:"director" validate:"omitempty,max=120"`
	Cast        []string `json:"cast" validate:"omitempty,max=100,dive,max=120"`
	Runtime     *int     `json:"runtime" validate:"omitempty,gt=0,lte=1000"`
}

// Normalize trims free-text fields in place so that whitespace-only values
// fail the required checks.
func (in *MovieInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Language = strings.TrimSpace(in.Language)
	in.Country = strings.TrimSpace(in.Country)
	in.Director = strings.TrimSpace(in.Director)
	in.PosterURL = strings.TrimSpace(in.PosterURL)
	for i, g := range in.Genre {
		in.Genre[i] = strings.TrimSpace(g)
	}
}

// ToMovie converts a validated input into a Movie with defaults applied.
// Identity and timestamps are left for the write path.
func (in *MovieInput) ToMovie() Movie {
	m := Movie{
		Title:       in.Title,
		Genre:       append([]string(nil), in.Genre...),
		Language:    in.Language,
		Country:     in.Country,
		Description: in.Description,
		PosterURL:   in.PosterURL,
		Director:    in.Director,
		Cast:        append([]string(nil), in.Cast...),
	}
	if in.Rating != nil {
		m.Rating = *in.Rating
	}
	if in.Year != nil {
		m.Year = *in.Year
	}
	if in.Runtime != nil {
		m.Runtime = *in.Runtime
	}
	m.ApplyDefaults()
	return m
}
