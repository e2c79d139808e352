// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package catalog implements the catalog operations behind the HTTP API:
// paginated listing, lookup, create, full update, delete, analytics,
// recommendations and filter options.
//
// The Service is stateless across calls. It holds an injected store and an
// event publisher; errors carry the models error taxonomy so the HTTP layer
// can map them without inspecting backend details.
package catalog

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/events"
	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/metrics"
	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
	"github.com/tomtom215/cinecatalog/internal/store"
	"github.com/tomtom215/cinecatalog/internal/validation"
)

// Service runs catalog operations against a store.
type Service struct {
	store            store.Store
	publisher        events.Publisher
	limits           query.PageLimits
	recommendLimit   int
	defaultMinRating float64

	now   func() time.Time
	newID func() string
}

// New returns a Service. A nil publisher discards events.
func New(s store.Store, pub events.Publisher, cfg config.APIConfig) *Service {
	if pub == nil {
		pub = events.Discard{}
	}
	svc := &Service{
		store:            s,
		publisher:        pub,
		limits:           query.PageLimits{DefaultSize: cfg.DefaultPageSize, MaxSize: cfg.MaxPageSize},
		recommendLimit:   cfg.RecommendationLimit,
		defaultMinRating: cfg.DefaultMinRating,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            func() string { return ksuid.New().String() },
	}
	if svc.limits.DefaultSize <= 0 || svc.limits.MaxSize <= 0 {
		svc.limits = query.DefaultPageLimits
	}
	if svc.recommendLimit <= 0 {
		svc.recommendLimit = 20
	}
	return svc
}

// Store returns the underlying store.
func (s *Service) Store() store.Store { return s.store }

// List returns one page of movies matching the query string. The response is
// all-or-nothing: any store failure returns no page.
func (s *Service) List(ctx context.Context, values url.Values) (*models.MoviePage, error) {
	page, err := query.ParsePage(values.Get("page"), values.Get("limit"), s.limits)
	if err != nil {
		return nil, err
	}
	q, err := query.Compile(values)
	if err != nil {
		return nil, err
	}
	return store.Paginate(ctx, s.store, q, page)
}

// Get returns one movie by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Movie, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, models.NotFoundID(id)
	}
	return s.store.Get(ctx, id)
}

// Create validates in, applies defaults, assigns an id and timestamps and
// stores the movie.
func (s *Service) Create(ctx context.Context, in *models.MovieInput) (*models.Movie, error) {
	in.Normalize()
	if verr := validation.ValidateStruct(in); verr != nil {
		return nil, verr
	}

	m := in.ToMovie()
	m.ID = s.newID()
	m.CreatedAt = s.now()
	m.UpdatedAt = m.CreatedAt

	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeCreated, m.ID, m.Title)
	return &m, nil
}

// Update replaces every field of an existing movie. The id and createdAt
// are kept; updatedAt is bumped.
func (s *Service) Update(ctx context.Context, id string, in *models.MovieInput) (*models.Movie, error) {
	in.Normalize()
	if verr := validation.ValidateStruct(in); verr != nil {
		return nil, verr
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	m := in.ToMovie()
	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = s.now()

	if err := s.store.Replace(ctx, &m); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeUpdated, m.ID, m.Title)
	return &m, nil
}

// Delete removes a movie by id.
func (s *Service) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, models.NotFoundID(id)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeDeleted, id, "")
	return &models.DeleteResult{ID: id}, nil
}

// Analytics summarizes the whole catalog.
func (s *Service) Analytics(ctx context.Context) (*models.Analytics, error) {
	a, err := s.store.Analytics(ctx)
	if err != nil {
		return nil, err
	}
	metrics.CatalogMoviesTotal.Set(float64(a.TotalMovies))
	return a, nil
}

// Recommendations returns the best-rated movies at or above minRating
// (default from configuration), optionally within one genre.
func (s *Service) Recommendations(ctx context.Context, values url.Values) ([]models.Movie, error) {
	minRating := s.defaultMinRating
	if raw := strings.TrimSpace(values.Get("minRating")); raw != "" {
		r, err := query.ParseMinRating(raw)
		if err != nil {
			return nil, err
		}
		minRating = r
	}

	pred := query.Predicate{}.And(query.AtLeast(query.FieldRating, minRating))
	if genre := strings.TrimSpace(values.Get("genre")); genre != "" && genre != query.AllGenres {
		pred = pred.And(query.HasElement(query.FieldGenre, genre))
	}

	keys := []query.SortKey{
		{Field: query.FieldRating, Descending: true},
		{Field: query.FieldID},
	}
	movies, err := s.store.Find(ctx, pred, keys, 0, s.recommendLimit)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

// FilterOptions lists the distinct languages, countries and years currently
// present in the store.
func (s *Service) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return s.store.FilterOptions(ctx)
}

// Ping checks store connectivity.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// publish emits a change event. The write has already succeeded, so a
// failure is logged and not returned.
func (s *Service) publish(ctx context.Context, typ events.Type, id, title string) {
	if err := s.publisher.Publish(ctx, events.NewMovieEvent(ctx, typ, id, title)); err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("type", string(typ)).
			Str("movie_id", id).
			Msg("Failed to publish movie event")
	}
}
