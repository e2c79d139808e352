// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package client is the Go client for the catalog API and the state machine
// behind an infinite-scroll movie list.
//
// Client wraps every HTTP route. Controller loads listing pages
// incrementally: a filter change resets and refetches, a proximity signal
// loads the next page, and superseded requests are canceled and their
// responses discarded. FilterState holds the user's filter selection and
// debounces search input.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/models"
)

// DefaultBaseURL is used when no server address is configured.
const DefaultBaseURL = "http://localhost:8080"

// ErrRequestCanceled marks a call abandoned because its context was
// canceled. It also matches context.Canceled.
var ErrRequestCanceled = errors.New("request canceled")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps the status onto the shared error taxonomy so callers can use
// errors.Is with models.ErrNotFound and friends.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusServiceUnavailable:
		return models.ErrStoreUnavailable
	case http.StatusBadRequest:
		if e.Code == "VALIDATION_FAILED" {
			return models.ErrValidation
		}
		return models.ErrInvalidQuery
	}
	return nil
}

// Client calls the catalog API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default traced http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the server at rawBase (see NormalizeBaseURL).
func New(rawBase string, opts ...Option) *Client {
	c := &Client{
		baseURL: NormalizeBaseURL(rawBase),
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizeBaseURL strips a trailing slash, then a "/movies" suffix, then an
// "/api" suffix, and appends "/api". Empty input yields DefaultBaseURL.
//
//	http://host/          -> http://host/api
//	http://host/api/movies -> http://host/api
func NormalizeBaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		u = DefaultBaseURL
	}
	u = strings.TrimSuffix(u, "/")
	u = strings.TrimSuffix(u, "/movies")
	u = strings.TrimSuffix(u, "/api")
	return u + "/api"
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string { return c.baseURL }

type envelope[T any] struct {
	Success bool             `json:"success"`
	Data    T                `json:"data"`
	Meta    *models.PageMeta `json:"meta"`
	Error   string           `json:"error"`
	Code    string           `json:"code"`
}

func call[T any](ctx context.Context, c *Client, method, path string, q url.Values, body any) (*envelope[T], error) {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("%w: %w", ErrRequestCanceled, context.Canceled)
		}
		logging.Debug().Err(err).Str("method", method).Str("url", target).Msg("API call failed")
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	var env envelope[T]
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, fmt.Errorf("%w: %w", ErrRequestCanceled, context.Canceled)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, URL: target}
		if decodeErr == nil {
			apiErr.Message = env.Error
			apiErr.Code = env.Code
		}
		logging.Debug().
			Str("method", method).
			Str("url", target).
			Int("status", resp.StatusCode).
			Str("error", apiErr.Message).
			Msg("API call failed")
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode %s %s: %w", method, target, decodeErr)
	}
	return &env, nil
}

func moviePath(id string) string {
	return "/movies/" + url.PathEscape(id)
}

// Health reports server liveness.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	env, err := call[models.HealthStatus](ctx, c, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ListMovies fetches one listing page. params carries the filter, sort and
// page query parameters as the server expects them.
func (c *Client) ListMovies(ctx context.Context, params url.Values) (*Page, error) {
	env, err := call[[]models.Movie](ctx, c, http.MethodGet, "/movies", params, nil)
	if err != nil {
		return nil, err
	}
	return &Page{Items: env.Data, Meta: env.Meta}, nil
}

// GetMovie fetches one movie by id.
func (c *Client) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	env, err := call[models.Movie](ctx, c, http.MethodGet, moviePath(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CreateMovie adds a movie and returns it with its assigned id.
func (c *Client) CreateMovie(ctx context.Context, in *models.MovieInput) (*models.Movie, error) {
	env, err := call[models.Movie](ctx, c, http.MethodPost, "/movies", nil, in)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UpdateMovie replaces the movie with id.
func (c *Client) UpdateMovie(ctx context.Context, id string, in *models.MovieInput) (*models.Movie, error) {
	env, err := call[models.Movie](ctx, c, http.MethodPut, moviePath(id), nil, in)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// DeleteMovie removes the movie with id.
func (c *Client) DeleteMovie(ctx context.Context, id string) (*models.DeleteResult, error) {
	env, err := call[models.DeleteResult](ctx, c, http.MethodDelete, moviePath(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Analytics fetches catalog statistics.
func (c *Client) Analytics(ctx context.Context) (*models.Analytics, error) {
	env, err := call[models.Analytics](ctx, c, http.MethodGet, "/movies/analytics/stats", nil, nil)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Recommendations fetches top-rated movies. An empty genre or "All" means
// any genre; a nil minRating uses the server default.
func (c *Client) Recommendations(ctx context.Context, genre string, minRating *float64) ([]models.Movie, error) {
	q := url.Values{}
	if genre != "" && genre != AllGenres {
		q.Set("genre", genre)
	}
	if minRating != nil {
		q.Set("minRating", formatFloat(*minRating))
	}
	env, err := call[[]models.Movie](ctx, c, http.MethodGet, "/movies/recommendations", q, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// FilterOptions fetches the distinct values for filter controls.
func (c *Client) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	env, err := call[models.FilterOptions](ctx, c, http.MethodGet, "/movies/filters/options", nil, nil)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Page is one listing response. Meta is nil when the server omitted it.
type Page struct {
	Items []models.Movie
	Meta  *models.PageMeta
}
