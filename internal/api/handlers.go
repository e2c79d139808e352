// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinecatalog/internal/catalog"
	"github.com/tomtom215/cinecatalog/internal/models"
)

// maxBodyBytes caps create and update bodies.
const maxBodyBytes = 1 << 20

// Handler serves the catalog endpoints.
type Handler struct {
	svc     *catalog.Service
	version string
}

// NewHandler returns a Handler over svc.
func NewHandler(svc *catalog.Service, version string) *Handler {
	return &Handler{svc: svc, version: version}
}

// Health reports liveness and store connectivity. It always answers 200 so
// that a store outage does not get the process restarted.
//
// @Summary Liveness check
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status:  "OK",
		Message: "Server is running",
		Store:   "ok",
		Version: h.version,
	}
	if err := h.svc.Ping(r.Context()); err != nil {
		status.Store = "unavailable"
	}
	respondData(w, http.StatusOK, &status)
}

// ListMovies returns one page of movies.
//
// @Summary List movies
// @Description Paginated, filtered and sorted listing. sortBy is a field name with an optional leading "-" for descending.
// @Tags Movies
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 24, max 100)"
// @Param search query string false "Case-insensitive text in title or description"
// @Param genre query string false "Genre, or All"
// @Param movieLanguage query string false "Exact language"
// @Param movieCountry query string false "Exact country"
// @Param year query int false "Exact year"
// @Param minRating query number false "Minimum rating (0-10)"
// @Param sortBy query string false "rating, year, title, runtime, createdAt, updatedAt (default -rating)"
// @Success 200 {object} models.APIResponse{data=[]models.Movie,meta=models.PageMeta}
// @Failure 400 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), r.URL.Query())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, &dataResponse[[]models.Movie]{Success: true, Data: page.Items, Meta: &page.Meta})
}

// GetMovie returns one movie.
//
// @Summary Get a movie
// @Tags Movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} models.APIResponse{data=models.Movie}
// @Failure 404 {object} models.APIResponse
// @Router /movies/{id} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, http.StatusOK, m)
}

// CreateMovie adds a movie.
//
// @Summary Create a movie
// @Tags Movies
// @Accept json
// @Produce json
// @Param movie body models.MovieInput true "Movie"
// @Success 201 {object} models.APIResponse{data=models.Movie}
// @Failure 400 {object} models.APIResponse
// @Router /movies [post]
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	m, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, m)
}

// UpdateMovie replaces a movie.
//
// @Summary Replace a movie
// @Description Full-document replace. The id and createdAt are preserved.
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param movie body models.MovieInput true "Movie"
// @Success 200 {object} models.APIResponse{data=models.Movie}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /movies/{id} [put]
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	m, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, http.StatusOK, m)
}

// DeleteMovie removes a movie.
//
// @Summary Delete a movie
// @Tags Movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} models.APIResponse{data=models.DeleteResult}
// @Failure 404 {object} models.APIResponse
// @Router /movies/{id} [delete]
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, http.StatusOK, res)
}

// Analytics summarizes the catalog.
//
// @Summary Catalog analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Analytics}
// @Failure 503 {object} models.APIResponse
// @Router /movies/analytics/stats [get]
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Analytics(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, http.StatusOK, a)
}

// Recommendations lists top-rated movies.
//
// @Summary Recommendations
// @Tags Movies
// @Produce json
// @Param genre query string false "Genre, or All"
// @Param minRating query number false "Minimum rating (default 7)"
// @Success 200 {object} models.APIResponse{data=[]models.Movie}
// @Failure 400 {object} models.APIResponse
// @Router /movies/recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.Recommendations(r.Context(), r.URL.Query())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, http.StatusOK, movies)
}

// FilterOptions lists the values the filter controls offer.
//
// @Summary Filter options
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.FilterOptions}
// @Router /movies/filters/options [get]
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.svc.FilterOptions(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, http.StatusOK, opts)
}

// NotFound answers unknown routes with the envelope.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, ErrCodeNotFound, "Route not found")
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, ErrCodeBadRequest, "Method not allowed")
}

func decodeInput(w http.ResponseWriter, r *http.Request) (*models.MovieInput, bool) {
	var in models.MovieInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		msg := "Invalid JSON body"
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			msg = "Request body too large"
		case errors.Is(err, io.EOF):
			msg = "Request body is required"
		}
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, msg)
		return nil, false
	}
	return &in, true
}
