// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package api serves the catalog over HTTP with the chi router.
//
// Every response uses the models.APIResponse envelope. Errors from the
// catalog are mapped to status codes exactly once, in respondErr:
//
//	ErrInvalidQuery, ErrValidation -> 400
//	ErrNotFound                    -> 404
//	ErrStoreUnavailable            -> 503 (cause logged, not returned)
//	anything else                  -> 500 (details logged, not returned)
package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/models"
)

// Error codes carried in the envelope's code field.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeInvalidQuery       = "INVALID_QUERY"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const genericErrorMessage = "Server Error"

// respondJSON writes v with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// dataResponse is the success envelope. Data is never omitted, so an empty
// list encodes as [].
type dataResponse[T any] struct {
	Success bool             `json:"success"`
	Data    T                `json:"data"`
	Meta    *models.PageMeta `json:"meta,omitempty"`
}

func respondData[T any](w http.ResponseWriter, status int, data T) {
	respondJSON(w, status, &dataResponse[T]{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, &models.APIResponse{Success: false, Error: message, Code: code})
}

// respondErr maps a catalog error onto the envelope.
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	logger := logging.Ctx(r.Context())

	switch status {
	case http.StatusInternalServerError:
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("Unhandled error")
		respondError(w, status, code, genericErrorMessage)
		return
	case http.StatusServiceUnavailable:
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("Store unavailable")
		respondError(w, status, code, models.ErrStoreUnavailable.Error())
		return
	default:
		logger.Debug().Err(err).Str("path", r.URL.Path).Msg("Request rejected")
	}
	respondError(w, status, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidQuery):
		return http.StatusBadRequest, ErrCodeInvalidQuery
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest, ErrCodeValidationFailed
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}
