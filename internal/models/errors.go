// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package models

import (
	"errors"
	"fmt"
)

// Error taxonomy. Components wrap these with %w; the HTTP boundary maps them
// to status codes with errors.Is.
var (
	// ErrInvalidQuery marks malformed pagination, sort or filter parameters.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrValidation marks a request body that failed field validation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an id that does not resolve to a movie.
	ErrNotFound = errors.New("movie not found")

	// ErrStoreUnavailable marks connectivity or timeout failures of the store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// InvalidQueryf returns an ErrInvalidQuery with a formatted reason.
func InvalidQueryf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}

// NotFoundID returns an ErrNotFound naming the id.
func NotFoundID(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Unavailable wraps a store failure as ErrStoreUnavailable, keeping the cause
// reachable through errors.Unwrap chains.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}
