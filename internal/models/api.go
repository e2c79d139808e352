// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package models

// APIResponse is the envelope every endpoint returns. Failures carry Error
// instead of Data.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Meta    *PageMeta `json:"meta,omitempty"`
	Error   string    `json:"error,omitempty"`
	Code    string    `json:"code,omitempty"`
}

// PageMeta describes one page of a listing.
type PageMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	HasMore  bool  `json:"hasMore"`
}

// MoviePage is one page of listing results.
type MoviePage struct {
	Items []Movie
	Meta  PageMeta
}

// HealthStatus is the body of the liveness endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Store   string `json:"store"`
	Version string `json:"version,omitempty"`
}

// DeleteResult is returned by the delete endpoint.
type DeleteResult struct {
	ID string `json:"id"`
}
