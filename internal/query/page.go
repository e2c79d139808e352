// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/cinecatalog/internal/models"
)

// PageLimits bounds the page size a caller may request.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPageLimits matches the server's default configuration.
var DefaultPageLimits = PageLimits{DefaultSize: 24, MaxSize: 100}

// Page is a 1-based page window.
type Page struct {
	Number int
	Size   int
}

// ParsePage validates the page and limit parameters.
//
//	""    -> page 1, default size
//	"0"   -> page 1 (clamped)
//	"abc" -> ErrInvalidQuery
//
// A limit above the maximum is clamped; a limit of zero or less is rejected.
func ParsePage(pageRaw, limitRaw string, limits PageLimits) (Page, error) {
	p := Page{Number: 1, Size: limits.DefaultSize}

	if raw := strings.TrimSpace(pageRaw); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, models.InvalidQueryf("page must be an integer, got %q", raw)
		}
		if n > 1 {
			p.Number = n
		}
	}

	if raw := strings.TrimSpace(limitRaw); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, models.InvalidQueryf("limit must be an integer, got %q", raw)
		}
		if n <= 0 {
			return Page{}, models.InvalidQueryf("limit must be positive, got %d", n)
		}
		p.Size = n
	}

	if limits.MaxSize > 0 && p.Size > limits.MaxSize {
		p.Size = limits.MaxSize
	}
	return p, nil
}

// Skip is the number of matching records before this page. It saturates
// instead of overflowing for absurd page numbers.
func (p Page) Skip() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Meta describes the page after the store returned count items of total.
func (p Page) Meta(total int64, count int) models.PageMeta {
	return models.PageMeta{
		Total:    total,
		Page:     p.Number,
		PageSize: p.Size,
		HasMore:  HasMore(p.Skip(), count, total),
	}
}

// HasMore reports whether records remain after skip+count.
func HasMore(skip, count int, total int64) bool {
	if int64(skip) >= total {
		return false
	}
	return int64(skip)+int64(count) < total
}

// Window slices an already sorted result set to the page. Used by backends
// that evaluate queries in memory.
func Window[T any](items []T, skip, limit int) []T {
	if skip >= len(items) || limit <= 0 {
		return []T{}
	}
	end := len(items)
	if limit < end-skip {
		end = skip + limit
	}
	out := make([]T, end-skip)
	copy(out, items[skip:end])
	return out
}
