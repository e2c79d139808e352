// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package client

import (
	"regexp"
	"strings"
)

// PlaceholderPoster is shown for movies without a usable poster.
const PlaceholderPoster = "https://via.placeholder.com/500x750/1a202c/00d4ff?text=Movie+Poster"

var tmdbAsset = regexp.MustCompile(`^https?://image\.tmdb\.org/.*/[A-Za-z0-9]+$`)

// SafePosterURL repairs common defects in stored poster URLs.
func SafePosterURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return PlaceholderPoster
	}

	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}
	if !strings.HasPrefix(u, "http") {
		u = "https://" + u
	}

	// TMDB paths stored without an extension.
	if tmdbAsset.MatchString(u) {
		u += ".jpg"
	}
	if strings.HasSuffix(u, "/") {
		u += "poster.jpg"
	}
	return u
}
