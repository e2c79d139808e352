// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/cinecatalog/internal/client"
	"github.com/tomtom215/cinecatalog/internal/models"
)

// printer appends newly loaded movies to w. When the already printed prefix
// no longer matches the state, the list was reset and printing restarts.
type printer struct {
	w       io.Writer
	printed int
	firstID string
	lastID  string
	lastErr string
	ended   bool
}

func (p *printer) render(st client.State) {
	if p.printed > 0 && !p.samePrefix(st.Items) {
		fmt.Fprintln(p.w, "--- results updated ---")
		p.printed = 0
		p.ended = false
	}

	for i := p.printed; i < len(st.Items); i++ {
		fmt.Fprintln(p.w, formatMovie(i+1, &st.Items[i]))
	}
	p.printed = len(st.Items)
	if p.printed > 0 {
		p.firstID = st.Items[0].ID
		p.lastID = st.Items[p.printed-1].ID
	}

	if st.Err != "" && st.Err != p.lastErr {
		fmt.Fprintf(p.w, "error: %s\n", st.Err)
	}
	p.lastErr = st.Err

	if !st.Loading && !st.HasMore && st.Err == "" && !p.ended {
		if len(st.Items) == 0 {
			fmt.Fprintln(p.w, "No movies found")
		} else {
			fmt.Fprintf(p.w, "--- end of catalog (%d of %d) ---\n", len(st.Items), st.Total)
		}
		p.ended = true
	}
}

func (p *printer) samePrefix(items []models.Movie) bool {
	return len(items) >= p.printed &&
		items[0].ID == p.firstID &&
		items[p.printed-1].ID == p.lastID
}

func formatMovie(n int, m *models.Movie) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%4d. %s (%d)  %.1f/10", n, m.Title, m.Year, m.Rating)
	if len(m.Genre) > 0 {
		fmt.Fprintf(&b, "  [%s]", strings.Join(m.Genre, ", "))
	}
	if m.Language != "" || m.Country != "" {
		fmt.Fprintf(&b, "  %s/%s", orDash(m.Language), orDash(m.Country))
	}
	fmt.Fprintf(&b, "\n      %s", client.SafePosterURL(m.PosterURL))
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
