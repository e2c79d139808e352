// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package seed

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tomtom215/cinecatalog/internal/models"
)

// Report section sizes.
const (
	TopLanguages = 15
	TopCountries = 15
	RecentYears  = 10
)

// WriteReport prints a human-readable catalog summary.
func WriteReport(w io.Writer, a *models.Analytics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Total movies:\t%d\n", a.TotalMovies)
	fmt.Fprintf(tw, "Average rating:\t%.2f\n", a.Rating.Average)
	fmt.Fprintf(tw, "Rating range:\t%.1f - %.1f\n", a.Rating.Min, a.Rating.Max)

	writeShares(tw, "Top languages", a.Languages, TopLanguages, a.TotalMovies)
	writeShares(tw, "Top countries", a.Countries, TopCountries, a.TotalMovies)

	fmt.Fprintf(tw, "\nGenres\n")
	for i, b := range a.Genres {
		fmt.Fprintf(tw, "%2d.\t%s\t%d\n", i+1, orUnknown(b.Value), b.Count)
	}

	fmt.Fprintf(tw, "\nRecent years\n")
	for _, y := range head(a.Years, RecentYears) {
		fmt.Fprintf(tw, "  %d\t%d\n", y.Year, y.Count)
	}

	fmt.Fprintf(tw, "\nDecades\n")
	for _, d := range a.Decades {
		fmt.Fprintf(tw, "  %ds\t%d\n", d.Year, d.Count)
	}

	return tw.Flush()
}

func writeShares(w io.Writer, title string, buckets []models.Bucket, n int, total int64) {
	fmt.Fprintf(w, "\n%s\n", title)
	for i, b := range head(buckets, n) {
		fmt.Fprintf(w, "%2d.\t%s\t%d\t(%s)\n", i+1, orUnknown(b.Value), b.Count, Percent(b.Count, total))
	}
}

// Percent formats count/total with one decimal. A zero total yields "0.0%".
func Percent(count, total int64) string {
	if total <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(count)*100/float64(total))
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}
