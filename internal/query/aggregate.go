// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package query

import (
	"math"
	"sort"

	"github.com/tomtom215/cinecatalog/internal/models"
)

// Aggregate computes catalog analytics over movies in memory. Genre is
// multi-valued: every element of a movie's genre list counts once.
func Aggregate(movies []models.Movie) *models.Analytics {
	a := models.EmptyAnalytics()
	if len(movies) == 0 {
		return a
	}

	languages := map[string]int64{}
	countries := map[string]int64{}
	genres := map[string]int64{}
	years := map[int]int64{}
	decades := map[int]int64{}

	var sum float64
	a.Rating.Min = math.Inf(1)
	a.Rating.Max = math.Inf(-1)

	for i := range movies {
		m := &movies[i]
		sum += m.Rating
		a.Rating.Min = math.Min(a.Rating.Min, m.Rating)
		a.Rating.Max = math.Max(a.Rating.Max, m.Rating)
		languages[m.Language]++
		countries[m.Country]++
		for _, g := range m.Genre {
			genres[g]++
		}
		years[m.Year]++
		decades[m.Decade()]++
	}

	a.TotalMovies = int64(len(movies))
	a.Rating.Average = RoundRating(sum / float64(len(movies)))
	a.Languages = buckets(languages)
	a.Countries = buckets(countries)
	a.Genres = buckets(genres)
	a.Years = yearBuckets(years)
	a.Decades = yearBuckets(decades)
	return a
}

// RoundRating rounds to two decimals.
func RoundRating(v float64) float64 {
	return math.Round(v*100) / 100
}

func buckets(counts map[string]int64) []models.Bucket {
	out := make([]models.Bucket, 0, len(counts))
	for v, n := range counts {
		out = append(out, models.Bucket{Value: v, Count: n})
	}
	models.SortBuckets(out)
	return out
}

func yearBuckets(counts map[int]int64) []models.YearBucket {
	out := make([]models.YearBucket, 0, len(counts))
	for y, n := range counts {
		out = append(out, models.YearBucket{Year: y, Count: n})
	}
	models.SortYearBucketsDesc(out)
	return out
}

// Options returns the distinct languages and countries (alphabetical) and
// years (ascending) present in movies. Empty text values are skipped.
func Options(movies []models.Movie) *models.FilterOptions {
	raw := &models.FilterOptions{}
	for i := range movies {
		raw.Languages = append(raw.Languages, movies[i].Language)
		raw.Countries = append(raw.Countries, movies[i].Country)
		raw.Years = append(raw.Years, movies[i].Year)
	}
	return NormalizeOptions(raw)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// NormalizeOptions sorts and de-duplicates option lists returned by a store.
func NormalizeOptions(opts *models.FilterOptions) *models.FilterOptions {
	if opts == nil {
		return &models.FilterOptions{Languages: []string{}, Countries: []string{}, Years: []int{}}
	}
	l := map[string]struct{}{}
	for _, v := range opts.Languages {
		if v != "" {
			l[v] = struct{}{}
		}
	}
	c := map[string]struct{}{}
	for _, v := range opts.Countries {
		if v != "" {
			c[v] = struct{}{}
		}
	}
	y := map[int]struct{}{}
	for _, v := range opts.Years {
		y[v] = struct{}{}
	}
	out := &models.FilterOptions{Languages: sortedKeys(l), Countries: sortedKeys(c), Years: make([]int, 0, len(y))}
	for v := range y {
		out.Years = append(out.Years, v)
	}
	sort.Ints(out.Years)
	return out
}
