// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package models

import "sort"

// Bucket is a count for one distinct text value.
type Bucket struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// YearBucket is a count for one year or decade.
type YearBucket struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

// RatingSummary holds rating statistics; all zero on an empty catalog.
type RatingSummary struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Analytics is the aggregated view of the whole catalog.
type Analytics struct {
	TotalMovies int64         `json:"totalMovies"`
	Rating      RatingSummary `json:"rating"`
	Languages   []Bucket      `json:"languages"`
	Countries   []Bucket      `json:"countries"`
	Genres      []Bucket      `json:"genres"`
	Years       []YearBucket  `json:"years"`
	Decades     []YearBucket  `json:"decades"`
}

// FilterOptions lists the distinct values present in the catalog.
type FilterOptions struct {
	Languages []string `json:"languages"`
	Countries []string `json:"countries"`
	Years     []int    `json:"years"`
}

// SortBuckets orders by count descending, then value ascending.
func SortBuckets(b []Bucket) {
	sort.SliceStable(b, func(i, j int) bool {
		if b[i].Count != b[j].Count {
			return b[i].Count > b[j].Count
		}
		return b[i].Value < b[j].Value
	})
}

// SortYearBucketsDesc orders by year descending.
func SortYearBucketsDesc(b []YearBucket) {
	sort.Slice(b, func(i, j int) bool { return b[i].Year > b[j].Year })
}

// EmptyAnalytics returns a value with non-nil slices so it encodes as [] not null.
func EmptyAnalytics() *Analytics {
	return &Analytics{
		Languages: []Bucket{},
		Countries: []Bucket{},
		Genres:    []Bucket{},
		Years:     []YearBucket{},
		Decades:   []YearBucket{},
	}
}
