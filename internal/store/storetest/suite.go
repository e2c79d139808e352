// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package storetest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
	"github.com/tomtom215/cinecatalog/internal/store"
)

var _ store.Store = (*Memory)(nil)

// Opener returns an empty store; the suite closes it.
type Opener func(t *testing.T) store.Store

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// Fixture returns a small varied catalog with fixed IDs.
func Fixture() []models.Movie {
	n := 0
	mk := func(id, title, desc string, genre []string, rating float64, year int, lang, country string) models.Movie {
		m := models.Movie{
			ID: id, Title: title, Description: desc, Genre: genre,
			Rating: rating, Year: year, Language: lang, Country: country,
			Cast: []string{"Lead " + id, "Support " + id},
		}
		m.ApplyDefaults()
		n++
		m.CreatedAt = epoch.Add(time.Duration(n) * time.Minute)
		m.UpdatedAt = m.CreatedAt
		return m
	}
	return []models.Movie{
		mk("m01", "The Dark Knight", "Batman raises the stakes against the Joker", []string{"Action", "Crime", "Drama"}, 9.0, 2008, "English", "USA"),
		mk("m02", "Parasite", "A poor family schemes to become employed by a wealthy family", []string{"Drama", "Thriller"}, 8.6, 2019, "Korean", "South Korea"),
		mk("m03", "Amelie", "A shy waitress decides to change lives in Paris", []string{"Comedy", "Romance"}, 7.0, 2001, "French", "France"),
		mk("m04", "Mission: Impossible (Redux)", "Agents chase a stolen list", []string{"Action"}, 6.9, 2011, "English", "USA"),
		mk("m05", "Spirited Away", "A girl wanders into a world of spirits", []string{"Animation", "Fantasy"}, 8.6, 2001, "Japanese", "Japan"),
		mk("m06", "Roma", "A year in the life of a housekeeper in Mexico City", []string{"Drama"}, 7.7, 2018, "Spanish", "Mexico"),
	}
}

// Dramas returns n Drama movies sharing one rating so that ordering relies
// on the _id tie-break.
func Dramas(n int) []models.Movie {
	out := make([]models.Movie, n)
	for i := range out {
		m := models.Movie{
			ID:          fmt.Sprintf("d%03d", i),
			Title:       fmt.Sprintf("Drama %d", i),
			Description: "A generated drama",
			Genre:       []string{"Drama"},
			Rating:      7.5,
			Year:        2010 + i%5,
		}
		m.ApplyDefaults()
		m.CreatedAt = epoch
		m.UpdatedAt = epoch
		out[i] = m
	}
	return out
}

// Run executes the backend behavior suite against stores from open.
func Run(t *testing.T, open Opener) {
	t.Helper()
	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store)
	}{
		{"InsertGet", testInsertGet},
		{"GetUnknown", testGetUnknown},
		{"Filters", testFilters},
		{"Pagination", testPagination},
		{"Sorting", testSorting},
		{"Replace", testReplace},
		{"Delete", testDelete},
		{"DeleteAll", testDeleteAll},
		{"AnalyticsEmpty", testAnalyticsEmpty},
		{"Analytics", testAnalytics},
		{"FilterOptions", testFilterOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := open(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

func mustInsert(t *testing.T, s store.Store, movies []models.Movie) {
	t.Helper()
	if err := s.Insert(context.Background(), movies...); err != nil {
		t.Fatalf("Insert: %v", err)
	}
}

func ids(movies []models.Movie) []string {
	out := make([]string, len(movies))
	for i := range movies {
		out[i] = movies[i].ID
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func testInsertGet(t *testing.T, s store.Store) {
	ctx := context.Background()
	fixture := Fixture()
	mustInsert(t, s, fixture)

	got, err := s.Get(ctx, "m01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := fixture[0]
	if got.Title != want.Title || got.Rating != want.Rating || got.Year != want.Year {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
	if !equalIDs(got.Genre, want.Genre) {
		t.Errorf("genre order lost: %v", got.Genre)
	}
	if !equalIDs(got.Cast, want.Cast) {
		t.Errorf("cast = %v", got.Cast)
	}
	if got.Language != "English" || got.Director != models.DefaultDirector || got.Runtime != models.DefaultRuntime {
		t.Errorf("defaults not persisted: %+v", got)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func testGetUnknown(t *testing.T, s store.Store) {
	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func testFilters(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustInsert(t, s, Fixture())
	tests := []struct {
		name string
		pred query.Predicate
		want []string
	}{
		{"all", query.Predicate{}, []string{"m01", "m02", "m03", "m04", "m05", "m06"}},
		{"search title", query.Predicate{}.And(query.Search("dark")), []string{"m01"}},
		{"search description", query.Predicate{}.And(query.Search("PARIS")), []string{"m03"}},
		{"search literal punctuation", query.Predicate{}.And(query.Search("(redux)")), []string{"m04"}},
		{"search regex metacharacters", query.Predicate{}.And(query.Search(".*")), nil},
		{"genre element", query.Predicate{}.And(query.HasElement(query.FieldGenre, "Drama")), []string{"m01", "m02", "m06"}},
		{"language", query.Predicate{}.And(query.EqualsText(query.FieldLanguage, "English")), []string{"m01", "m04"}},
		{"country", query.Predicate{}.And(query.EqualsText(query.FieldCountry, "Japan")), []string{"m05"}},
		{"year", query.Predicate{}.And(query.EqualsNumber(query.FieldYear, 2001)), []string{"m03", "m05"}},
		{"min rating inclusive", query.Predicate{}.And(query.AtLeast(query.FieldRating, 7)), []string{"m01", "m02", "m03", "m05", "m06"}},
		{"conjunction", query.Predicate{}.And(query.HasElement(query.FieldGenre, "Action")).And(query.AtLeast(query.FieldRating, 7)), []string{"m01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Find(ctx, tt.pred, []query.SortKey{{Field: query.FieldID}}, 0, 100)
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if !equalIDs(ids(got), tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("Find = %v, want %v", ids(got), tt.want)
			}
			n, err := s.Count(ctx, tt.pred)
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			if n != int64(len(tt.want)) {
				t.Errorf("Count = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func testPagination(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustInsert(t, s, Dramas(30))
	mustInsert(t, s, Fixture())

	// The generated dramas only; they all share one rating.
	keys, _ := query.ParseSort("-rating")
	q := query.Compiled{
		Predicate: query.Predicate{}.And(query.HasElement(query.FieldGenre, "Drama")).And(query.Search("generated")),
		Sort:      keys,
	}

	first, err := store.Paginate(ctx, s, q, query.Page{Number: 1, Size: 24})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(first.Items) != 24 || !first.Meta.HasMore || first.Meta.Total != 30 {
		t.Errorf("page 1 = %d items, meta %+v", len(first.Items), first.Meta)
	}

	second, err := store.Paginate(ctx, s, q, query.Page{Number: 2, Size: 24})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(second.Items) != 6 || second.Meta.HasMore {
		t.Errorf("page 2 = %d items, meta %+v", len(second.Items), second.Meta)
	}

	seen := map[string]bool{}
	for _, m := range append(first.Items, second.Items...) {
		if seen[m.ID] {
			t.Fatalf("movie %s appears on two pages", m.ID)
		}
		seen[m.ID] = true
	}
	if first.Items[0].ID != "d000" || second.Items[5].ID != "d029" {
		t.Errorf("tie-break order wrong: first %s last %s", first.Items[0].ID, second.Items[5].ID)
	}

	beyond, err := store.Paginate(ctx, s, q, query.Page{Number: 5, Size: 24})
	if err != nil {
		t.Fatalf("beyond: %v", err)
	}
	if len(beyond.Items) != 0 || beyond.Meta.HasMore {
		t.Errorf("beyond = %d items, meta %+v", len(beyond.Items), beyond.Meta)
	}

	huge, err := store.Paginate(ctx, s, q, query.Page{Number: math.MaxInt32, Size: 100})
	if err != nil {
		t.Fatalf("huge page: %v", err)
	}
	if len(huge.Items) != 0 {
		t.Errorf("huge page returned %d items", len(huge.Items))
	}
}

func testSorting(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustInsert(t, s, Fixture())

	tests := []struct {
		token string
		want  []string
	}{
		{"-rating", []string{"m01", "m02", "m05", "m06", "m03", "m04"}},
		{"rating", []string{"m04", "m03", "m06", "m02", "m05", "m01"}},
		{"year", []string{"m03", "m05", "m01", "m04", "m06", "m02"}},
		{"title", []string{"m03", "m04", "m02", "m06", "m05", "m01"}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			keys, err := query.ParseSort(tt.token)
			if err != nil {
				t.Fatal(err)
			}
			got, err := s.Find(ctx, query.Predicate{}, keys, 0, 10)
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("order = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func testReplace(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustInsert(t, s, Fixture())

	m, err := s.Get(ctx, "m03")
	if err != nil {
		t.Fatal(err)
	}
	m.Title = "Amélie"
	m.Genre = []string{"Romance"}
	m.Rating = 8.3
	m.UpdatedAt = epoch.Add(24 * time.Hour)
	if err := s.Replace(ctx, m); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, err := s.Get(ctx, "m03")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Amélie" || got.Rating != 8.3 || !equalIDs(got.Genre, []string{"Romance"}) {
		t.Errorf("after replace = %+v", got)
	}
	if !got.UpdatedAt.Equal(m.UpdatedAt) {
		t.Errorf("UpdatedAt = %v", got.UpdatedAt)
	}
	n, _ := s.Count(ctx, query.Predicate{}.And(query.HasElement(query.FieldGenre, "Comedy")))
	if n != 0 {
		t.Errorf("old genre still indexed: %d", n)
	}

	ghost := *m
	ghost.ID = "ghost"
	if err := s.Replace(ctx, &ghost); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Replace unknown = %v, want ErrNotFound", err)
	}
}

func testDelete(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustInsert(t, s, Fixture())

	if err := s.Delete(ctx, "m02"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "m02"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get after delete = %v", err)
	}
	if err := s.Delete(ctx, "m02"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
	n, _ := s.Count(ctx, query.Predicate{}.And(query.HasElement(query.FieldGenre, "Thriller")))
	if n != 0 {
		t.Errorf("deleted movie still matches genre: %d", n)
	}
}

func testDeleteAll(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustInsert(t, s, Fixture())
	n, err := s.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n != 6 {
		t.Errorf("DeleteAll = %d, want 6", n)
	}
	if c, _ := s.Count(ctx, query.Predicate{}); c != 0 {
		t.Errorf("Count after DeleteAll = %d", c)
	}
}

func testAnalyticsEmpty(t *testing.T, s store.Store) {
	a, err := s.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if a.TotalMovies != 0 || a.Rating != (models.RatingSummary{}) {
		t.Errorf("empty analytics = %+v", a)
	}
	if a.Languages == nil || len(a.Genres) != 0 || len(a.Years) != 0 {
		t.Errorf("empty buckets = %+v", a)
	}
}

func testAnalytics(t *testing.T, s store.Store) {
	mustInsert(t, s, Fixture())
	a, err := s.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	want := query.Aggregate(Fixture())

	if a.TotalMovies != want.TotalMovies {
		t.Errorf("TotalMovies = %d", a.TotalMovies)
	}
	if math.Abs(a.Rating.Average-want.Rating.Average) > 0.01 || a.Rating.Min != 6.9 || a.Rating.Max != 9.0 {
		t.Errorf("rating = %+v, want %+v", a.Rating, want.Rating)
	}
	checkBuckets(t, "genres", a.Genres, want.Genres)
	checkBuckets(t, "languages", a.Languages, want.Languages)
	checkBuckets(t, "countries", a.Countries, want.Countries)
	checkYears(t, "years", a.Years, want.Years)
	checkYears(t, "decades", a.Decades, want.Decades)
}

func checkBuckets(t *testing.T, name string, got, want []models.Bucket) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %+v, want %+v", name, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %+v, want %+v", name, i, got[i], want[i])
		}
	}
}

func checkYears(t *testing.T, name string, got, want []models.YearBucket) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %+v, want %+v", name, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %+v, want %+v", name, i, got[i], want[i])
		}
	}
}

func testFilterOptions(t *testing.T, s store.Store) {
	mustInsert(t, s, Fixture())
	opts, err := s.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("FilterOptions: %v", err)
	}
	wantLangs := []string{"English", "French", "Japanese", "Korean", "Spanish"}
	if !equalIDs(opts.Languages, wantLangs) {
		t.Errorf("languages = %v, want %v", opts.Languages, wantLangs)
	}
	wantCountries := []string{"France", "Japan", "Mexico", "South Korea", "USA"}
	if !equalIDs(opts.Countries, wantCountries) {
		t.Errorf("countries = %v, want %v", opts.Countries, wantCountries)
	}
	wantYears := []int{2001, 2008, 2011, 2018, 2019}
	if len(opts.Years) != len(wantYears) {
		t.Fatalf("years = %v", opts.Years)
	}
	for i := range wantYears {
		if opts.Years[i] != wantYears[i] {
			t.Errorf("years = %v, want %v", opts.Years, wantYears)
			break
		}
	}
}
