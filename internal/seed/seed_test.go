// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package seed

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/metrics"
	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
	"github.com/tomtom215/cinecatalog/internal/store/storetest"
)

func testConfig() config.SeedConfig {
	return config.SeedConfig{
		Wipe:           true,
		BatchSize:      100,
		GeneratedCount: 975,
		RandomSeed:     2000,
		MinYear:        2000,
	}
}

func TestCurated(t *testing.T) {
	movies := Curated()
	if len(movies) != 26 {
		t.Fatalf("len(Curated()) = %d, want 26", len(movies))
	}
	for _, m := range movies {
		if m.Year < 2000 {
			t.Errorf("%s: year %d before 2000", m.Title, m.Year)
		}
		if m.Rating < models.MinRating || m.Rating > models.MaxRating {
			t.Errorf("%s: rating %v out of range", m.Title, m.Rating)
		}
		if len(m.Genre) == 0 || m.Description == "" {
			t.Errorf("%s: missing required fields", m.Title)
		}
	}

	movies[0].Genre[0] = "mutated"
	if Curated()[0].Genre[0] == "mutated" {
		t.Error("Curated must return fresh slices")
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(42).Generate(50)
	b := NewGenerator(42).Generate(50)
	c := NewGenerator(43).Generate(50)

	same := true
	for i := range a {
		if a[i].Title != b[i].Title || a[i].Rating != b[i].Rating || a[i].Year != b[i].Year {
			t.Fatalf("movie %d differs between equal seeds", i)
		}
		if a[i].Title != c[i].Title {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical titles")
	}
}

func TestGenerator_Ranges(t *testing.T) {
	for _, m := range NewGenerator(7).Generate(500) {
		if m.Year < generatedFirstYear || m.Year > generatedLastYear {
			t.Errorf("year %d out of range", m.Year)
		}
		if m.Rating < 6 || m.Rating > 8 {
			t.Errorf("rating %v out of [6, 8]", m.Rating)
		}
		if m.Runtime < 85 || m.Runtime >= 180 {
			t.Errorf("runtime %d out of [85, 180)", m.Runtime)
		}
		if len(m.Genre) < 1 || len(m.Genre) > 2 {
			t.Errorf("genres = %v", m.Genre)
		}
		if len(m.Genre) == 2 && m.Genre[0] == m.Genre[1] {
			t.Errorf("duplicate genre %v", m.Genre)
		}
		if !strings.HasSuffix(m.Title, ")") {
			t.Errorf("title %q lacks year suffix", m.Title)
		}
		if !strings.Contains(m.PosterURL, "sig=") {
			t.Errorf("poster %q", m.PosterURL)
		}
	}
}

func TestDataset_FiltersByMinYear(t *testing.T) {
	cfg := testConfig()
	if got := len(New(nil, cfg).Dataset()); got != 26+975 {
		t.Errorf("len(Dataset) = %d, want 1001", got)
	}

	cfg.MinYear = 2020
	for _, m := range New(nil, cfg).Dataset() {
		if m.Year < 2020 {
			t.Fatalf("%s (%d) should be filtered", m.Title, m.Year)
		}
	}
}

func TestRun_InsertsInBatches(t *testing.T) {
	mem := storetest.NewMemory(models.Movie{ID: "stale", Title: "Stale", Year: 1999})
	before := testutil.ToFloat64(metrics.SeedMoviesInserted)

	res, err := New(mem, testConfig()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Wiped != 1 {
		t.Errorf("Wiped = %d, want 1", res.Wiped)
	}
	if res.Inserted != 1001 || res.Batches != 11 {
		t.Errorf("Inserted/Batches = %d/%d, want 1001/11", res.Inserted, res.Batches)
	}
	if res.Report == nil || res.Report.TotalMovies != 1001 {
		t.Fatalf("Report = %+v", res.Report)
	}
	if got := testutil.ToFloat64(metrics.SeedMoviesInserted) - before; got != 1001 {
		t.Errorf("seed counter delta = %v, want 1001", got)
	}

	if _, err := mem.Get(context.Background(), "stale"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("stale movie should be wiped, got %v", err)
	}
}

func TestRun_AssignsIdentityAndDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.GeneratedCount = 0
	mem := storetest.NewMemory()

	res, err := New(mem, cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Inserted != 26 || res.Batches != 1 {
		t.Errorf("Inserted/Batches = %d/%d", res.Inserted, res.Batches)
	}

	ids := map[string]bool{}
	movies, _ := mem.Find(context.Background(), query.Predicate{}, nil, 0, 100)
	for _, m := range movies {
		if len(m.ID) != 27 {
			t.Errorf("id %q is not a KSUID", m.ID)
		}
		if ids[m.ID] {
			t.Errorf("duplicate id %q", m.ID)
		}
		ids[m.ID] = true
		if m.CreatedAt.IsZero() || !m.CreatedAt.Equal(m.UpdatedAt) {
			t.Errorf("%s: timestamps %v/%v", m.Title, m.CreatedAt, m.UpdatedAt)
		}
	}
}

func TestRun_KeepWithoutWipe(t *testing.T) {
	cfg := testConfig()
	cfg.Wipe = false
	cfg.GeneratedCount = 4
	mem := storetest.NewMemory(models.Movie{ID: "keep", Title: "Keep", Year: 2005, Genre: []string{"Drama"}})

	res, err := New(mem, cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Wiped != 0 || res.Report.TotalMovies != 31 {
		t.Errorf("Wiped=%d Total=%d, want 0/31", res.Wiped, res.Report.TotalMovies)
	}
}

func TestRun_StoreFailure(t *testing.T) {
	mem := storetest.NewMemory()
	mem.Fail(errors.New("connection refused"))

	_, err := New(mem, testConfig()).Run(context.Background())
	if !errors.Is(err, models.ErrStoreUnavailable) {
		t.Errorf("Run() = %v, want ErrStoreUnavailable", err)
	}
}

func TestRun_CanceledWhilePaced(t *testing.T) {
	cfg := testConfig()
	cfg.BatchesPerSecond = 0.001
	mem := storetest.NewMemory()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(mem, cfg).Run(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if res.Inserted > cfg.BatchSize {
		t.Errorf("inserted %d after cancellation", res.Inserted)
	}
}

func TestWriteReport(t *testing.T) {
	a := &models.Analytics{
		TotalMovies: 4,
		Rating:      models.RatingSummary{Average: 7.25, Min: 6.1, Max: 9},
		Languages:   []models.Bucket{{Value: "English", Count: 3}, {Value: "", Count: 1}},
		Countries:   []models.Bucket{{Value: "USA", Count: 4}},
		Genres:      []models.Bucket{{Value: "Drama", Count: 2}},
		Years:       []models.YearBucket{{Year: 2021, Count: 3}, {Year: 2019, Count: 1}},
		Decades:     []models.YearBucket{{Year: 2020, Count: 3}, {Year: 2010, Count: 1}},
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, a); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Total movies:", "7.25", "English", "(75.0%)", "Unknown", "(25.0%)", "2020s", "Drama", "2021"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(1, 3); got != "33.3%" {
		t.Errorf("Percent(1,3) = %q", got)
	}
	if got := Percent(5, 0); got != "0.0%" {
		t.Errorf("Percent(5,0) = %q", got)
	}
}
