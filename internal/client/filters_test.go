// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package client

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu   sync.Mutex
	seen []Filters
}

func (r *recorder) record(f Filters) {
	r.mu.Lock()
	r.seen = append(r.seen, f)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func (r *recorder) last() Filters {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seen[len(r.seen)-1]
}

func TestFilters_Params(t *testing.T) {
	f := Filters{Genre: "Drama", Search: "  dark  ", Language: "Korean", Country: "South Korea", Year: 2019, MinRating: 7.5}
	q := f.Params()
	want := map[string]string{
		"genre":         "Drama",
		"search":        "dark",
		"movieLanguage": "Korean",
		"movieCountry":  "South Korea",
		"year":          "2019",
		"minRating":     "7.5",
	}
	for k, v := range want {
		if q.Get(k) != v {
			t.Errorf("%s = %q, want %q", k, q.Get(k), v)
		}
	}

	if len(DefaultFilters().Params()) != 0 {
		t.Errorf("default params = %v", DefaultFilters().Params())
	}
	if (Filters{Genre: "", Search: "   "}).Params().Has("search") {
		t.Error("blank search should be omitted")
	}
}

func TestFilterState_OneNotificationPerChange(t *testing.T) {
	fs := NewFilterState(time.Hour)
	var rec recorder
	fs.Subscribe(rec.record)

	fs.SetGenre("Drama")
	fs.SetGenre("Drama")
	fs.SetLanguage("Hindi")
	fs.SetYear(2016)
	fs.SetMinRating(8)
	fs.SetCountry("India")

	if rec.count() != 5 {
		t.Fatalf("notifications = %d, want 5", rec.count())
	}
	got := fs.Current()
	if got.Genre != "Drama" || got.Language != "Hindi" || got.Year != 2016 || got.MinRating != 8 || got.Country != "India" {
		t.Errorf("Current() = %+v", got)
	}

	fs.SetGenre("")
	if rec.count() != 6 || fs.Current().Genre != AllGenres {
		t.Errorf("clearing genre: count %d, genre %q", rec.count(), fs.Current().Genre)
	}
	fs.SetGenre(AllGenres)
	if rec.count() != 6 {
		t.Error(`"" and "All" should be the same selection`)
	}
}

func TestFilterState_SearchDebounce(t *testing.T) {
	fs := NewFilterState(30 * time.Millisecond)
	var rec recorder
	fs.Subscribe(rec.record)

	for _, s := range []string{"d", "du", "dun", "dune"} {
		fs.SetSearch(s)
		time.Sleep(5 * time.Millisecond)
	}
	if rec.count() != 0 {
		t.Fatalf("search applied before input was quiet")
	}
	if fs.PendingSearch() != "dune" {
		t.Errorf("PendingSearch() = %q", fs.PendingSearch())
	}

	eventually(t, "debounced search", func() bool { return rec.count() == 1 })
	if rec.last().Search != "dune" || fs.Current().Search != "dune" {
		t.Errorf("applied search = %q", rec.last().Search)
	}

	time.Sleep(60 * time.Millisecond)
	if rec.count() != 1 {
		t.Errorf("notifications = %d, want exactly 1", rec.count())
	}

	fs.SetSearch("dune ")
	time.Sleep(80 * time.Millisecond)
	if rec.count() != 1 {
		t.Error("whitespace-only edit should not notify")
	}
}

func TestFilterState_FlushSearch(t *testing.T) {
	fs := NewFilterState(time.Hour)
	var rec recorder
	fs.Subscribe(rec.record)

	fs.SetSearch("parasite")
	fs.FlushSearch()
	if rec.count() != 1 || fs.Current().Search != "parasite" {
		t.Errorf("flush: count %d, search %q", rec.count(), fs.Current().Search)
	}
	fs.FlushSearch()
	if rec.count() != 1 {
		t.Error("flush without pending input should not notify")
	}
}

func TestFilterState_Reset(t *testing.T) {
	fs := NewFilterState(20 * time.Millisecond)
	var rec recorder
	fs.Subscribe(rec.record)

	fs.Reset()
	if rec.count() != 0 {
		t.Fatal("Reset at defaults should not notify")
	}

	fs.SetGenre("Action")
	fs.SetLanguage("English")
	fs.SetYear(2010)
	fs.SetSearch("knight")
	before := rec.count()

	fs.Reset()
	if rec.count() != before+1 {
		t.Fatalf("Reset notifications = %d, want 1", rec.count()-before)
	}
	if rec.last() != DefaultFilters() || fs.Current() != DefaultFilters() {
		t.Errorf("after Reset = %+v", fs.Current())
	}

	// The pending "knight" must not land after Reset.
	time.Sleep(60 * time.Millisecond)
	if rec.count() != before+1 || fs.Current().Search != "" {
		t.Errorf("pending search applied after Reset: %+v", fs.Current())
	}
	if fs.PendingSearch() != "" {
		t.Errorf("PendingSearch() = %q", fs.PendingSearch())
	}
}

func TestFilterState_Unsubscribe(t *testing.T) {
	fs := NewFilterState(0)
	var rec recorder
	unsubscribe := fs.Subscribe(rec.record)

	fs.SetGenre("War")
	unsubscribe()
	fs.SetGenre("Western")

	if rec.count() != 1 {
		t.Errorf("notifications = %d, want 1", rec.count())
	}
	if fs.delay != DefaultSearchDelay {
		t.Errorf("delay = %v", fs.delay)
	}
}
