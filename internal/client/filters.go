// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package client

import (
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// AllGenres is the genre selection that imposes no genre filter.
const AllGenres = "All"

// DefaultSearchDelay is how long search input must be quiet before it
// applies.
const DefaultSearchDelay = 300 * time.Millisecond

// Filters is an effective filter selection. Zero Year and MinRating mean
// no constraint.
type Filters struct {
	Genre     string
	Search    string
	Language  string
	Country   string
	Year      int
	MinRating float64
}

// DefaultFilters is the "no filter" selection.
func DefaultFilters() Filters {
	return Filters{Genre: AllGenres}
}

// Params renders the selection as listing query parameters.
func (f Filters) Params() url.Values {
	q := url.Values{}
	if f.Genre != "" && f.Genre != AllGenres {
		q.Set("genre", f.Genre)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q.Set("search", s)
	}
	if f.Language != "" {
		q.Set("movieLanguage", f.Language)
	}
	if f.Country != "" {
		q.Set("movieCountry", f.Country)
	}
	if f.Year != 0 {
		q.Set("year", strconv.Itoa(f.Year))
	}
	if f.MinRating > 0 {
		q.Set("minRating", formatFloat(f.MinRating))
	}
	return q
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// normalized folds values that select the same results together.
func (f Filters) normalized() Filters {
	if f.Genre == "" {
		f.Genre = AllGenres
	}
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// FilterState holds the user's filter selection. Search text goes through
// a debounce: each SetSearch restarts the delay and the text applies once
// input has been quiet for the full delay. Every effective change notifies
// subscribers exactly once.
type FilterState struct {
	mu      sync.Mutex
	current Filters
	delay   time.Duration

	pending   string
	hasTimer  bool
	timer     *time.Timer
	searchGen uint64

	subs   map[int]func(Filters)
	nextID int
}

// NewFilterState returns a default selection with the given search delay.
// A non-positive delay uses DefaultSearchDelay.
func NewFilterState(delay time.Duration) *FilterState {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &FilterState{
		current: DefaultFilters(),
		delay:   delay,
		subs:    make(map[int]func(Filters)),
	}
}

// Subscribe registers fn for change notifications. fn runs on the goroutine
// that made the change, or on the debounce timer's goroutine, and must not
// block. The returned func unsubscribes.
func (s *FilterState) Subscribe(fn func(Filters)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Current returns the effective selection.
func (s *FilterState) Current() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// PendingSearch returns the typed search text, applied or not.
func (s *FilterState) PendingSearch() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasTimer {
		return s.pending
	}
	return s.current.Search
}

// update applies mutate and notifies when the effective selection changed.
func (s *FilterState) update(mutate func(*Filters)) {
	s.mu.Lock()
	next := s.current
	mutate(&next)
	subs, changed := s.commitLocked(next)
	s.mu.Unlock()

	notify(subs, changed)
}

// commitLocked stores next and returns the subscribers to notify, or nil
// when nothing effective changed. Callers hold s.mu.
func (s *FilterState) commitLocked(next Filters) ([]func(Filters), Filters) {
	next = next.normalized()
	if next == s.current {
		return nil, next
	}
	s.current = next
	out := make([]func(Filters), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out, next
}

func notify(subs []func(Filters), f Filters) {
	for _, fn := range subs {
		fn(f)
	}
}

// cancelSearchLocked drops any pending debounce. Callers hold s.mu.
func (s *FilterState) cancelSearchLocked() {
	s.searchGen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.hasTimer = false
}

// SetGenre selects a genre; "" or AllGenres clears it.
func (s *FilterState) SetGenre(genre string) {
	s.update(func(f *Filters) { f.Genre = genre })
}

// SetLanguage selects a language; "" clears it.
func (s *FilterState) SetLanguage(language string) {
	s.update(func(f *Filters) { f.Language = language })
}

// SetCountry selects a country; "" clears it.
func (s *FilterState) SetCountry(country string) {
	s.update(func(f *Filters) { f.Country = country })
}

// SetYear selects a release year; 0 clears it.
func (s *FilterState) SetYear(year int) {
	s.update(func(f *Filters) { f.Year = year })
}

// SetMinRating sets the rating threshold; 0 clears it.
func (s *FilterState) SetMinRating(r float64) {
	s.update(func(f *Filters) { f.MinRating = r })
}

// SetSearch records typed search text and restarts the debounce delay.
func (s *FilterState) SetSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = text
	s.searchGen++
	gen := s.searchGen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.hasTimer = true
	s.timer = time.AfterFunc(s.delay, func() { s.applySearch(gen) })
}

func (s *FilterState) applySearch(gen uint64) {
	s.mu.Lock()
	// A newer keystroke or a Reset owns the timer now.
	if gen != s.searchGen {
		s.mu.Unlock()
		return
	}
	s.cancelSearchLocked()
	next := s.current
	next.Search = s.pending
	subs, changed := s.commitLocked(next)
	s.mu.Unlock()

	notify(subs, changed)
}

// FlushSearch applies pending search text immediately.
func (s *FilterState) FlushSearch() {
	s.mu.Lock()
	hasTimer, gen := s.hasTimer, s.searchGen
	s.mu.Unlock()

	if hasTimer {
		s.applySearch(gen)
	}
}

// Reset restores every filter to its default in one update, drops pending
// search text, and notifies once unless already at defaults.
func (s *FilterState) Reset() {
	s.mu.Lock()
	s.cancelSearchLocked()
	s.pending = ""
	subs, changed := s.commitLocked(DefaultFilters())
	s.mu.Unlock()

	notify(subs, changed)
}

// Stop cancels any pending debounce without applying it.
func (s *FilterState) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelSearchLocked()
}
