// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package catalog

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/events"
	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/store/storetest"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*events.MovieEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e *events.MovieEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

var apiConfig = config.APIConfig{
	DefaultPageSize:     24,
	MaxPageSize:         100,
	RecommendationLimit: 20,
	DefaultMinRating:    7,
}

func newService(t *testing.T, movies ...models.Movie) (*Service, *storetest.Memory, *recordingPublisher) {
	t.Helper()
	mem := storetest.NewMemory(movies...)
	pub := &recordingPublisher{}
	svc := New(mem, pub, apiConfig)
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, mem, pub
}

func ptr[T any](v T) *T { return &v }

func validInput() *models.MovieInput {
	return &models.MovieInput{
		Title:       "  Heat ",
		Genre:       []string{"Crime", "Drama"},
		Rating:      ptr(8.3),
		Year:        ptr(1995),
		Description: "A heist crew and a detective.",
	}
}

func TestList(t *testing.T) {
	svc, _, _ := newService(t, append(storetest.Fixture(), storetest.Dramas(30)...)...)

	page, err := svc.List(context.Background(), url.Values{"genre": {"Drama"}, "page": {"2"}})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// 30 generated dramas plus three fixture dramas.
	if page.Meta.Total != 33 || len(page.Items) != 9 || page.Meta.HasMore {
		t.Errorf("meta = %+v, items = %d", page.Meta, len(page.Items))
	}
	if page.Meta.Page != 2 || page.Meta.PageSize != 24 {
		t.Errorf("meta = %+v", page.Meta)
	}
}

func TestList_InvalidQuery(t *testing.T) {
	svc, mem, _ := newService(t, storetest.Fixture()...)

	for _, values := range []url.Values{
		{"page": {"two"}},
		{"limit": {"0"}},
		{"minRating": {"11"}},
		{"sortBy": {"budget"}},
	} {
		if _, err := svc.List(context.Background(), values); !errors.Is(err, models.ErrInvalidQuery) {
			t.Errorf("List(%v) err = %v, want ErrInvalidQuery", values, err)
		}
	}
	if mem.Calls() != 0 {
		t.Errorf("invalid queries reached the store %d times", mem.Calls())
	}
}

func TestList_StoreUnavailable(t *testing.T) {
	svc, mem, _ := newService(t, storetest.Fixture()...)
	mem.Fail(errors.New("connection reset"))

	page, err := svc.List(context.Background(), url.Values{})
	if !errors.Is(err, models.ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
	if page != nil {
		t.Error("no partial page on failure")
	}
}

func TestCreate(t *testing.T) {
	svc, mem, pub := newService(t)
	svc.newID = func() string { return "k1" }

	m, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID != "k1" || m.Title != "Heat" {
		t.Errorf("created = %+v", m)
	}
	if m.Language != models.DefaultLanguage || m.Country != models.DefaultCountry ||
		m.Director != models.DefaultDirector || m.Runtime != models.DefaultRuntime ||
		m.PosterURL != models.DefaultPosterURL {
		t.Errorf("defaults not applied: %+v", m)
	}
	if m.CreatedAt.IsZero() || !m.CreatedAt.Equal(m.UpdatedAt) {
		t.Errorf("timestamps = %v / %v", m.CreatedAt, m.UpdatedAt)
	}

	stored, err := mem.Get(context.Background(), "k1")
	if err != nil || stored.Title != "Heat" {
		t.Errorf("stored = %+v, %v", stored, err)
	}
	if got := pub.types(); len(got) != 1 || got[0] != events.TypeCreated {
		t.Errorf("events = %v", got)
	}
}

func TestCreate_GeneratesKSUID(t *testing.T) {
	svc, _, _ := newService(t)
	a, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}
	if len(a.ID) != 27 || a.ID == b.ID {
		t.Errorf("ids = %q, %q", a.ID, b.ID)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, mem, pub := newService(t)

	in := validInput()
	in.Title = "   "
	in.Rating = ptr(10.5)

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if mem.Calls() != 0 || len(pub.types()) != 0 {
		t.Error("invalid input must not reach the store or the bus")
	}
}

func TestCreate_PublishFailureIsNotFatal(t *testing.T) {
	svc, _, pub := newService(t)
	pub.err = errors.New("bus down")

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestUpdate_PreservesIdentity(t *testing.T) {
	fixture := storetest.Fixture()
	svc, mem, pub := newService(t, fixture...)

	in := validInput()
	in.Language = "Spanish"
	updated, err := svc.Update(context.Background(), "m06", in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != "m06" || !updated.CreatedAt.Equal(fixture[5].CreatedAt) {
		t.Errorf("identity changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(fixture[5].UpdatedAt) {
		t.Errorf("updatedAt not bumped: %v", updated.UpdatedAt)
	}
	// Full replace: fields missing from the body fall back to defaults.
	if updated.Director != models.DefaultDirector || len(updated.Cast) != 0 {
		t.Errorf("not a full replace: %+v", updated)
	}

	stored, _ := mem.Get(context.Background(), "m06")
	if stored.Title != "Heat" || stored.Language != "Spanish" {
		t.Errorf("stored = %+v", stored)
	}
	if got := pub.types(); len(got) != 1 || got[0] != events.TypeUpdated {
		t.Errorf("events = %v", got)
	}
}

func TestUpdate_Unknown(t *testing.T) {
	svc, _, pub := newService(t, storetest.Fixture()...)
	if _, err := svc.Update(context.Background(), "nope", validInput()); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if len(pub.types()) != 0 {
		t.Error("no event for a failed update")
	}
}

func TestDelete(t *testing.T) {
	svc, mem, pub := newService(t, storetest.Fixture()...)

	res, err := svc.Delete(context.Background(), "m02")
	if err != nil || res.ID != "m02" {
		t.Fatalf("Delete = %+v, %v", res, err)
	}
	if _, err := mem.Get(context.Background(), "m02"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("movie still present: %v", err)
	}
	if _, err := svc.Delete(context.Background(), "m02"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
	if _, err := svc.Delete(context.Background(), " "); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("blank id err = %v", err)
	}
	if got := pub.types(); len(got) != 1 || got[0] != events.TypeDeleted {
		t.Errorf("events = %v", got)
	}
}

func TestRecommendations(t *testing.T) {
	svc, _, _ := newService(t, storetest.Fixture()...)

	tests := []struct {
		name   string
		values url.Values
		want   []string
	}{
		// m01 9.0, m02 8.6, m05 8.6, m06 7.7, m03 7.0 ; m04 6.9 excluded.
		{"default min rating", url.Values{}, []string{"m01", "m02", "m05", "m06", "m03"}},
		{"genre", url.Values{"genre": {"Drama"}}, []string{"m01", "m02", "m06"}},
		{"all genre", url.Values{"genre": {"All"}, "minRating": {"8.6"}}, []string{"m01", "m02", "m05"}},
		{"zero min rating", url.Values{"minRating": {"0"}}, []string{"m01", "m02", "m05", "m06", "m03", "m04"}},
		{"nothing", url.Values{"minRating": {"9.5"}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Recommendations(context.Background(), tt.values)
			if err != nil {
				t.Fatalf("Recommendations: %v", err)
			}
			if got == nil {
				t.Fatal("result must be non-nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d movies, want %v", len(got), tt.want)
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("[%d] = %s, want %s", i, got[i].ID, tt.want[i])
				}
			}
		})
	}

	if _, err := svc.Recommendations(context.Background(), url.Values{"minRating": {"ten"}}); !errors.Is(err, models.ErrInvalidQuery) {
		t.Errorf("err = %v, want ErrInvalidQuery", err)
	}
}

func TestRecommendations_Limit(t *testing.T) {
	svc, _, _ := newService(t, storetest.Dramas(30)...)
	got, err := svc.Recommendations(context.Background(), url.Values{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 20 {
		t.Errorf("len = %d, want 20", len(got))
	}
}

func TestAnalyticsAndOptions(t *testing.T) {
	svc, _, _ := newService(t, storetest.Fixture()...)

	a, err := svc.Analytics(context.Background())
	if err != nil || a.TotalMovies != 6 {
		t.Fatalf("Analytics = %+v, %v", a, err)
	}

	opts, err := svc.FilterOptions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(opts.Languages) != 5 || opts.Years[0] != 2001 {
		t.Errorf("options = %+v", opts)
	}
}

func TestNew_Defaults(t *testing.T) {
	svc := New(storetest.NewMemory(), nil, config.APIConfig{})
	if svc.limits.DefaultSize != 24 || svc.recommendLimit != 20 {
		t.Errorf("limits = %+v, recommend = %d", svc.limits, svc.recommendLimit)
	}
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Errorf("Create with discard publisher: %v", err)
	}
}

