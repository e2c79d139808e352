// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package store_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/tomtom215/cinecatalog/internal/models"
	"github.com/tomtom215/cinecatalog/internal/query"
	"github.com/tomtom215/cinecatalog/internal/store"
	"github.com/tomtom215/cinecatalog/internal/store/storetest"
)

func TestPaginate_FromQueryString(t *testing.T) {
	s := storetest.NewMemory(append(storetest.Dramas(30), storetest.Fixture()...)...)

	q, err := query.Compile(url.Values{"genre": {"Drama"}, "minRating": {"7"}})
	if err != nil {
		t.Fatal(err)
	}
	page, err := query.ParsePage("1", "", query.DefaultPageLimits)
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.Paginate(context.Background(), s, q, page)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	// 30 generated dramas plus three fixture dramas rated at least 7.
	if got.Meta.Total != 33 || len(got.Items) != 24 || !got.Meta.HasMore {
		t.Errorf("meta = %+v items = %d", got.Meta, len(got.Items))
	}
	if got.Items[0].ID != "m01" {
		t.Errorf("highest rated first, got %s", got.Items[0].ID)
	}
}

func TestPaginate_EmptyStore(t *testing.T) {
	got, err := store.Paginate(context.Background(), storetest.NewMemory(), query.Compiled{}, query.Page{Number: 1, Size: 24})
	if err != nil {
		t.Fatal(err)
	}
	if got.Items == nil || len(got.Items) != 0 || got.Meta.HasMore || got.Meta.Total != 0 {
		t.Errorf("empty page = %+v", got)
	}
}

func TestPaginate_StoreFailure(t *testing.T) {
	s := storetest.NewMemory(storetest.Fixture()...)
	s.Fail(errors.New("timeout"))

	got, err := store.Paginate(context.Background(), s, query.Compiled{}, query.Page{Number: 1, Size: 24})
	if got != nil {
		t.Errorf("partial page returned: %+v", got)
	}
	if !errors.Is(err, models.ErrStoreUnavailable) {
		t.Errorf("err = %v", err)
	}
}
