// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"

	"github.com/tomtom215/cinecatalog/internal/models"
)

func TestErrorType(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{models.NotFoundID("x"), "not_found"},
		{models.InvalidQueryf("bad"), "invalid_query"},
		{fmt.Errorf("wrap: %w", models.ErrValidation), "validation"},
		{models.Unavailable("find", errors.New("timeout")), "unavailable"},
		{errors.New("boom"), "other"},
	}
	for _, tt := range tests {
		if got := ErrorType(tt.err); got != tt.want {
			t.Errorf("ErrorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

// getHistogramCount extracts the sample count from a Prometheus histogram
func getHistogramCount(t *testing.T, obs prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := obs.(prometheus.Metric)
	if !ok {
		t.Fatalf("%T is not a prometheus.Metric", obs)
	}
	var m io_prometheus_client.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordStoreOperation_Duration(t *testing.T) {
	hist := StoreOperationDuration.WithLabelValues("test", "count")
	before := getHistogramCount(t, hist)

	RecordStoreOperation("test", "count", 2*time.Millisecond, nil)
	RecordStoreOperation("test", "count", 3*time.Millisecond, models.NotFoundID("x"))

	if got := getHistogramCount(t, hist) - before; got != 2 {
		t.Errorf("histogram samples delta = %d, want 2", got)
	}
}

func TestRecordStoreOperation(t *testing.T) {
	before := testutil.ToFloat64(StoreOperationErrors.WithLabelValues("test", "find", "unavailable"))

	RecordStoreOperation("test", "find", 5*time.Millisecond, nil)
	RecordStoreOperation("test", "find", 5*time.Millisecond, models.Unavailable("find", errors.New("down")))

	after := testutil.ToFloat64(StoreOperationErrors.WithLabelValues("test", "find", "unavailable"))
	if after-before != 1 {
		t.Errorf("error counter delta = %v, want 1", after-before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/movies", "200")
	before := testutil.ToFloat64(counter)
	RecordAPIRequest("GET", "/api/movies", "200", 10*time.Millisecond)
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("counter delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if testutil.ToFloat64(APIActiveRequests) != before+1 {
		t.Error("gauge did not increase")
	}
	TrackActiveRequest(false)
	if testutil.ToFloat64(APIActiveRequests) != before {
		t.Error("gauge did not return")
	}
}

func TestRecordEventPublished(t *testing.T) {
	okBefore := testutil.ToFloat64(EventsPublished.WithLabelValues("movie.created"))
	errBefore := testutil.ToFloat64(EventsPublishErrors)

	RecordEventPublished("movie.created", nil)
	RecordEventPublished("movie.created", errors.New("nats down"))

	if testutil.ToFloat64(EventsPublished.WithLabelValues("movie.created"))-okBefore != 1 {
		t.Error("published counter not incremented")
	}
	if testutil.ToFloat64(EventsPublishErrors)-errBefore != 1 {
		t.Error("error counter not incremented")
	}
}
