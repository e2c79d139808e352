// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package events

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/logging"
)

func TestNewMovieEvent_CarriesCorrelationID(t *testing.T) {
	ctx := logging.ContextWithCorrelationID(context.Background(), "corr-1")
	e := NewMovieEvent(ctx, TypeCreated, "m1", "Heat")

	if e.EventID == "" || e.OccurredAt.IsZero() {
		t.Fatalf("event not stamped: %+v", e)
	}
	if e.CorrelationID != "corr-1" {
		t.Errorf("CorrelationID = %q", e.CorrelationID)
	}

	data, err := Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.EventID != e.EventID || got.Type != e.Type || got.MovieID != e.MovieID ||
		got.Title != e.Title || got.CorrelationID != e.CorrelationID || !got.OccurredAt.Equal(e.OccurredAt) {
		t.Errorf("decoded = %+v, want %+v", got, e)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		event   MovieEvent
		wantErr string
	}{
		{"missing id", MovieEvent{Type: TypeDeleted, MovieID: "m"}, "event_id"},
		{"bad type", MovieEvent{EventID: "e", Type: "movie.rated", MovieID: "m"}, "unknown event type"},
		{"missing movie", MovieEvent{EventID: "e", Type: TypeUpdated}, "movie_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Marshal(&tt.event); err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestBus_PublishesToTopic(t *testing.T) {
	tr := NewInProcess(watermill.NopLogger{})
	t.Cleanup(func() { _ = tr.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msgs, err := tr.Subscriber.Subscribe(ctx, "movies.test")
	if err != nil {
		t.Fatal(err)
	}

	bus := NewBus(tr.Publisher, "movies.test")
	e := NewMovieEvent(context.Background(), TypeUpdated, "m7", "Roma")
	if err := bus.Publish(ctx, e); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case msg := <-msgs:
		msg.Ack()
		if msg.UUID != e.EventID {
			t.Errorf("UUID = %q, want %q", msg.UUID, e.EventID)
		}
		if msg.Metadata.Get("type") != string(TypeUpdated) {
			t.Errorf("type metadata = %q", msg.Metadata.Get("type"))
		}
	case <-ctx.Done():
		t.Fatal("no message received")
	}

	bus.Close()
	if err := bus.Publish(ctx, e); err == nil {
		t.Error("closed bus should refuse events")
	}
}

func TestBus_RejectsInvalidEvent(t *testing.T) {
	tr := NewInProcess(watermill.NopLogger{})
	t.Cleanup(func() { _ = tr.Close() })

	bus := NewBus(tr.Publisher, "movies.test")
	if err := bus.Publish(context.Background(), &MovieEvent{Type: TypeCreated}); err == nil {
		t.Error("expected validation error")
	}
}

func TestAuditor_ObservesEvents(t *testing.T) {
	tr := NewInProcess(watermill.NopLogger{})
	t.Cleanup(func() { _ = tr.Close() })

	bus := NewBus(tr.Publisher, "movies.audit")
	created := NewMovieEvent(context.Background(), TypeCreated, "m1", "Heat")
	if err := bus.Publish(context.Background(), created); err != nil {
		t.Fatal(err)
	}
	// A malformed payload must not stop the auditor.
	if err := tr.Publisher.Publish("movies.audit", message.NewMessage(watermill.NewUUID(), []byte("junk"))); err != nil {
		t.Fatal(err)
	}
	deleted := NewMovieEvent(context.Background(), TypeDeleted, "m1", "")
	if err := bus.Publish(context.Background(), deleted); err != nil {
		t.Fatal(err)
	}

	seen := make(chan *MovieEvent, 4)
	auditor := NewAuditor(tr.Subscriber, "movies.audit", watermill.NopLogger{}, func(_ context.Context, e *MovieEvent) {
		seen <- e
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- auditor.Serve(ctx) }()

	// Replay order from the persistent channel is not guaranteed.
	want := map[string]Type{created.EventID: TypeCreated, deleted.EventID: TypeDeleted}
	for range 2 {
		select {
		case got := <-seen:
			typ, ok := want[got.EventID]
			if !ok {
				t.Fatalf("unexpected or duplicate event %s (%s)", got.EventID, got.Type)
			}
			if got.Type != typ {
				t.Errorf("event %s type = %s, want %s", got.EventID, got.Type, typ)
			}
			delete(want, got.EventID)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out; still waiting for %v", want)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("auditor did not stop")
	}
}

func TestOpen(t *testing.T) {
	cfg := &config.EventsConfig{Transport: config.TransportGoChannel, Topic: "movies.changes"}
	tr, err := Open(context.Background(), cfg, watermill.NopLogger{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if tr.Publisher == nil || tr.Subscriber == nil {
		t.Error("transport not populated")
	}
	if err := tr.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}

	cfg.Transport = "kafka"
	if _, err := Open(context.Background(), cfg, watermill.NopLogger{}); err == nil {
		t.Error("expected error for unknown transport")
	}
}

func TestOpen_EmbeddedNATS(t *testing.T) {
	if testing.Short() {
		t.Skip("starts an embedded NATS server")
	}

	cfg := &config.EventsConfig{
		Transport:      config.TransportNATS,
		Topic:          "movies.changes",
		EmbeddedServer: true,
		StoreDir:       t.TempDir(),
		StreamName:     "MOVIES",
	}
	tr, err := Open(context.Background(), cfg, watermill.NopLogger{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = tr.Close() })

	seen := make(chan *MovieEvent, 16)
	auditor := NewAuditor(tr.Subscriber, cfg.Topic, watermill.NopLogger{}, func(_ context.Context, e *MovieEvent) {
		seen <- e
	})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = auditor.Serve(ctx) }()

	// The durable consumer only sees messages published after it binds.
	bus := NewBus(tr.Publisher, cfg.Topic)
	deadline := time.After(15 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case e := <-seen:
			if e.MovieID != "m9" {
				t.Errorf("MovieID = %q", e.MovieID)
			}
			return
		case <-tick.C:
			if err := bus.Publish(ctx, NewMovieEvent(ctx, TypeCreated, "m9", "Up")); err != nil {
				t.Fatalf("Publish: %v", err)
			}
		case <-deadline:
			t.Fatal("no event received over NATS")
		}
	}
}
