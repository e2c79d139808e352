// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Package events publishes and consumes movie change events over Watermill.
//
// Every successful create, update and delete in the catalog produces one
// MovieEvent. The transport is either an in-process Go channel or NATS
// JetStream (external, or embedded in the server process). The only consumer
// shipped here is the audit handler, which logs each change.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/cinecatalog/internal/logging"
)

// Type names a movie change.
type Type string

// Movie change types.
const (
	TypeCreated Type = "movie.created"
	TypeUpdated Type = "movie.updated"
	TypeDeleted Type = "movie.deleted"
)

// Valid reports whether t is a known change type.
func (t Type) Valid() bool {
	switch t {
	case TypeCreated, TypeUpdated, TypeDeleted:
		return true
	}
	return false
}

// MovieEvent describes one change to the catalog.
type MovieEvent struct {
	EventID       string    `json:"event_id"`
	Type          Type      `json:"type"`
	MovieID       string    `json:"movie_id"`
	Title         string    `json:"title,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}

// NewMovieEvent stamps a new event with an ID, the current time and the
// correlation ID carried by ctx.
func NewMovieEvent(ctx context.Context, typ Type, movieID, title string) *MovieEvent {
	return &MovieEvent{
		EventID:       uuid.NewString(),
		Type:          typ,
		MovieID:       movieID,
		Title:         title,
		OccurredAt:    time.Now().UTC(),
		CorrelationID: logging.CorrelationIDFromContext(ctx),
	}
}

// Validate checks the fields every consumer relies on.
func (e *MovieEvent) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("event_id is required")
	}
	if !e.Type.Valid() {
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.MovieID == "" {
		return fmt.Errorf("movie_id is required")
	}
	return nil
}

// Marshal encodes an event as JSON after validating it.
func Marshal(e *MovieEvent) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}
	return json.Marshal(e)
}

// Unmarshal decodes and validates an event.
func Unmarshal(data []byte) (*MovieEvent, error) {
	var e MovieEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}
	return &e, nil
}
