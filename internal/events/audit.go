// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/cinecatalog/internal/logging"
	"github.com/tomtom215/cinecatalog/internal/metrics"
)

// Observer receives every decoded event after it has been logged.
type Observer func(ctx context.Context, e *MovieEvent)

// Auditor consumes movie events and writes an audit log line for each.
// Malformed payloads are logged and acknowledged so they cannot block the
// subscription.
type Auditor struct {
	sub     message.Subscriber
	topic   string
	logger  watermill.LoggerAdapter
	observe Observer
}

// NewAuditor returns an auditor reading topic from sub. observe may be nil.
func NewAuditor(sub message.Subscriber, topic string, logger watermill.LoggerAdapter, observe Observer) *Auditor {
	if logger == nil {
		logger = NewLogger()
	}
	return &Auditor{sub: sub, topic: topic, logger: logger, observe: observe}
}

// Serve runs a fresh Watermill router until ctx is canceled. A new router is
// built per call so a supervisor can restart the auditor.
func (a *Auditor) Serve(ctx context.Context) error {
	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: 10 * time.Second}, a.logger)
	if err != nil {
		return fmt.Errorf("create watermill router: %w", err)
	}

	router.AddMiddleware(
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     time.Second,
			Multiplier:      2,
			Logger:          a.logger,
		}.Middleware,
	)
	router.AddNoPublisherHandler("movie-audit", a.topic, a.sub, a.handle)

	if err := router.Run(ctx); err != nil {
		return fmt.Errorf("run audit router: %w", err)
	}
	return ctx.Err()
}

func (a *Auditor) String() string { return "events-auditor" }

func (a *Auditor) handle(msg *message.Message) error {
	e, err := Unmarshal(msg.Payload)
	if err != nil {
		logging.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed movie event")
		metrics.EventsConsumed.WithLabelValues("malformed").Inc()
		return nil
	}

	ctx := msg.Context()
	if e.CorrelationID != "" {
		ctx = logging.ContextWithCorrelationID(ctx, e.CorrelationID)
	}

	logging.Ctx(ctx).Info().
		Str("event_id", e.EventID).
		Str("type", string(e.Type)).
		Str("movie_id", e.MovieID).
		Str("title", e.Title).
		Time("occurred_at", e.OccurredAt).
		Msg("Movie changed")
	metrics.EventsConsumed.WithLabelValues(string(e.Type)).Inc()

	if a.observe != nil {
		a.observe(ctx, e)
	}
	return nil
}
