// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"

	"github.com/tomtom215/cinecatalog/internal/metrics"
)

// Publisher emits movie change events.
type Publisher interface {
	Publish(ctx context.Context, e *MovieEvent) error
}

// Discard drops every event. It is used when events are disabled.
type Discard struct{}

// Publish implements Publisher.
func (Discard) Publish(context.Context, *MovieEvent) error { return nil }

// Bus publishes events to one topic of a Watermill publisher.
type Bus struct {
	pub    message.Publisher
	topic  string
	mu     sync.RWMutex
	closed bool
}

// NewBus wraps pub. The Bus does not own pub; close the Transport instead.
func NewBus(pub message.Publisher, topic string) *Bus {
	return &Bus{pub: pub, topic: topic}
}

// Publish serializes e and sends it. The event ID doubles as the Watermill
// message UUID and the Nats-Msg-Id header so JetStream can deduplicate.
func (b *Bus) Publish(ctx context.Context, e *MovieEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return fmt.Errorf("event bus is closed")
	}

	data, err := Marshal(e)
	if err != nil {
		metrics.RecordEventPublished(string(e.Type), err)
		return err
	}

	msg := message.NewMessage(e.EventID, data)
	msg.Metadata.Set("type", string(e.Type))
	msg.Metadata.Set(natsgo.MsgIdHdr, e.EventID)
	if e.CorrelationID != "" {
		msg.Metadata.Set("correlation_id", e.CorrelationID)
	}
	msg.SetContext(ctx)

	err = b.pub.Publish(b.topic, msg)
	metrics.RecordEventPublished(string(e.Type), err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

// Close stops accepting events.
func (b *Bus) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}
