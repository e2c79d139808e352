// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/tomtom215/cinecatalog/internal/config"
	"github.com/tomtom215/cinecatalog/internal/logging"
)

// Transport owns the Watermill publisher and subscriber for the configured
// backend, plus the embedded NATS server when one was started.
type Transport struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
	Logger     watermill.LoggerAdapter

	embedded *EmbeddedServer
	closers  []func() error
}

// NewLogger adapts the global zerolog logger for Watermill.
func NewLogger() watermill.LoggerAdapter {
	return watermill.NewSlogLogger(logging.NewSlogLogger())
}

// Open builds the transport selected by cfg.Transport.
func Open(ctx context.Context, cfg *config.EventsConfig, logger watermill.LoggerAdapter) (*Transport, error) {
	if logger == nil {
		logger = NewLogger()
	}
	switch cfg.Transport {
	case config.TransportGoChannel:
		return openGoChannel(logger, false), nil
	case config.TransportNATS:
		return openNATS(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown event transport %q", cfg.Transport)
	}
}

// openGoChannel returns an in-process pub/sub. persistent keeps messages for
// subscribers that attach later.
func openGoChannel(logger watermill.LoggerAdapter, persistent bool) *Transport {
	ps := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
		Persistent:          persistent,
	}, logger)
	return &Transport{
		Publisher:  ps,
		Subscriber: ps,
		Logger:     logger,
		closers:    []func() error{ps.Close},
	}
}

// NewInProcess returns a persistent Go channel transport for tests and tools.
func NewInProcess(logger watermill.LoggerAdapter) *Transport {
	if logger == nil {
		logger = NewLogger()
	}
	return openGoChannel(logger, true)
}

func openNATS(ctx context.Context, cfg *config.EventsConfig, logger watermill.LoggerAdapter) (_ *Transport, err error) {
	t := &Transport{Logger: logger}
	defer func() {
		if err != nil {
			_ = t.Close()
		}
	}()

	url := cfg.NATSURL
	if cfg.EmbeddedServer {
		srv, err := StartEmbeddedServer(cfg.StoreDir)
		if err != nil {
			return nil, err
		}
		t.embedded = srv
		url = srv.ClientURL()
		logging.Info().Str("url", url).Msg("Embedded NATS server started")
	}

	if err := ensureStream(ctx, url, cfg.StreamName, cfg.Topic); err != nil {
		return nil, err
	}

	natsOpts := []natsgo.Option{
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(-1),
		natsgo.ReconnectWait(2 * time.Second),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         url,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			AutoProvision: false,
			TrackMsgId:    true,
			PublishOptions: []natsgo.PubOpt{
				natsgo.RetryAttempts(3),
				natsgo.RetryWait(100 * time.Millisecond),
			},
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create NATS publisher: %w", err)
	}
	t.Publisher = pub
	t.closers = append(t.closers, pub.Close)

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              url,
		QueueGroupPrefix: "cinecatalog",
		SubscribersCount: 1,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     10 * time.Second,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			AutoProvision: false,
			SubscribeOptions: []natsgo.SubOpt{
				natsgo.BindStream(cfg.StreamName),
				natsgo.DeliverNew(),
				natsgo.AckWait(30 * time.Second),
			},
			DurablePrefix: "cinecatalog-audit",
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create NATS subscriber: %w", err)
	}
	t.Subscriber = sub
	t.closers = append(t.closers, sub.Close)

	return t, nil
}

// ensureStream creates or updates the JetStream stream that captures topic.
func ensureStream(ctx context.Context, url, name, topic string) error {
	nc, err := natsgo.Connect(url, natsgo.Timeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("create JetStream context: %w", err)
	}

	streamCfg := jetstream.StreamConfig{
		Name:       name,
		Subjects:   []string{topic},
		Retention:  jetstream.LimitsPolicy,
		MaxAge:     7 * 24 * time.Hour,
		Duplicates: 2 * time.Minute,
		Storage:    jetstream.FileStorage,
		Discard:    jetstream.DiscardOld,
	}

	_, err = js.Stream(ctx, name)
	switch {
	case err == nil:
		if _, err := js.UpdateStream(ctx, streamCfg); err != nil {
			return fmt.Errorf("update stream %s: %w", name, err)
		}
	case errors.Is(err, jetstream.ErrStreamNotFound):
		if _, err := js.CreateStream(ctx, streamCfg); err != nil {
			return fmt.Errorf("create stream %s: %w", name, err)
		}
	default:
		return fmt.Errorf("check stream %s: %w", name, err)
	}
	return nil
}

// Close closes the subscriber and publisher, then the embedded server.
func (t *Transport) Close() error {
	var errs []error
	for i := len(t.closers) - 1; i >= 0; i-- {
		if err := t.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	t.closers = nil
	if t.embedded != nil {
		t.embedded.Shutdown()
		t.embedded = nil
	}
	return errors.Join(errs...)
}
