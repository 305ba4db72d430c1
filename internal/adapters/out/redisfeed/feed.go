// Package redisfeed subscribes to the order change channel published by
// the order form service and adapts raw payloads into validated board
// events. Malformed payloads are logged and dropped at this boundary so
// the engine never sees untyped data.
package redisfeed

import (
	"context"
	"encoding/json"
	"log/slog"

	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisPushFeed implements ports.PushFeed on top of Redis Pub/Sub.
// One subscription covers all categories; the reconciliation feeds
// filter per board.
type RedisPushFeed struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
	pubsub  *redis.PubSub
}

// NewRedisPushFeed creates a push feed listening on the given channel.
func NewRedisPushFeed(client *redis.Client, channel string, logger *slog.Logger) (*RedisPushFeed, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if channel == "" {
		return nil, errs.NewValueIsRequiredError("channel")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &RedisPushFeed{
		client:  client,
		channel: channel,
		logger:  logger.With("component", "redisfeed", "channel", channel),
	}, nil
}

// Subscribe opens the Pub/Sub subscription and starts the decode loop.
// The returned channel closes when the context is cancelled, the
// subscription is closed, or the connection drops for good; go-redis
// reconnects transient failures internally.
func (f *RedisPushFeed) Subscribe(ctx context.Context) (<-chan ports.OrderEvent, error) {
	f.pubsub = f.client.Subscribe(ctx, f.channel)

	// Confirm the subscription before handing out the channel.
	if _, err := f.pubsub.Receive(ctx); err != nil {
		_ = f.pubsub.Close()
		return nil, err
	}

	events := make(chan ports.OrderEvent)
	go f.run(ctx, events)
	return events, nil
}

// Close tears down the subscription; the event channel closes shortly
// after.
func (f *RedisPushFeed) Close() error {
	if f.pubsub == nil {
		return nil
	}
	return f.pubsub.Close()
}

func (f *RedisPushFeed) run(ctx context.Context, events chan<- ports.OrderEvent) {
	defer close(events)

	messages := f.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			event, err := decodeEvent([]byte(msg.Payload))
			if err != nil {
				f.logger.Warn("dropping malformed push event", "error", err)
				continue
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

// decodeEvent parses one wire payload into a validated OrderEvent.
func decodeEvent(payload []byte) (ports.OrderEvent, error) {
	var raw eventDTO
	if err := json.Unmarshal(payload, &raw); err != nil {
		return ports.OrderEvent{}, errs.NewValueIsInvalidErrorWithCause("event payload", err)
	}
	return raw.toDomain()
}
