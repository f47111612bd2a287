package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"plane-booking/shared"

	"github.com/go-redis/redis/v8"
	"github.com/nats-io/nats.go"
)

// EventPublisher announces seat changes to whoever is listening.
type EventPublisher interface {
	PublishSeatEvent(ctx context.Context, event shared.SeatEvent) error
}

// SeatMirror keeps a write-only copy of the seat map outside the process.
type SeatMirror interface {
	Reset(ctx context.Context, seats []shared.Seat) error
	Store(ctx context.Context, seat shared.Seat) error
}

const publishRetries = 3

type natsPublisher struct {
	conn *nats.Conn
}

func newNATSPublisher(conn *nats.Conn) *natsPublisher {
	return &natsPublisher{conn: conn}
}

func (p *natsPublisher) PublishSeatEvent(ctx context.Context, event shared.SeatEvent) error {
	topic, err := event.Topic()
	if err != nil {
		return err
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	var lastErr error
	for i := 0; i < publishRetries; i++ {
		if lastErr = p.conn.Publish(topic, eventJSON); lastErr == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
	return fmt.Errorf("publish to %s failed after %d attempts: %w", topic, publishRetries, lastErr)
}

type redisMirror struct {
	client *redis.Client
}

func newRedisMirror(client *redis.Client) *redisMirror {
	return &redisMirror{client: client}
}

// Reset replaces the mirrored hash with the given seats in one pipeline.
func (m *redisMirror) Reset(ctx context.Context, seats []shared.Seat) error {
	ctx, cancel := context.WithTimeout(ctx, shared.SinkTimeout)
	defer cancel()

	values := make([]interface{}, 0, len(seats)*2)
	for _, seat := range seats {
		seatJSON, err := json.Marshal(seat)
		if err != nil {
			return err
		}
		values = append(values, seat.Key(), seatJSON)
	}

	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, shared.RedisKeyPlaneSeats)
		if len(values) > 0 {
			pipe.HSet(ctx, shared.RedisKeyPlaneSeats, values...)
		}
		return nil
	})
	return err
}

func (m *redisMirror) Store(ctx context.Context, seat shared.Seat) error {
	ctx, cancel := context.WithTimeout(ctx, shared.SinkTimeout)
	defer cancel()

	seatJSON, err := json.Marshal(seat)
	if err != nil {
		return err
	}
	return m.client.HSet(ctx, shared.RedisKeyPlaneSeats, seat.Key(), seatJSON).Err()
}
