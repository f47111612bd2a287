package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"plane-booking/shared"

	"github.com/go-redis/redis/v8"
)

var errMirrorEmpty = errors.New("seat mirror is empty")

// planeLoader rebuilds the plane from wherever the booking console mirrors it.
type planeLoader interface {
	LoadPlane(ctx context.Context) (*shared.Plane, error)
}

// MirrorClient reads the seat map the booking console keeps in Redis
type MirrorClient struct {
	client *redis.Client
}

func NewMirrorClient(client *redis.Client) *MirrorClient {
	return &MirrorClient{client: client}
}

// LoadPlane fetches every mirrored seat and replays it onto a fresh plane
func (m *MirrorClient) LoadPlane(ctx context.Context) (*shared.Plane, error) {
	ctx, cancel := context.WithTimeout(ctx, shared.SinkTimeout)
	defer cancel()

	seatMap, err := m.client.HGetAll(ctx, shared.RedisKeyPlaneSeats).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seats: %w", err)
	}
	if len(seatMap) == 0 {
		return nil, errMirrorEmpty
	}

	seats, err := decodeSeats(seatMap)
	if err != nil {
		return nil, err
	}
	return shared.RestorePlane(seats)
}

func decodeSeats(seatMap map[string]string) ([]shared.Seat, error) {
	seats := make([]shared.Seat, 0, len(seatMap))
	for key, seatJSON := range seatMap {
		var seat shared.Seat
		if err := json.Unmarshal([]byte(seatJSON), &seat); err != nil {
			return nil, fmt.Errorf("failed to decode seat %s: %w", key, err)
		}
		if seat.Key() != key {
			return nil, fmt.Errorf("seat %s stored under field %s", seat.Key(), key)
		}
		seats = append(seats, seat)
	}
	return seats, nil
}

// Ping verifies the mirror is reachable
func (m *MirrorClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}
