package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"plane-booking/shared"
)

// planeState is the viewer's copy of the seat map, rebuilt from the mirror and kept current by events.
type planeState struct {
	mu        sync.RWMutex
	plane     *shared.Plane
	updatedAt time.Time
}

func newPlaneState() *planeState {
	return &planeState{
		plane:     shared.NewPlane(),
		updatedAt: time.Now(),
	}
}

func (s *planeState) replace(p *shared.Plane) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plane = p
	s.updatedAt = time.Now()
}

// apply replays a seat event through the plane's own transition rules.
func (s *planeState) apply(event shared.SeatEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, col := event.Seat.Row-1, event.Seat.Column

	var err error
	switch event.Type {
	case shared.EventTypeBooked:
		err = s.plane.Reserve(row, col)
	case shared.EventTypeFreed:
		err = s.plane.Release(row, col)
	default:
		return fmt.Errorf("unknown event type: %s", event.Type)
	}
	if err != nil {
		return fmt.Errorf("%s event for seat %s: %w", event.Type, event.SeatCode, err)
	}

	s.updatedAt = time.Now()
	return nil
}

func (s *planeState) snapshot() shared.PlaneState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return shared.PlaneState{Seats: s.plane.Seats()}
}

func (s *planeState) printSeatMap(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plane.PrintSeatMap(w)
}

type seatCounts struct {
	Empty     int       `json:"empty"`
	Reserved  int       `json:"reserved"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *planeState) counts() seatCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return seatCounts{
		Empty:     s.plane.Count(shared.SeatEmpty),
		Reserved:  s.plane.Count(shared.SeatReserved),
		UpdatedAt: s.updatedAt,
	}
}
