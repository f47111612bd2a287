package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"plane-booking/logger"
	"plane-booking/shared"

	"github.com/google/uuid"
)

// BookingSystem owns the plane, the live bookings and every reference issued this run.
type BookingSystem struct {
	plane    *shared.Plane
	bookings map[string]shared.Booking
	issued   map[string]struct{}

	newReference func() string
	now          func() time.Time
	publisher    EventPublisher
	mirror       SeatMirror
	log          *slog.Logger
}

type Option func(*BookingSystem)

// WithReferenceGenerator replaces the random reference source.
func WithReferenceGenerator(fn func() string) Option {
	return func(b *BookingSystem) {
		if fn != nil {
			b.newReference = fn
		}
	}
}

// WithClock overrides the time source used for booking and event timestamps.
func WithClock(fn func() time.Time) Option {
	return func(b *BookingSystem) {
		if fn != nil {
			b.now = fn
		}
	}
}

// WithPublisher sends seat events after every successful booking change.
func WithPublisher(p EventPublisher) Option {
	return func(b *BookingSystem) {
		b.publisher = p
	}
}

// WithMirror keeps an external copy of the seat map up to date.
func WithMirror(m SeatMirror) Option {
	return func(b *BookingSystem) {
		b.mirror = m
	}
}

func NewBookingSystem(opts ...Option) *BookingSystem {
	b := &BookingSystem{
		plane:        shared.NewPlane(),
		bookings:     make(map[string]shared.Booking),
		issued:       make(map[string]struct{}),
		newReference: randomReference,
		now:          time.Now,
		log:          logger.WithComponent("booking"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Sync pushes the whole seat map to the mirror, replacing whatever an earlier run left there.
func (b *BookingSystem) Sync(ctx context.Context) error {
	if b.mirror == nil {
		return nil
	}
	return b.mirror.Reset(ctx, b.plane.Seats())
}

func (b *BookingSystem) CheckAvailability(seatCode string) (shared.Seat, error) {
	row, col, err := shared.ParseSeatCode(seatCode)
	if err != nil {
		return shared.Seat{}, err
	}
	return b.plane.Seat(row, col)
}

func (b *BookingSystem) BookSeat(ctx context.Context, seatCode string, customer shared.CustomerData) (shared.Booking, error) {
	row, col, err := shared.ParseSeatCode(seatCode)
	if err != nil {
		return shared.Booking{}, err
	}

	seat, err := b.plane.Seat(row, col)
	if err != nil {
		return shared.Booking{}, err
	}

	switch seat.Status {
	case shared.SeatEmpty:
	case shared.SeatReserved:
		return shared.Booking{}, fmt.Errorf("seat %s: %w", seat.Code(), shared.ErrSeatAlreadyReserved)
	case shared.SeatAisle, shared.SeatStorage:
		return shared.Booking{}, fmt.Errorf("seat %s is %s: %w", seat.Code(), seat.Status, shared.ErrSeatNotBookable)
	default:
		return shared.Booking{}, fmt.Errorf("seat %s: %w", seat.Code(), shared.ErrSeatNotBookable)
	}

	reference, err := b.issueReference()
	if err != nil {
		return shared.Booking{}, err
	}

	if err := b.plane.Reserve(row, col); err != nil {
		return shared.Booking{}, fmt.Errorf("failed to reserve seat %s: %w", seat.Code(), err)
	}

	booking := shared.Booking{
		Reference: reference,
		Customer:  customer,
		Row:       seat.Row,
		Column:    seat.Column,
		CreatedAt: b.now(),
	}
	b.bookings[reference] = booking

	b.log.Info("Seat booked", "seat", seat.Code(), "reference", reference)
	b.notify(ctx, shared.EventTypeBooked, booking)

	return booking, nil
}

func (b *BookingSystem) FreeSeat(ctx context.Context, reference string) (shared.Booking, error) {
	booking, ok := b.bookings[reference]
	if !ok {
		return shared.Booking{}, fmt.Errorf("%w: %q", shared.ErrInvalidReference, reference)
	}

	seat, err := b.plane.Seat(booking.Row-1, booking.Column)
	if err != nil {
		return shared.Booking{}, err
	}

	switch seat.Status {
	case shared.SeatReserved:
	case shared.SeatEmpty, shared.SeatAisle, shared.SeatStorage:
		return shared.Booking{}, fmt.Errorf("seat %s: %w", seat.Code(), shared.ErrSeatNotReserved)
	default:
		return shared.Booking{}, fmt.Errorf("seat %s: %w", seat.Code(), shared.ErrSeatNotReserved)
	}

	if err := b.plane.Release(booking.Row-1, booking.Column); err != nil {
		return shared.Booking{}, fmt.Errorf("failed to release seat %s: %w", seat.Code(), err)
	}
	delete(b.bookings, reference)

	b.log.Info("Seat freed", "seat", seat.Code(), "reference", reference)
	b.notify(ctx, shared.EventTypeFreed, booking)

	return booking, nil
}

// LookupBooking returns the live booking for a reference.
func (b *BookingSystem) LookupBooking(reference string) (shared.Booking, error) {
	booking, ok := b.bookings[reference]
	if !ok {
		return shared.Booking{}, fmt.Errorf("%w: %q", shared.ErrInvalidReference, reference)
	}
	return booking, nil
}

// Bookings returns the live bookings ordered by seat.
func (b *BookingSystem) Bookings() []shared.Booking {
	list := make([]shared.Booking, 0, len(b.bookings))
	for _, booking := range b.bookings {
		list = append(list, booking)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Row != list[j].Row {
			return list[i].Row < list[j].Row
		}
		return list[i].Column < list[j].Column
	})
	return list
}

func (b *BookingSystem) PrintSeatMap(w io.Writer) error {
	return b.plane.PrintSeatMap(w)
}

// issueReference draws references until one has never been handed out this run.
func (b *BookingSystem) issueReference() (string, error) {
	for i := 0; i < shared.MaxReferenceAttempts; i++ {
		ref := b.newReference()
		if _, taken := b.issued[ref]; taken {
			continue
		}
		b.issued[ref] = struct{}{}
		return ref, nil
	}
	return "", shared.ErrReferenceExhausted
}

// notify hands the change to the configured sinks. Sink failures never undo a booking.
func (b *BookingSystem) notify(ctx context.Context, eventType string, booking shared.Booking) {
	seat, err := b.plane.Seat(booking.Row-1, booking.Column)
	if err != nil {
		b.log.Error("Failed to resolve seat for notification", "error", err, "reference", booking.Reference)
		return
	}

	if b.mirror != nil {
		if err := b.mirror.Store(ctx, seat); err != nil {
			b.log.Warn("Failed to mirror seat", "error", err, "seat", seat.Code())
		}
	}

	if b.publisher != nil {
		event := shared.SeatEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			SeatCode:  seat.Code(),
			Reference: booking.Reference,
			Seat:      seat,
			Timestamp: b.now(),
		}
		if err := b.publisher.PublishSeatEvent(ctx, event); err != nil {
			b.log.Warn("Failed to publish seat event", "error", err, "event_type", eventType, "seat", seat.Code())
		}
	}
}
