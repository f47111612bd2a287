package shared

import (
	"encoding/json"
	"fmt"
	"time"
)

// SeatStatus is the booking state of a single seat.
type SeatStatus int

// Seat statuses
const (
	SeatEmpty SeatStatus = iota
	SeatReserved
	SeatAisle
	SeatStorage
)

// Code returns the one-letter code used on the seat map.
func (s SeatStatus) Code() string {
	switch s {
	case SeatEmpty:
		return "F"
	case SeatReserved:
		return "R"
	case SeatAisle:
		return "X"
	case SeatStorage:
		return "S"
	default:
		return "?"
	}
}

func (s SeatStatus) String() string {
	switch s {
	case SeatEmpty:
		return "empty"
	case SeatReserved:
		return "reserved"
	case SeatAisle:
		return "aisle"
	case SeatStorage:
		return "storage"
	default:
		return fmt.Sprintf("SeatStatus(%d)", int(s))
	}
}

// MarshalText encodes the status as its map code.
func (s SeatStatus) MarshalText() ([]byte, error) {
	switch s {
	case SeatEmpty, SeatReserved, SeatAisle, SeatStorage:
		return []byte(s.Code()), nil
	default:
		return nil, fmt.Errorf("unknown seat status %d", int(s))
	}
}

// UnmarshalText decodes a map code back into a status.
func (s *SeatStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "F":
		*s = SeatEmpty
	case "R":
		*s = SeatReserved
	case "X":
		*s = SeatAisle
	case "S":
		*s = SeatStorage
	default:
		return fmt.Errorf("unknown seat status code %q", string(text))
	}
	return nil
}

// Seat represents a single cell of the plane grid. Row is 1-based, Column is 0-based.
type Seat struct {
	Row    int        `json:"row"`
	Column int        `json:"column"`
	Status SeatStatus `json:"status"`
}

// NewSeat derives a seat's initial status from its position.
func NewSeat(column, row int) Seat {
	seat := Seat{Row: row, Column: column, Status: SeatEmpty}
	switch {
	case column == AisleColumn:
		seat.Status = SeatAisle
	case isStorage(column, row):
		seat.Status = SeatStorage
	}
	return seat
}

// isStorage reports the fixed cargo carve-out: rows 77-78 at F, E and D.
func isStorage(column, row int) bool {
	return row >= StorageFirstRow && row <= StorageLastRow && column < AisleColumn
}

// Code returns the printed seat number, e.g. "22D". Aisle seats print as "X" and storage as "S".
func (s Seat) Code() string {
	if s.Column == AisleColumn {
		return "X"
	}
	if isStorage(s.Column, s.Row) {
		return "S"
	}
	return fmt.Sprintf("%d%s", s.Row, ColumnLetter(s.Column))
}

// Label always names the seat by row and letter, including aisle and storage positions.
func (s Seat) Label() string {
	return fmt.Sprintf("%d%s", s.Row, ColumnLetter(s.Column))
}

// Key identifies the seat in the Redis mirror.
func (s Seat) Key() string {
	return fmt.Sprintf(RedisFieldSeat, s.Row, s.Column)
}

// MarshalJSON adds the derived seat code to the encoded seat.
func (s Seat) MarshalJSON() ([]byte, error) {
	type seatJSON Seat
	return json.Marshal(struct {
		seatJSON
		Code string `json:"code"`
	}{seatJSON(s), s.Code()})
}

// CustomerData is what the operator records against a reservation.
type CustomerData struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PassportNumber string `json:"passport_number"`
}

// Booking ties a reference to a customer and a seat position.
type Booking struct {
	Reference string       `json:"reference"`
	Customer  CustomerData `json:"customer"`
	Row       int          `json:"row"`
	Column    int          `json:"column"`
	CreatedAt time.Time    `json:"created_at"`
}

// SeatCode returns the printed code of the booked seat.
func (b Booking) SeatCode() string {
	return NewSeat(b.Column, b.Row).Code()
}

// Seat event types
const (
	EventTypeBooked = "booked"
	EventTypeFreed  = "freed"
)

// SeatEvent represents a seat change published over NATS
type SeatEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // booked, freed
	SeatCode  string    `json:"seat_code"`
	Reference string    `json:"reference"`
	Seat      Seat      `json:"seat"`
	Timestamp time.Time `json:"timestamp"`
}

// Topic returns the NATS subject the event is published on.
func (e SeatEvent) Topic() (string, error) {
	switch e.Type {
	case EventTypeBooked:
		return NATSTopicSeatBooked, nil
	case EventTypeFreed:
		return NATSTopicSeatFreed, nil
	default:
		return "", fmt.Errorf("unknown event type: %s", e.Type)
	}
}

// PlaneState represents the complete state of all seats
type PlaneState struct {
	Seats []Seat `json:"seats"`
}

// Message types for WebSocket communication
const (
	MessageTypeSubscribe  = "SUBSCRIBE"
	MessageTypeSeatUpdate = "SEAT_UPDATE"
	MessageTypePlaneState = "PLANE_STATE"
	MessageTypeError      = "ERROR"
)

// ClientMessage represents a message from the browser to the viewer
type ClientMessage struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// ServerMessage represents a message from the viewer to the browser
type ServerMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Error string `json:"error"`
}
