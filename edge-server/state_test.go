package main

import (
	"bytes"
	"testing"

	"plane-booking/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatEvent(eventType, code string) shared.SeatEvent {
	row, col, err := shared.ParseSeatCode(code)
	if err != nil {
		panic(err)
	}
	seat := shared.NewSeat(col, row+1)
	return shared.SeatEvent{ID: eventType + "-" + code, Type: eventType, SeatCode: seat.Code(), Seat: seat}
}

func TestPlaneStateApply(t *testing.T) {
	s := newPlaneState()

	require.NoError(t, s.apply(seatEvent(shared.EventTypeBooked, "22D")))
	assert.Equal(t, 1, s.counts().Reserved)

	assert.ErrorIs(t, s.apply(seatEvent(shared.EventTypeBooked, "22D")), shared.ErrSeatAlreadyReserved)

	require.NoError(t, s.apply(seatEvent(shared.EventTypeFreed, "22D")))
	assert.Equal(t, 0, s.counts().Reserved)

	assert.ErrorIs(t, s.apply(seatEvent(shared.EventTypeFreed, "22D")), shared.ErrSeatNotReserved)
	assert.ErrorIs(t, s.apply(seatEvent(shared.EventTypeBooked, "77F")), shared.ErrSeatNotBookable)
	assert.Error(t, s.apply(seatEvent("held", "1A")))
}

func TestPlaneStateReplace(t *testing.T) {
	s := newPlaneState()

	p := shared.NewPlane()
	require.NoError(t, p.Reserve(0, 0))
	s.replace(p)

	assert.Equal(t, p.Seats(), s.snapshot().Seats)

	var buf bytes.Buffer
	require.NoError(t, s.printSeatMap(&buf))
	assert.Contains(t, buf.String(), "  1 [R][F][F][X][F][F][F]\n")
}
