package shared

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaneShape(t *testing.T) {
	p := NewPlane()

	seats := p.Seats()
	require.Len(t, seats, TotalSeats)
	assert.Equal(t, 1, seats[0].Row)
	assert.Equal(t, 0, seats[0].Column)
	assert.Equal(t, PlaneRows, seats[len(seats)-1].Row)
	assert.Equal(t, PlaneCols-1, seats[len(seats)-1].Column)

	assert.Equal(t, PlaneRows, p.Count(SeatAisle))
	assert.Equal(t, 6, p.Count(SeatStorage))
	assert.Equal(t, TotalSeats-PlaneRows-6, p.Count(SeatEmpty))
	assert.Equal(t, 0, p.Count(SeatReserved))
}

func TestPlaneSeatOutOfRange(t *testing.T) {
	p := NewPlane()

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {PlaneRows, 0}, {0, PlaneCols}} {
		_, err := p.Seat(pos[0], pos[1])
		assert.ErrorIs(t, err, ErrSeatOutOfRange)
	}
}

func TestPlaneReserveRelease(t *testing.T) {
	p := NewPlane()

	require.NoError(t, p.Reserve(21, 2))
	seat, err := p.Seat(21, 2)
	require.NoError(t, err)
	assert.Equal(t, SeatReserved, seat.Status)

	assert.ErrorIs(t, p.Reserve(21, 2), ErrSeatAlreadyReserved)

	require.NoError(t, p.Release(21, 2))
	seat, _ = p.Seat(21, 2)
	assert.Equal(t, SeatEmpty, seat.Status)

	assert.ErrorIs(t, p.Release(21, 2), ErrSeatNotReserved)
}

func TestPlaneAisleAndStorageNeverChange(t *testing.T) {
	p := NewPlane()

	for _, pos := range [][2]int{{0, AisleColumn}, {76, 0}, {77, 2}} {
		before, err := p.Seat(pos[0], pos[1])
		require.NoError(t, err)

		assert.ErrorIs(t, p.Reserve(pos[0], pos[1]), ErrSeatNotBookable)
		assert.ErrorIs(t, p.Release(pos[0], pos[1]), ErrSeatNotReserved)

		after, _ := p.Seat(pos[0], pos[1])
		assert.Equal(t, before, after)
	}
}

func TestRestorePlane(t *testing.T) {
	p := NewPlane()
	require.NoError(t, p.Reserve(0, 0))
	require.NoError(t, p.Reserve(79, 6))

	restored, err := RestorePlane(p.Seats())
	require.NoError(t, err)
	assert.Equal(t, p.Seats(), restored.Seats())
}

func TestRestorePlaneRejectsInconsistentSeats(t *testing.T) {
	tests := []struct {
		name  string
		seats []Seat
	}{
		{name: "reserved aisle", seats: []Seat{{Row: 1, Column: AisleColumn, Status: SeatReserved}}},
		{name: "empty storage", seats: []Seat{{Row: 77, Column: 0, Status: SeatEmpty}}},
		{name: "storage outside carve-out", seats: []Seat{{Row: 10, Column: 0, Status: SeatStorage}}},
		{name: "out of range", seats: []Seat{{Row: 81, Column: 0, Status: SeatEmpty}}},
		{name: "duplicate reservation", seats: []Seat{
			{Row: 5, Column: 1, Status: SeatReserved},
			{Row: 5, Column: 1, Status: SeatReserved},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RestorePlane(tt.seats)
			assert.Error(t, err)
		})
	}
}

func TestPrintSeatMap(t *testing.T) {
	p := NewPlane()
	require.NoError(t, p.Reserve(21, 2))

	var buf bytes.Buffer
	require.NoError(t, p.PrintSeatMap(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, PlaneRows+1)
	assert.Equal(t, "     F  E  D  X  C  B  A ", lines[0])
	assert.Equal(t, "  1 [F][F][F][X][F][F][F]", lines[1])
	assert.Equal(t, " 22 [F][F][R][X][F][F][F]", lines[22])
	assert.Equal(t, " 77 [S][S][S][X][F][F][F]", lines[77])
	assert.Equal(t, " 80 [F][F][F][X][F][F][F]", lines[80])
}

func TestSeatJSON(t *testing.T) {
	seat := NewSeat(2, 22)
	seat.Status = SeatReserved

	data, err := json.Marshal(seat)
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":22,"column":2,"status":"R","code":"22D"}`, string(data))

	var decoded Seat
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, seat, decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"row":1,"column":0,"status":"Q"}`), &decoded))
}

func TestSeatStatusCodes(t *testing.T) {
	assert.Equal(t, "F", SeatEmpty.Code())
	assert.Equal(t, "R", SeatReserved.Code())
	assert.Equal(t, "X", SeatAisle.Code())
	assert.Equal(t, "S", SeatStorage.Code())
	assert.Equal(t, "?", SeatStatus(42).Code())

	_, err := SeatStatus(42).MarshalText()
	assert.Error(t, err)
}

func TestSeatEventTopic(t *testing.T) {
	topic, err := SeatEvent{Type: EventTypeBooked}.Topic()
	require.NoError(t, err)
	assert.Equal(t, NATSTopicSeatBooked, topic)

	topic, err = SeatEvent{Type: EventTypeFreed}.Topic()
	require.NoError(t, err)
	assert.Equal(t, NATSTopicSeatFreed, topic)

	_, err = SeatEvent{Type: "held"}.Topic()
	assert.Error(t, err)
}

func TestSeatLabelAndKey(t *testing.T) {
	seat := NewSeat(AisleColumn, 22)
	assert.Equal(t, "X", seat.Code())
	assert.Equal(t, "22X", seat.Label())
	assert.Equal(t, "22:3", seat.Key())
}
