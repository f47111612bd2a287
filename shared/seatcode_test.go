package shared

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatCode(t *testing.T) {
	tests := []struct {
		input   string
		row     int
		column  int
		wantErr error
	}{
		{input: "22D", row: 21, column: 2},
		{input: "22d", row: 21, column: 2},
		{input: " 1a ", row: 0, column: 6},
		{input: "80F", row: 79, column: 0},
		{input: "5X", row: 4, column: 3},
		{input: "0A", wantErr: ErrInvalidRow},
		{input: "81C", wantErr: ErrInvalidRow},
		{input: "99999999999999999999999B", wantErr: ErrInvalidRow},
		{input: "22G", wantErr: ErrInvalidFormat},
		{input: "D22", wantErr: ErrInvalidFormat},
		{input: "22", wantErr: ErrInvalidFormat},
		{input: "22DD", wantErr: ErrInvalidFormat},
		{input: "", wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			row, col, err := ParseSeatCode(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.column, col)
		})
	}
}

func TestSeatCodeDerivation(t *testing.T) {
	for row := 1; row <= PlaneRows; row++ {
		for col, letter := range SeatLetters {
			seat := NewSeat(col, row)

			switch {
			case letter == "X":
				assert.Equal(t, "X", seat.Code())
				assert.Equal(t, SeatAisle, seat.Status)
			case (row == 77 || row == 78) && (letter == "F" || letter == "E" || letter == "D"):
				assert.Equal(t, "S", seat.Code())
				assert.Equal(t, SeatStorage, seat.Status)
			default:
				assert.Equal(t, fmt.Sprintf("%d%s", row, letter), seat.Code())
				assert.Equal(t, SeatEmpty, seat.Status)
			}
		}
	}
}

func TestParsedCodeMatchesSeat(t *testing.T) {
	p := NewPlane()
	for _, seat := range p.Seats() {
		if seat.Status != SeatEmpty {
			continue
		}
		row, col, err := ParseSeatCode(seat.Code())
		require.NoError(t, err)
		assert.Equal(t, seat.Row-1, row)
		assert.Equal(t, seat.Column, col)
	}
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "F", ColumnLetter(0))
	assert.Equal(t, "A", ColumnLetter(6))
	assert.Equal(t, "", ColumnLetter(7))
	assert.Equal(t, "", ColumnLetter(-1))

	idx, ok := ColumnIndex("C")
	assert.True(t, ok)
	assert.Equal(t, 4, idx)

	_, ok = ColumnIndex("G")
	assert.False(t, ok)
}
