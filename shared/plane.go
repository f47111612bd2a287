package shared

import (
	"bufio"
	"fmt"
	"io"
)

// Plane owns the fixed seat grid. Positions are zero-based (row, column).
type Plane struct {
	seats [PlaneRows][PlaneCols]Seat
}

// NewPlane builds the grid row by row from the seat derivation rules.
func NewPlane() *Plane {
	p := &Plane{}
	for row := 0; row < PlaneRows; row++ {
		for col := 0; col < PlaneCols; col++ {
			p.seats[row][col] = NewSeat(col, row+1)
		}
	}
	return p
}

// RestorePlane rebuilds a plane from a mirrored seat list by replaying its reservations.
func RestorePlane(seats []Seat) (*Plane, error) {
	p := NewPlane()
	for _, s := range seats {
		current, err := p.Seat(s.Row-1, s.Column)
		if err != nil {
			return nil, err
		}

		switch s.Status {
		case SeatReserved:
			if err := p.Reserve(s.Row-1, s.Column); err != nil {
				return nil, fmt.Errorf("seat %s: %w", current.Code(), err)
			}
		case SeatEmpty, SeatAisle, SeatStorage:
			if current.Status != s.Status {
				return nil, fmt.Errorf("seat %s: mirrored as %s, layout says %s", current.Code(), s.Status, current.Status)
			}
		default:
			return nil, fmt.Errorf("seat %s: unknown status %d", current.Code(), int(s.Status))
		}
	}
	return p, nil
}

// Seat returns a copy of the seat at the given position.
func (p *Plane) Seat(row, column int) (Seat, error) {
	if row < 0 || row >= PlaneRows || column < 0 || column >= PlaneCols {
		return Seat{}, fmt.Errorf("%w: row %d, column %d", ErrSeatOutOfRange, row, column)
	}
	return p.seats[row][column], nil
}

// Reserve moves an empty seat to reserved.
func (p *Plane) Reserve(row, column int) error {
	seat, err := p.Seat(row, column)
	if err != nil {
		return err
	}

	switch seat.Status {
	case SeatEmpty:
		p.seats[row][column].Status = SeatReserved
		return nil
	case SeatReserved:
		return ErrSeatAlreadyReserved
	case SeatAisle, SeatStorage:
		return fmt.Errorf("%w: %s seat", ErrSeatNotBookable, seat.Status)
	default:
		return fmt.Errorf("%w: unknown status %d", ErrSeatNotBookable, int(seat.Status))
	}
}

// Release moves a reserved seat back to empty.
func (p *Plane) Release(row, column int) error {
	seat, err := p.Seat(row, column)
	if err != nil {
		return err
	}

	switch seat.Status {
	case SeatReserved:
		p.seats[row][column].Status = SeatEmpty
		return nil
	case SeatEmpty, SeatAisle, SeatStorage:
		return fmt.Errorf("%w: seat is %s", ErrSeatNotReserved, seat.Status)
	default:
		return fmt.Errorf("%w: unknown status %d", ErrSeatNotReserved, int(seat.Status))
	}
}

// Seats returns every seat in row-major order.
func (p *Plane) Seats() []Seat {
	seats := make([]Seat, 0, TotalSeats)
	for row := range p.seats {
		seats = append(seats, p.seats[row][:]...)
	}
	return seats
}

// Count returns how many seats currently have the given status.
func (p *Plane) Count(status SeatStatus) int {
	n := 0
	for row := range p.seats {
		for _, s := range p.seats[row] {
			if s.Status == status {
				n++
			}
		}
	}
	return n
}

// PrintSeatMap writes the header of column letters followed by one line per row.
func (p *Plane) PrintSeatMap(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "    ")
	for _, letter := range SeatLetters {
		fmt.Fprintf(bw, " %s ", letter)
	}
	fmt.Fprintln(bw)

	for row := range p.seats {
		fmt.Fprintf(bw, "%3d ", row+1)
		for _, s := range p.seats[row] {
			fmt.Fprintf(bw, "[%s]", s.Status.Code())
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
