package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"plane-booking/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConsole(t *testing.T, b *BookingSystem, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, NewConsole(b, input, &out).Run(context.Background()))
	return out.String()
}

func TestConsoleBookAndCheck(t *testing.T) {
	b := NewBookingSystem(WithReferenceGenerator(sequenceReferences("ABC12345")))

	out := runConsole(t, b,
		"2", "22d", "Ada", "Lovelace", "P1234567",
		"1", "22D",
		"5",
	)

	assert.Contains(t, out, "Welcome to the booking system!")
	assert.Contains(t, out, "Seat 22D booked successfully")
	assert.Contains(t, out, "Booking reference: ABC12345")
	assert.Contains(t, out, "Seat 22D is reserved (R)")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))

	booking, err := b.LookupBooking("ABC12345")
	require.NoError(t, err)
	assert.Equal(t, shared.CustomerData{FirstName: "Ada", LastName: "Lovelace", PassportNumber: "P1234567"}, booking.Customer)
}

func TestConsoleRepromptsForSeatCode(t *testing.T) {
	b := NewBookingSystem()

	out := runConsole(t, b, "1", "22G", "0A", "hello", "7C", "5")

	assert.Contains(t, out, "Invalid seat name")
	assert.Contains(t, out, "Invalid row number, rows run from 1 to 80")
	assert.Equal(t, 4, strings.Count(out, "Please enter the seat number: "))
	assert.Contains(t, out, "Seat 7C is empty (F)")
}

func TestConsoleRefusesStorageAndAisle(t *testing.T) {
	b := NewBookingSystem()

	out := runConsole(t, b, "2", "77F", "2", "12X", "5")

	assert.Contains(t, out, "Seat 77F is storage and cannot be booked")
	assert.Contains(t, out, "Seat 12X is aisle and cannot be booked")
	assert.NotContains(t, out, "First name:")
	assert.Empty(t, b.bookings)
}

func TestConsoleRefusesReservedSeat(t *testing.T) {
	b := NewBookingSystem()
	_, err := b.BookSeat(context.Background(), "9A", testCustomer)
	require.NoError(t, err)

	out := runConsole(t, b, "2", "9A", "5")

	assert.Contains(t, out, "Seat is already reserved")
	assert.NotContains(t, out, "First name:")
}

func TestConsoleFreeSeat(t *testing.T) {
	b := NewBookingSystem(WithReferenceGenerator(sequenceReferences("FREEME01")))
	_, err := b.BookSeat(context.Background(), "14B", testCustomer)
	require.NoError(t, err)

	out := runConsole(t, b, "3", "ZZZZZZZZ", "3", "freeme01", "1", "14B", "5")

	assert.Contains(t, out, "No booking found with that reference")
	assert.Contains(t, out, "Seat 14B freed successfully")
	assert.Contains(t, out, "Seat 14B is empty (F)")
}

func TestConsoleShowBookingState(t *testing.T) {
	b := NewBookingSystem(WithReferenceGenerator(sequenceReferences("SHOW0001")))
	_, err := b.BookSeat(context.Background(), "22D", testCustomer)
	require.NoError(t, err)

	out := runConsole(t, b,
		"4", "1", "SHOW0001",
		"4", "2",
		"4", "3",
		"4", "9",
		"5",
	)

	assert.Contains(t, out, "Booking reference: SHOW0001")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "P1234567")
	assert.Contains(t, out, "Seat:              22D")
	assert.Contains(t, out, "     F  E  D  X  C  B  A \n")
	assert.Contains(t, out, " 22 [F][F][R][X][F][F][F]\n")
	assert.Contains(t, out, "22D   SHOW0001  Ada Lovelace")
	assert.Contains(t, out, "Invalid option")
}

func TestConsoleHelpAndInvalidCommand(t *testing.T) {
	out := runConsole(t, NewBookingSystem(), "help", "7", "book", "5")

	assert.Equal(t, 2, strings.Count(out, "1. Check availability of seat"))
	assert.Equal(t, 2, strings.Count(out, "Invalid command"))
}

func TestConsoleEndsCleanlyOnEOF(t *testing.T) {
	b := NewBookingSystem()

	// Input ends halfway through a booking.
	out := runConsole(t, b, "2", "22D", "Ada")

	assert.Contains(t, out, "Goodbye!")
	assert.Empty(t, b.bookings)
}

func TestConsoleStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewConsole(NewBookingSystem(), strings.NewReader("1\n22D\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
