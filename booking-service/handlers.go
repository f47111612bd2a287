package main

import (
	"context"
	"fmt"
	"strings"

	"plane-booking/shared"
)

func (c *Console) handleCheckAvailability() error {
	code, err := c.promptSeatCode()
	if err != nil {
		return err
	}

	seat, err := c.system.CheckAvailability(code)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}

	fmt.Fprintf(c.out, "Seat %s is %s (%s)\n", seat.Label(), seat.Status, seat.Status.Code())
	return nil
}

func (c *Console) handleBookSeat(ctx context.Context) error {
	code, err := c.promptSeatCode()
	if err != nil {
		return err
	}

	// Refuse early so the operator is not asked for customer details for nothing.
	seat, err := c.system.CheckAvailability(code)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}
	switch seat.Status {
	case shared.SeatEmpty:
	case shared.SeatReserved:
		fmt.Fprintln(c.out, userMessage(shared.ErrSeatAlreadyReserved))
		return nil
	case shared.SeatAisle, shared.SeatStorage:
		fmt.Fprintf(c.out, "Seat %s is %s and cannot be booked\n", seat.Label(), seat.Status)
		return nil
	}

	var customer shared.CustomerData
	if customer.FirstName, err = c.prompt("First name: "); err != nil {
		return err
	}
	if customer.LastName, err = c.prompt("Last name: "); err != nil {
		return err
	}
	if customer.PassportNumber, err = c.prompt("Passport number: "); err != nil {
		return err
	}

	booking, err := c.system.BookSeat(ctx, code, customer)
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}

	fmt.Fprintf(c.out, "Seat %s booked successfully\n", booking.SeatCode())
	fmt.Fprintf(c.out, "Booking reference: %s\n", booking.Reference)
	return nil
}

func (c *Console) handleFreeSeat(ctx context.Context) error {
	reference, err := c.prompt("Please enter the booking reference: ")
	if err != nil {
		return err
	}

	booking, err := c.system.FreeSeat(ctx, strings.ToUpper(reference))
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}

	fmt.Fprintf(c.out, "Seat %s freed successfully\n", booking.SeatCode())
	return nil
}

func (c *Console) handleShowBookingState() error {
	fmt.Fprintln(c.out, "1. Show a booking by reference")
	fmt.Fprintln(c.out, "2. Show the full seat map")
	fmt.Fprintln(c.out, "3. List all bookings")

	choice, err := c.prompt("Choose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return c.handleShowBooking()
	case "2":
		return c.system.PrintSeatMap(c.out)
	case "3":
		c.handleListBookings()
		return nil
	default:
		fmt.Fprintln(c.out, "Invalid option")
		return nil
	}
}

func (c *Console) handleShowBooking() error {
	reference, err := c.prompt("Please enter the booking reference: ")
	if err != nil {
		return err
	}

	booking, err := c.system.LookupBooking(strings.ToUpper(reference))
	if err != nil {
		fmt.Fprintln(c.out, userMessage(err))
		return nil
	}

	fmt.Fprintf(c.out, "Booking reference: %s\n", booking.Reference)
	fmt.Fprintf(c.out, "Name:              %s %s\n", booking.Customer.FirstName, booking.Customer.LastName)
	fmt.Fprintf(c.out, "Passport number:   %s\n", booking.Customer.PassportNumber)
	fmt.Fprintf(c.out, "Seat:              %s\n", booking.SeatCode())
	return nil
}

func (c *Console) handleListBookings() {
	bookings := c.system.Bookings()
	if len(bookings) == 0 {
		fmt.Fprintln(c.out, "No bookings")
		return
	}
	for _, b := range bookings {
		fmt.Fprintf(c.out, "%-5s %s  %s %s\n", b.SeatCode(), b.Reference, b.Customer.FirstName, b.Customer.LastName)
	}
}
