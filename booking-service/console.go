package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"plane-booking/shared"
)

const instructions = `
1. Check availability of seat
2. Book a seat
3. Free a seat
4. Show booking state
5. Exit program
`

// Console is the interactive numeric menu in front of a BookingSystem.
type Console struct {
	system *BookingSystem
	in     *bufio.Scanner
	out    io.Writer
}

func NewConsole(system *BookingSystem, in io.Reader, out io.Writer) *Console {
	return &Console{
		system: system,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run serves menu commands until the operator exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "\nWelcome to the booking system!")
	c.printInstructions()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		command, err := c.prompt("\nEnter a command number, or type (help): ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out, "\nGoodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(command) {
		case "1":
			err = c.handleCheckAvailability()
		case "2":
			err = c.handleBookSeat(ctx)
		case "3":
			err = c.handleFreeSeat(ctx)
		case "4":
			err = c.handleShowBookingState()
		case "5":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		case "help":
			c.printInstructions()
		default:
			fmt.Fprintln(c.out, "Invalid command")
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out, "\nGoodbye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) printInstructions() {
	fmt.Fprint(c.out, instructions)
}

// prompt writes the message and returns the next trimmed input line.
func (c *Console) prompt(message string) (string, error) {
	fmt.Fprint(c.out, message)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// promptSeatCode asks until the operator enters a code that parses.
func (c *Console) promptSeatCode() (string, error) {
	for {
		code, err := c.prompt("Please enter the seat number: ")
		if err != nil {
			return "", err
		}
		if _, _, err := shared.ParseSeatCode(code); err != nil {
			fmt.Fprintln(c.out, userMessage(err))
			continue
		}
		return strings.ToUpper(code), nil
	}
}

// userMessage turns a booking error into the line shown to the operator.
func userMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrInvalidFormat):
		return "Invalid seat name, expected a row and a letter such as 22D"
	case errors.Is(err, shared.ErrInvalidRow):
		return fmt.Sprintf("Invalid row number, rows run from 1 to %d", shared.PlaneRows)
	case errors.Is(err, shared.ErrSeatAlreadyReserved):
		return "Seat is already reserved"
	case errors.Is(err, shared.ErrSeatNotBookable):
		return "Seat cannot be booked"
	case errors.Is(err, shared.ErrSeatNotReserved):
		return "Seat is already free"
	case errors.Is(err, shared.ErrInvalidReference):
		return "No booking found with that reference"
	case errors.Is(err, shared.ErrReferenceExhausted):
		return "Could not generate a booking reference, please try again"
	default:
		return "Error: " + err.Error()
	}
}
