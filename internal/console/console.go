// Package console is the operator-facing driver: a numbered text menu that
// reads whitespace-separated tokens and calls into the flight and booking
// services. Field prompts repeat until the operator supplies a valid value.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/booking"
	"github.com/Domenick1991/airreserve/internal/service/flights"
	"github.com/Domenick1991/airreserve/internal/validation"
)

const separator = "--------------------------------"

type Console struct {
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
	settings config.ConsoleConfig
	in       *bufio.Scanner
	out      io.Writer
}

func New(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, settings config.ConsoleConfig, in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{
		flights:  flightSvc,
		bookings: bookingSvc,
		settings: settings,
		in:       scanner,
		out:      out,
	}
}

// Run shows the menu until the operator exits or input runs out. Reaching the
// end of input is a normal way to stop and returns nil.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()
		token, err := c.next()
		if err != nil {
			return ignoreEOF(err)
		}

		// Non-numeric input falls through to the invalid choice branch.
		choice, _ := strconv.Atoi(token)

		switch choice {
		case 1:
			err = c.showFlights(ctx)
		case 2:
			err = c.bookTicket(ctx)
		case 3:
			err = c.showPassengers(ctx)
		case 4:
			err = c.showTicket(ctx)
		case 5:
			c.printf("\n%s\n\n", c.settings.Goodbye)
			return nil
		default:
			c.printf("Invalid choice. Please select a valid option.\n")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (c *Console) printMenu() {
	c.printf("\n\n*** %s Menu ***\n", c.settings.Title)
	c.printf("1. View available flights\n")
	c.printf("2. Book a ticket\n")
	c.printf("3. Display all passengers\n")
	c.printf("4. Display ticket details\n")
	c.printf("5. Exit\n")
	c.printf("Enter your choice: ")
}

func (c *Console) showFlights(ctx context.Context) error {
	list, err := c.flights.List(ctx)
	if err != nil {
		return err
	}
	c.printf("\nAvailable flights:\n")
	for i := range list {
		c.printf("\n%s", list[i].Details())
	}
	c.printf("\n")
	return nil
}

func (c *Console) bookTicket(ctx context.Context) error {
	if err := c.showFlights(ctx); err != nil {
		return err
	}

	c.printf("\nEnter flight number to book ticket: ")
	number, err := c.next()
	if err != nil {
		return err
	}
	if _, err := c.flights.GetByNumber(ctx, number); err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			c.printf("Invalid flight number.\n")
			return nil
		}
		return err
	}

	name, err := promptUntilValid(c, "Enter name: ", "Please enter valid name (without numbers)", validation.ValidateName)
	if err != nil {
		return err
	}
	age, err := promptUntilValid(c, "Enter passenger age: ", fmt.Sprintf("Please enter valid age (%d-%d)", validation.MinAge, validation.MaxAge), validation.ParseAge)
	if err != nil {
		return err
	}
	gender, err := promptUntilValid(c, "Enter passenger gender (Male/Female/Other): ", "Please enter valid gender", validation.ValidateGender)
	if err != nil {
		return err
	}

	c.printf("Is passenger disabled? (Yes/No): ")
	answer, err := c.next()
	if err != nil {
		return err
	}
	disabled := validation.ValidateDisability(answer)

	passport, err := promptUntilValid(c, "Enter passport number: ", "Please enter valid passport number (without special characters)", validation.ValidatePassportNumber)
	if err != nil {
		return err
	}

	ticket, err := c.bookings.BookTicket(ctx, booking.BookTicketInput{
		FlightNumber:   number,
		Name:           name,
		Age:            age,
		Gender:         gender,
		Disabled:       disabled,
		PassportNumber: passport,
	})
	switch {
	case errors.Is(err, domain.ErrNoSeatsAvailable):
		c.printf("Sorry, no seats available for the selected flight.\n")
		return nil
	case errors.Is(err, domain.ErrFlightNotFound):
		c.printf("Invalid flight number.\n")
		return nil
	case err != nil:
		return err
	}

	c.printf("%s\n", separator)
	c.printf("Ticket booked successfully!\n")
	c.printf("Passenger Details:\n%s\n", ticket.Passenger.Details(true))
	c.printf("Flight Details:\n%s\n", ticket.Flight.Details())
	c.printf("%s\n", separator)
	return nil
}

func (c *Console) showPassengers(ctx context.Context) error {
	groups, err := c.bookings.ListPassengers(ctx)
	if err != nil {
		return err
	}

	c.printf("\nPassenger Details of all flights:\n")
	for _, g := range groups {
		c.printf("Flight Number: %s\n", g.Flight.Number)
		c.printf("Source: %s\n", g.Flight.Source)
		c.printf("Destination: %s\n", g.Flight.Destination)
		c.printf("Passengers:\n")
		for _, p := range g.Passengers {
			c.printf("%s\n", p.Details(true))
		}
		c.printf("-----------------------------------\n")
	}
	return nil
}

func (c *Console) showTicket(ctx context.Context) error {
	c.printf("Enter your passport number: ")
	passport, err := c.next()
	if err != nil {
		return err
	}

	ticket, err := c.bookings.FindTicketByPassport(ctx, passport)
	if errors.Is(err, domain.ErrPassengerNotFound) {
		c.printf("Passenger not found\n")
		return nil
	}
	if err != nil {
		return err
	}

	c.printf("Your ticket Details:\n\n")
	c.printf("Passenger Details:\n%s\n", ticket.Passenger.Details(true))
	c.printf("Flight Details:\n%s\n", ticket.Flight.Details())
	return nil
}

// promptUntilValid keeps asking until parse accepts the token. Only a read
// failure (including end of input) breaks the loop.
func promptUntilValid[T any](c *Console, prompt, hint string, parse func(string) (T, error)) (T, error) {
	for {
		c.printf("%s", prompt)
		token, err := c.next()
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(token)
		if err == nil {
			return value, nil
		}
		c.printf("%s\n%s\n", capitalize(err.Error()), hint)
	}
}

func (c *Console) next() (string, error) {
	if c.in.Scan() {
		return c.in.Text(), nil
	}
	if err := c.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", io.EOF
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
