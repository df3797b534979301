package domain

import (
	"fmt"
	"strings"
)

// Passenger is a validated traveler. It is built once by the booking service
// and then only copied.
type Passenger struct {
	TicketNumber   string
	Name           string
	Age            int
	Gender         string
	Disabled       bool
	PassportNumber string
}

func (p Passenger) Details(withPassport bool) string {
	disability := "No"
	if p.Disabled {
		disability = "Yes"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", p.Name)
	fmt.Fprintf(&sb, "Age: %d\n", p.Age)
	fmt.Fprintf(&sb, "Gender: %s\n", p.Gender)
	fmt.Fprintf(&sb, "Disability: %s\n", disability)
	if withPassport {
		fmt.Fprintf(&sb, "Passport Number: %s\n", p.PassportNumber)
		if p.TicketNumber != "" {
			fmt.Fprintf(&sb, "Ticket Number: %s\n", p.TicketNumber)
		}
	}
	return sb.String()
}

// Ticket pairs a booked passenger with the flight as it was when looked up.
type Ticket struct {
	Passenger Passenger
	Flight    Flight
}
