package domain

import (
	"fmt"
	"strings"
)

type FlightKind string

const (
	FlightKindRegular FlightKind = "regular"
	FlightKindCharter FlightKind = "charter"
)

// Flight is a fixed-capacity unit of seats. Regular and charter flights share
// the same booking rules; a charter additionally names its operator.
type Flight struct {
	Number         string
	Kind           FlightKind
	Source         string
	Destination    string
	DepartureTime  string
	ArrivalTime    string
	TotalSeats     int
	Fare           float64
	CharterCompany string
	Passengers     []Passenger
}

func NewRegularFlight(number, source, destination, departure, arrival string, totalSeats int, fare float64) Flight {
	return Flight{
		Number:        number,
		Kind:          FlightKindRegular,
		Source:        source,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		TotalSeats:    totalSeats,
		Fare:          fare,
	}
}

func NewCharterFlight(number, source, destination, departure, arrival string, totalSeats int, fare float64, company string) Flight {
	f := NewRegularFlight(number, source, destination, departure, arrival, totalSeats, fare)
	f.Kind = FlightKindCharter
	f.CharterCompany = company
	return f
}

func (f *Flight) AvailableSeats() int {
	available := f.TotalSeats - len(f.Passengers)
	if available < 0 {
		return 0
	}
	return available
}

// BookTicket appends the passenger if a seat is left. A full flight is left untouched.
func (f *Flight) BookTicket(p Passenger) bool {
	if f.AvailableSeats() <= 0 {
		return false
	}
	f.Passengers = append(f.Passengers, p)
	return true
}

// Clone returns a copy whose passenger list does not alias the original.
func (f Flight) Clone() Flight {
	if f.Passengers != nil {
		f.Passengers = append([]Passenger(nil), f.Passengers...)
	}
	return f
}

func (f *Flight) Details() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Flight Number: %s", f.Number)
	fmt.Fprintf(&sb, "  Source: %s", f.Source)
	fmt.Fprintf(&sb, "  Destination: %s", f.Destination)
	fmt.Fprintf(&sb, "  Departure Time: %s", f.DepartureTime)
	fmt.Fprintf(&sb, "  Arrival Time: %s", f.ArrivalTime)
	fmt.Fprintf(&sb, "  Available Seats: %d", f.AvailableSeats())
	fmt.Fprintf(&sb, "  Fare: %.2f", f.Fare)
	if f.Kind == FlightKindCharter {
		fmt.Fprintf(&sb, "  Company: %s", f.CharterCompany)
	}
	return sb.String()
}
