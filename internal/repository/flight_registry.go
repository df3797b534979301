package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/Domenick1991/airreserve/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	ReserveSeat(ctx context.Context, number string, passenger domain.Passenger) (*domain.Flight, error)
	FindByPassport(ctx context.Context, passportNumber string) (*domain.Ticket, error)
}

// FlightRegistry keeps flights in memory in the order they were added.
// Flight numbers are not required to be unique; lookups return the first match.
type FlightRegistry struct {
	mu      sync.RWMutex
	flights []domain.Flight
}

func NewFlightRegistry(flights []domain.Flight) *FlightRegistry {
	r := &FlightRegistry{flights: make([]domain.Flight, 0, len(flights))}
	for _, f := range flights {
		r.flights = append(r.flights, f.Clone())
	}
	return r
}

// List returns copies of every flight; bookings made afterwards do not show up in them.
func (r *FlightRegistry) List(ctx context.Context) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	flights := make([]domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		flights = append(flights, f.Clone())
	}
	return flights, nil
}

func (r *FlightRegistry) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(number)
	if i < 0 {
		return nil, domain.ErrFlightNotFound
	}
	f := r.flights[i].Clone()
	return &f, nil
}

// ReserveSeat books the passenger onto the flight inside one critical section,
// so the seat check and the append cannot interleave with another booking.
func (r *FlightRegistry) ReserveSeat(ctx context.Context, number string, passenger domain.Passenger) (*domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(number)
	if i < 0 {
		return nil, domain.ErrFlightNotFound
	}
	if !r.flights[i].BookTicket(passenger) {
		return nil, domain.ErrNoSeatsAvailable
	}
	f := r.flights[i].Clone()
	return &f, nil
}

// FindByPassport scans flights in registry order and their passengers in
// booking order. Passport numbers are compared case-insensitively.
func (r *FlightRegistry) FindByPassport(ctx context.Context, passportNumber string) (*domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.flights {
		for _, p := range f.Passengers {
			if strings.EqualFold(p.PassportNumber, passportNumber) {
				return &domain.Ticket{Passenger: p, Flight: f.Clone()}, nil
			}
		}
	}
	return nil, domain.ErrPassengerNotFound
}

func (r *FlightRegistry) indexOf(number string) int {
	for i := range r.flights {
		if r.flights[i].Number == number {
			return i
		}
	}
	return -1
}

var _ FlightRepository = (*FlightRegistry)(nil)
