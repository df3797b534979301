package booking

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/repository"
	"github.com/Domenick1991/airreserve/internal/validation"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	BookTicket(ctx context.Context, input BookTicketInput) (*domain.Ticket, error)
	ListPassengers(ctx context.Context) ([]FlightPassengers, error)
	FindTicketByPassport(ctx context.Context, passportNumber string) (*domain.Ticket, error)
}

type BookTicketInput struct {
	FlightNumber   string
	Name           string
	Age            int
	Gender         string
	Disabled       bool
	PassportNumber string
}

// FlightPassengers groups a flight with the passengers booked on it, in booking order.
type FlightPassengers struct {
	Flight     domain.Flight
	Passengers []domain.Passenger
}

type BookingService struct {
	flights         repository.FlightRepository
	logger          *log.Logger
	newTicketNumber func() string
}

type BookingServiceOption func(*BookingService)

func WithLogger(logger *log.Logger) BookingServiceOption {
	return func(s *BookingService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTicketNumbers replaces the uuid generator used for ticket numbers.
func WithTicketNumbers(next func() string) BookingServiceOption {
	return func(s *BookingService) {
		if next != nil {
			s.newTicketNumber = next
		}
	}
}

func NewBookingService(flights repository.FlightRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		flights:         flights,
		logger:          log.Default(),
		newTicketNumber: uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) BookTicket(ctx context.Context, input BookTicketInput) (*domain.Ticket, error) {
	if _, err := s.flights.GetByNumber(ctx, input.FlightNumber); err != nil {
		return nil, err
	}

	passenger := domain.Passenger{
		Name:           input.Name,
		Age:            input.Age,
		Gender:         input.Gender,
		Disabled:       input.Disabled,
		PassportNumber: input.PassportNumber,
	}
	if err := validation.ValidatePassenger(passenger); err != nil {
		return nil, err
	}
	passenger.TicketNumber = s.newTicketNumber()

	flight, err := s.flights.ReserveSeat(ctx, input.FlightNumber, passenger)
	if err != nil {
		if errors.Is(err, domain.ErrNoSeatsAvailable) {
			s.logger.Printf("booking rejected: flight %s is full", input.FlightNumber)
		}
		return nil, err
	}

	s.logger.Printf("ticket %s booked on flight %s, %d seats left", passenger.TicketNumber, flight.Number, flight.AvailableSeats())
	return &domain.Ticket{Passenger: passenger, Flight: *flight}, nil
}

func (s *BookingService) ListPassengers(ctx context.Context) ([]FlightPassengers, error) {
	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	result := make([]FlightPassengers, 0, len(flights))
	for _, f := range flights {
		result = append(result, FlightPassengers{Flight: f, Passengers: f.Passengers})
	}
	return result, nil
}

func (s *BookingService) FindTicketByPassport(ctx context.Context, passportNumber string) (*domain.Ticket, error) {
	return s.flights.FindByPassport(ctx, passportNumber)
}

var _ BookingUseCase = (*BookingService)(nil)
