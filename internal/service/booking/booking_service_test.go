package booking

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ReserveSeat(ctx context.Context, number string, passenger domain.Passenger) (*domain.Flight, error) {
	args := m.Called(ctx, number, passenger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindByPassport(ctx context.Context, passportNumber string) (*domain.Ticket, error) {
	args := m.Called(ctx, passportNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func fixedTicket(number string) BookingServiceOption {
	return WithTicketNumbers(func() string { return number })
}

func validInput(flightNumber string) BookTicketInput {
	return BookTicketInput{
		FlightNumber:   flightNumber,
		Name:           "Meera",
		Age:            29,
		Gender:         "FEMALE",
		Disabled:       false,
		PassportNumber: "M1234567",
	}
}

func TestBookingService_BookTicket_Success(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewBookingService(mockRepo, WithLogger(quietLogger()), fixedTicket("T-1"))
	ctx := context.Background()

	flight := domain.NewRegularFlight("AI101", "Delhi", "Mumbai", "08:00", "10:00", 150, 5000)
	expectedPassenger := domain.Passenger{
		TicketNumber:   "T-1",
		Name:           "Meera",
		Age:            29,
		Gender:         "FEMALE",
		PassportNumber: "M1234567",
	}
	booked := flight.Clone()
	booked.Passengers = []domain.Passenger{expectedPassenger}

	mockRepo.On("GetByNumber", ctx, "AI101").Return(&flight, nil).Once()
	mockRepo.On("ReserveSeat", ctx, "AI101", expectedPassenger).Return(&booked, nil).Once()

	ticket, err := service.BookTicket(ctx, validInput("AI101"))

	require.NoError(t, err)
	assert.Equal(t, expectedPassenger, ticket.Passenger)
	assert.Equal(t, "AI101", ticket.Flight.Number)
	assert.Equal(t, 149, ticket.Flight.AvailableSeats())
	mockRepo.AssertExpectations(t)
}

func TestBookingService_BookTicket_FlightNotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewBookingService(mockRepo, WithLogger(quietLogger()))
	ctx := context.Background()

	mockRepo.On("GetByNumber", ctx, "ZZ999").Return(nil, domain.ErrFlightNotFound).Once()

	ticket, err := service.BookTicket(ctx, validInput("ZZ999"))

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	assert.Nil(t, ticket)
	mockRepo.AssertNotCalled(t, "ReserveSeat", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_BookTicket_InvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *BookTicketInput)
		wantErr error
	}{
		{name: "digit in name", mutate: func(in *BookTicketInput) { in.Name = "Meera7" }, wantErr: domain.ErrInvalidName},
		{name: "age too high", mutate: func(in *BookTicketInput) { in.Age = 111 }, wantErr: domain.ErrInvalidAge},
		{name: "negative age", mutate: func(in *BookTicketInput) { in.Age = -1 }, wantErr: domain.ErrInvalidAge},
		{name: "unknown gender", mutate: func(in *BookTicketInput) { in.Gender = "unknown" }, wantErr: domain.ErrInvalidGender},
		{name: "forbidden passport char", mutate: func(in *BookTicketInput) { in.PassportNumber = "M-1" }, wantErr: domain.ErrInvalidPassport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockFlightRepository{}
			service := NewBookingService(mockRepo, WithLogger(quietLogger()))
			ctx := context.Background()

			flight := domain.NewRegularFlight("AI101", "Delhi", "Mumbai", "08:00", "10:00", 150, 5000)
			mockRepo.On("GetByNumber", ctx, "AI101").Return(&flight, nil).Once()

			input := validInput("AI101")
			tt.mutate(&input)

			ticket, err := service.BookTicket(ctx, input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, ticket)
			mockRepo.AssertNotCalled(t, "ReserveSeat", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_BookTicket_NoSeats(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewBookingService(mockRepo, WithLogger(quietLogger()), fixedTicket("T-2"))
	ctx := context.Background()

	flight := domain.NewRegularFlight("AI101", "Delhi", "Mumbai", "08:00", "10:00", 0, 5000)
	mockRepo.On("GetByNumber", ctx, "AI101").Return(&flight, nil).Once()
	mockRepo.On("ReserveSeat", ctx, "AI101", mock.AnythingOfType("domain.Passenger")).Return(nil, domain.ErrNoSeatsAvailable).Once()

	ticket, err := service.BookTicket(ctx, validInput("AI101"))

	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
	assert.Nil(t, ticket)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_SingleSeatScenario(t *testing.T) {
	repo := repository.NewFlightRegistry([]domain.Flight{
		domain.NewRegularFlight("SS1", "Delhi", "Agra", "05:00", "06:00", 1, 1500),
	})
	service := NewBookingService(repo, WithLogger(quietLogger()))
	ctx := context.Background()

	first, err := service.BookTicket(ctx, validInput("SS1"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.Passenger.TicketNumber)
	assert.Equal(t, 0, first.Flight.AvailableSeats())

	second := validInput("SS1")
	second.PassportNumber = "OTHER1"
	_, err = service.BookTicket(ctx, second)
	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)

	flight, err := repo.GetByNumber(ctx, "SS1")
	require.NoError(t, err)
	assert.Len(t, flight.Passengers, 1)
}

func TestBookingService_FindTicketByPassport(t *testing.T) {
	repo := repository.NewFlightRegistry([]domain.Flight{
		domain.NewRegularFlight("AI101", "Delhi", "Mumbai", "08:00", "10:00", 150, 5000),
		domain.NewCharterFlight("CF101", "Chennai", "Pune", "09:00", "11:00", 50, 8000, "XYZ"),
	})
	service := NewBookingService(repo, WithLogger(quietLogger()))
	ctx := context.Background()

	input := validInput("CF101")
	input.PassportNumber = "Zx9081"
	booked, err := service.BookTicket(ctx, input)
	require.NoError(t, err)

	ticket, err := service.FindTicketByPassport(ctx, "ZX9081")
	require.NoError(t, err)
	assert.Equal(t, booked.Passenger, ticket.Passenger)
	assert.Equal(t, "CF101", ticket.Flight.Number)
	assert.Equal(t, "XYZ", ticket.Flight.CharterCompany)

	_, err = service.FindTicketByPassport(ctx, "UNBOOKED1")
	assert.ErrorIs(t, err, domain.ErrPassengerNotFound)
}

func TestBookingService_ListPassengers(t *testing.T) {
	repo := repository.NewFlightRegistry([]domain.Flight{
		domain.NewRegularFlight("AI101", "Delhi", "Mumbai", "08:00", "10:00", 150, 5000),
		domain.NewRegularFlight("AI102", "Mumbai", "Delhi", "10:30", "12:30", 150, 5000),
	})
	service := NewBookingService(repo, WithLogger(quietLogger()))
	ctx := context.Background()

	for _, name := range []string{"Anil", "Bela"} {
		in := validInput("AI102")
		in.Name = name
		_, err := service.BookTicket(ctx, in)
		require.NoError(t, err)
	}

	groups, err := service.ListPassengers(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "AI101", groups[0].Flight.Number)
	assert.Empty(t, groups[0].Passengers)
	assert.Equal(t, "AI102", groups[1].Flight.Number)
	require.Len(t, groups[1].Passengers, 2)
	assert.Equal(t, "Anil", groups[1].Passengers[0].Name)
	assert.Equal(t, "Bela", groups[1].Passengers[1].Name)

	again, err := service.ListPassengers(ctx)
	require.NoError(t, err)
	assert.Equal(t, groups, again)
}

func TestBookingService_ListPassengers_Error(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewBookingService(mockRepo, WithLogger(quietLogger()))
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]domain.Flight(nil), errors.New("closed")).Once()

	groups, err := service.ListPassengers(ctx)

	assert.EqualError(t, err, "list flights: closed")
	assert.Nil(t, groups)
}
