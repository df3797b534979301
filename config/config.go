package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Domenick1991/airreserve/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Console ConsoleConfig  `yaml:"console"`
	Flights []FlightConfig `yaml:"flights"`
}

type ConsoleConfig struct {
	Title   string `yaml:"title"`
	Goodbye string `yaml:"goodbye"`
}

type FlightConfig struct {
	Number         string  `yaml:"number"`
	Kind           string  `yaml:"kind"`
	Source         string  `yaml:"source"`
	Destination    string  `yaml:"destination"`
	DepartureTime  string  `yaml:"departure_time"`
	ArrivalTime    string  `yaml:"arrival_time"`
	TotalSeats     int     `yaml:"total_seats"`
	Fare           float64 `yaml:"fare"`
	CharterCompany string  `yaml:"charter_company"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	cfg.Flights = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Flights) == 0 {
		cfg.Flights = Default().Flights
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Default is the built-in seed: six regular flights and two charters.
func Default() *Config {
	return &Config{
		Console: ConsoleConfig{
			Title:   "Airline Reservation System",
			Goodbye: "Exiting the program. Thank you for using the Airline Reservation System :)",
		},
		Flights: []FlightConfig{
			{Number: "AI101", Kind: "regular", Source: "Delhi", Destination: "Mumbai", DepartureTime: "08:00", ArrivalTime: "10:00", TotalSeats: 150, Fare: 5000},
			{Number: "AI102", Kind: "regular", Source: "Mumbai", Destination: "Delhi", DepartureTime: "10:30", ArrivalTime: "12:30", TotalSeats: 150, Fare: 5000},
			{Number: "AI103", Kind: "regular", Source: "Delhi", Destination: "Kolkata", DepartureTime: "13:00", ArrivalTime: "15:30", TotalSeats: 120, Fare: 6000},
			{Number: "AI104", Kind: "regular", Source: "Kolkata", Destination: "Delhi", DepartureTime: "16:00", ArrivalTime: "18:30", TotalSeats: 120, Fare: 6000},
			{Number: "AI105", Kind: "regular", Source: "Mumbai", Destination: "Kolkata", DepartureTime: "19:00", ArrivalTime: "21:30", TotalSeats: 100, Fare: 7000},
			{Number: "AI106", Kind: "regular", Source: "Kolkata", Destination: "Mumbai", DepartureTime: "22:00", ArrivalTime: "00:30", TotalSeats: 100, Fare: 7000},
			{Number: "CF101", Kind: "charter", Source: "Chennai", Destination: "Pune", DepartureTime: "09:00", ArrivalTime: "11:00", TotalSeats: 50, Fare: 8000, CharterCompany: "XYZ"},
			{Number: "CF102", Kind: "charter", Source: "Pune", Destination: "Chennai", DepartureTime: "09:30", ArrivalTime: "11:30", TotalSeats: 50, Fare: 8000, CharterCompany: "ABC"},
		},
	}
}

func (c *Config) Validate() error {
	var errs []error
	for i, f := range c.Flights {
		if f.Number == "" {
			errs = append(errs, fmt.Errorf("flights[%d]: number is required", i))
		}
		if f.TotalSeats <= 0 {
			errs = append(errs, fmt.Errorf("flights[%d] %s: total_seats must be positive", i, f.Number))
		}
		if f.Fare < 0 {
			errs = append(errs, fmt.Errorf("flights[%d] %s: fare must not be negative", i, f.Number))
		}
		switch domain.FlightKind(f.Kind) {
		case domain.FlightKindRegular:
		case domain.FlightKindCharter:
			if f.CharterCompany == "" {
				errs = append(errs, fmt.Errorf("flights[%d] %s: charter_company is required for charter flights", i, f.Number))
			}
		default:
			errs = append(errs, fmt.Errorf("flights[%d] %s: unknown kind %q", i, f.Number, f.Kind))
		}
	}
	return errors.Join(errs...)
}

// DomainFlights converts the configured seed into registry-ready flights.
func (c *Config) DomainFlights() []domain.Flight {
	flights := make([]domain.Flight, 0, len(c.Flights))
	for _, f := range c.Flights {
		if domain.FlightKind(f.Kind) == domain.FlightKindCharter {
			flights = append(flights, domain.NewCharterFlight(f.Number, f.Source, f.Destination, f.DepartureTime, f.ArrivalTime, f.TotalSeats, f.Fare, f.CharterCompany))
			continue
		}
		flights = append(flights, domain.NewRegularFlight(f.Number, f.Source, f.Destination, f.DepartureTime, f.ArrivalTime, f.TotalSeats, f.Fare))
	}
	return flights
}
