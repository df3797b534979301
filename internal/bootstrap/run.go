package bootstrap

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/console"
	"github.com/Domenick1991/airreserve/internal/repository"
	"github.com/Domenick1991/airreserve/internal/service/booking"
	"github.com/Domenick1991/airreserve/internal/service/flights"
)

// Run wires the registry and services from cfg and drives the console until the
// operator exits, input ends, or ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	registry := repository.NewFlightRegistry(cfg.DomainFlights())
	flightService := flights.NewFlightService(registry)
	bookingService := booking.NewBookingService(registry, booking.WithLogger(logger))

	logger.Printf("loaded %d flights", len(cfg.Flights))

	con := console.New(flightService, bookingService, cfg.Console, in, out)

	errCh := make(chan error, 1)
	go func() { errCh <- con.Run(ctx) }()

	select {
	case err := <-errCh:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		// A blocked read on the input cannot be interrupted; leave it behind.
		return nil
	}
}
