package booking

import (
	"context"

	"github.com/Domenick1991/seatbook/internal/domain"
	"github.com/Domenick1991/seatbook/internal/logger"
	"github.com/Domenick1991/seatbook/internal/repository"
	"github.com/Domenick1991/seatbook/internal/service/events"
)

// BookingUseCase books and cancels seats. A false result is an ordinary
// outcome (full flight, duplicate passenger, no such booking, unknown
// flight); the error is reserved for a cancelled context.
type BookingUseCase interface {
	BookFlight(ctx context.Context, flightID, passengerName string) (bool, error)
	CancelBooking(ctx context.Context, flightID, passengerName string) (bool, error)
}

type Cache interface {
	InvalidateFlight(ctx context.Context, flightID string) error
}

type BookingService struct {
	flights   repository.FlightRepository
	cache     Cache
	publisher *events.Publisher
	log       *logger.Logger
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithPublisher(publisher *events.Publisher) BookingServiceOption {
	return func(s *BookingService) {
		s.publisher = publisher
	}
}

func WithLogger(log *logger.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.log = log
	}
}

func NewBookingService(flights repository.FlightRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		flights: flights,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) BookFlight(ctx context.Context, flightID, passengerName string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if !s.flights.BookFlight(flightID, passengerName) {
		s.log.Debug("booking rejected", "flight_id", flightID, "passenger", passengerName)
		return false, nil
	}

	s.log.Info("seat booked", "flight_id", flightID, "passenger", passengerName)
	s.changed(ctx, domain.EventSeatBooked, flightID, passengerName)
	return true, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, flightID, passengerName string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if !s.flights.CancelBooking(flightID, passengerName) {
		s.log.Debug("cancellation rejected", "flight_id", flightID, "passenger", passengerName)
		return false, nil
	}

	s.log.Info("booking cancelled", "flight_id", flightID, "passenger", passengerName)
	s.changed(ctx, domain.EventBookingCancelled, flightID, passengerName)
	return true, nil
}

func (s *BookingService) changed(ctx context.Context, eventType domain.BookingEventType, flightID, passengerName string) {
	if s.cache != nil {
		if err := s.cache.InvalidateFlight(ctx, flightID); err != nil {
			s.log.Warn("flight cache invalidation failed", "flight_id", flightID, "error", err)
		}
	}
	s.publisher.Publish(ctx, eventType, flightID, passengerName)
}

var _ BookingUseCase = (*BookingService)(nil)
