package repository

import (
	"fmt"
	"sync"

	"github.com/Domenick1991/seatbook/internal/domain"
)

type FlightRepository interface {
	AddFlight(flight *domain.Flight) error
	GetByID(flightID string) (*domain.Flight, bool)
	BookFlight(flightID, passengerName string) bool
	CancelBooking(flightID, passengerName string) bool
}

// BookingRegistry owns the registered flights keyed by identifier.
// Flights are added once and never removed.
type BookingRegistry struct {
	mu      sync.RWMutex
	flights map[string]*domain.Flight
}

func NewBookingRegistry() *BookingRegistry {
	return &BookingRegistry{flights: make(map[string]*domain.Flight)}
}

// AddFlight registers flight under its identifier. Registering an identifier
// twice is a caller error and leaves the first flight in place.
func (r *BookingRegistry) AddFlight(flight *domain.Flight) error {
	if flight == nil {
		return fmt.Errorf("add flight: %w", domain.ErrNilFlight)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.flights[flight.ID()]; exists {
		return fmt.Errorf("flight %s already exists: %w", flight.ID(), domain.ErrDuplicateFlight)
	}
	r.flights[flight.ID()] = flight
	return nil
}

func (r *BookingRegistry) GetByID(flightID string) (*domain.Flight, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.flights[flightID]
	return f, ok
}

// BookFlight books a seat on the named flight. An unknown flight is an
// ordinary outcome and reports false.
func (r *BookingRegistry) BookFlight(flightID, passengerName string) bool {
	f, ok := r.GetByID(flightID)
	if !ok {
		return false
	}
	return f.BookSeat(passengerName)
}

func (r *BookingRegistry) CancelBooking(flightID, passengerName string) bool {
	f, ok := r.GetByID(flightID)
	if !ok {
		return false
	}
	return f.CancelBooking(passengerName)
}

var _ FlightRepository = (*BookingRegistry)(nil)
