package domain

import (
	"fmt"
	"sync"
)

// Flight tracks a fixed seat capacity and the passengers currently holding a seat.
// A passenger is identified by name only; a name holds at most one seat per flight.
type Flight struct {
	id          string
	origin      string
	destination string
	totalSeats  int

	mu             sync.Mutex
	availableSeats int
	passengers     map[string]struct{}
	version        uint64
}

// FlightSnapshot is a point-in-time copy of a flight's state.
type FlightSnapshot struct {
	ID             string `json:"id"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
	// Version is the flight's change counter when the copy was taken.
	Version uint64 `json:"-"`
}

func NewFlight(id, origin, destination string, totalSeats int) (*Flight, error) {
	if totalSeats < 0 {
		return nil, fmt.Errorf("flight %s: %w", id, ErrInvalidSeatCount)
	}
	return &Flight{
		id:             id,
		origin:         origin,
		destination:    destination,
		totalSeats:     totalSeats,
		availableSeats: totalSeats,
		passengers:     make(map[string]struct{}, totalSeats),
	}, nil
}

func (f *Flight) ID() string          { return f.id }
func (f *Flight) Origin() string      { return f.origin }
func (f *Flight) Destination() string { return f.destination }
func (f *Flight) TotalSeats() int     { return f.totalSeats }

// BookSeat reserves a seat for passengerName. It reports false without
// changing state when the flight is full or the passenger already holds a seat.
func (f *Flight) BookSeat(passengerName string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.availableSeats <= 0 {
		return false
	}
	if _, booked := f.passengers[passengerName]; booked {
		return false
	}
	f.passengers[passengerName] = struct{}{}
	f.availableSeats--
	f.version++
	return true
}

// CancelBooking releases the seat held by passengerName. It reports false
// when the passenger holds no seat on this flight.
func (f *Flight) CancelBooking(passengerName string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, booked := f.passengers[passengerName]; !booked {
		return false
	}
	delete(f.passengers, passengerName)
	f.availableSeats++
	f.version++
	return true
}

func (f *Flight) AvailableSeats() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.availableSeats
}

func (f *Flight) IsBooked(passengerName string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, booked := f.passengers[passengerName]
	return booked
}

// Version counts successful bookings and cancellations.
func (f *Flight) Version() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version
}

func (f *Flight) Snapshot() FlightSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FlightSnapshot{
		ID:             f.id,
		Origin:         f.origin,
		Destination:    f.destination,
		TotalSeats:     f.totalSeats,
		AvailableSeats: f.availableSeats,
		Version:        f.version,
	}
}
