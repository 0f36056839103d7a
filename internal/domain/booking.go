package domain

import "time"

type BookingEventType string

const (
	EventFlightAdded      BookingEventType = "flight_added"
	EventSeatBooked       BookingEventType = "seat_booked"
	EventBookingCancelled BookingEventType = "booking_cancelled"
)

// BookingEvent records a successful state change on a flight.
type BookingEvent struct {
	ID            string           `json:"id"`
	Type          BookingEventType `json:"type"`
	FlightID      string           `json:"flight_id"`
	PassengerName string           `json:"passenger_name,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}
