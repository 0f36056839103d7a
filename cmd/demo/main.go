// Command demo runs a scripted sequence of bookings and cancellations
// against an in-memory registry and prints each result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/seatbook/internal/domain"
	"github.com/Domenick1991/seatbook/internal/repository"
)

type step struct {
	label     string
	cancel    bool
	flightID  string
	passenger string
}

var script = []step{
	{"Booking KE001 for Connor McGregor", false, "KE001", "Connor McGregor"},
	{"Booking KE001 for Floyd Mayweather", false, "KE001", "Floyd Mayweather"},
	{"Booking KE001 for Mike Tyson", false, "KE001", "Mike Tyson"},
	{"Cancel KE001 for Floyd Mayweather", true, "KE001", "Floyd Mayweather"},
	{"Booking KE001 for Mike Tyson", false, "KE001", "Mike Tyson"},
	{"Booking DL002 for Jon Jones", false, "DL002", "Jon Jones"},
	{"Booking DL002 for Bruce Lee", false, "DL002", "Bruce Lee"},
	{"Booking CA003 for Bruce Lee", false, "CA003", "Bruce Lee"},
	{"Booking CA003 for Mike Tyson", false, "CA003", "Mike Tyson"},
}

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	registry := repository.NewBookingRegistry()

	seed := []struct {
		id, origin, destination string
		seats                   int
	}{
		{"KE001", "Seoul", "Los Angeles", 2},
		{"DL002", "Atlanta", "Paris", 1},
		{"CA003", "Beijing", "Sydney", 3},
	}
	for _, s := range seed {
		flight, err := domain.NewFlight(s.id, s.origin, s.destination, s.seats)
		if err != nil {
			return err
		}
		if err := registry.AddFlight(flight); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "--- Example Usage Outputs ---")
	for _, s := range script {
		var ok bool
		if s.cancel {
			ok = registry.CancelBooking(s.flightID, s.passenger)
		} else {
			ok = registry.BookFlight(s.flightID, s.passenger)
		}
		fmt.Fprintf(w, "%s: %t\n", s.label, ok)
	}

	ca003, _ := registry.GetByID("CA003")
	fmt.Fprintf(w, "Seats left on CA003: %d\n", ca003.AvailableSeats())
	return nil
}
