package repository

import (
	"testing"

	"github.com/Domenick1991/seatbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustFlight(t require.TestingT, id, origin, destination string, seats int) *domain.Flight {
	f, err := domain.NewFlight(id, origin, destination, seats)
	require.NoError(t, err)
	return f
}

func newTestRegistry(t *testing.T) *BookingRegistry {
	t.Helper()
	r := NewBookingRegistry()
	require.NoError(t, r.AddFlight(mustFlight(t, "BA123", "Seattle", "New York", 1)))
	require.NoError(t, r.AddFlight(mustFlight(t, "BA456", "Seattle", "London", 1)))
	return r
}

func TestBookingRegistry_AddExistingFlight(t *testing.T) {
	r := newTestRegistry(t)

	err := r.AddFlight(mustFlight(t, "BA123", "Paris", "Rome", 5))

	assert.ErrorIs(t, err, domain.ErrDuplicateFlight)
	assert.Contains(t, err.Error(), "BA123")

	f, ok := r.GetByID("BA123")
	require.True(t, ok)
	assert.Equal(t, "Seattle", f.Origin())
	assert.Equal(t, 1, f.TotalSeats())
}

func TestBookingRegistry_DuplicateKeepsFirstFlightState(t *testing.T) {
	r := newTestRegistry(t)
	require.True(t, r.BookFlight("BA123", "Alice"))

	err := r.AddFlight(mustFlight(t, "BA123", "Seattle", "New York", 1))
	require.Error(t, err)

	f, _ := r.GetByID("BA123")
	assert.Equal(t, 0, f.AvailableSeats())
	assert.True(t, f.IsBooked("Alice"))
}

func TestBookingRegistry_AddNilFlight(t *testing.T) {
	r := NewBookingRegistry()

	err := r.AddFlight(nil)

	assert.ErrorIs(t, err, domain.ErrNilFlight)
	assert.False(t, r.BookFlight("", "Alice"))
}

func TestBookingRegistry_BookAndCancel(t *testing.T) {
	r := newTestRegistry(t)

	assert.True(t, r.BookFlight("BA123", "Alice"))
	assert.False(t, r.BookFlight("BA123", "Bob"))

	assert.True(t, r.CancelBooking("BA123", "Alice"))
	assert.True(t, r.BookFlight("BA123", "Bob"))
}

func TestBookingRegistry_FlightsAreIndependent(t *testing.T) {
	r := newTestRegistry(t)

	assert.True(t, r.BookFlight("BA123", "Alice"))
	assert.True(t, r.BookFlight("BA456", "Alice"))

	other, _ := r.GetByID("BA456")
	assert.Equal(t, 0, other.AvailableSeats())
}

func TestBookingRegistry_UnknownFlight(t *testing.T) {
	r := newTestRegistry(t)

	assert.False(t, r.BookFlight("UNKNOWN", "Alice"))
	assert.False(t, r.CancelBooking("UNKNOWN", "Alice"))

	_, ok := r.GetByID("UNKNOWN")
	assert.False(t, ok)
}

func TestBookingRegistry_CancelNotBooked(t *testing.T) {
	r := newTestRegistry(t)

	assert.False(t, r.CancelBooking("BA123", "Alice"))

	f, _ := r.GetByID("BA123")
	assert.Equal(t, 1, f.AvailableSeats())
}

func TestBookingRegistry_DelegatesToFlight(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seats := rapid.IntRange(0, 5).Draw(rt, "seats")
		r := NewBookingRegistry()
		require.NoError(rt, r.AddFlight(mustFlight(rt, "CA003", "Beijing", "Sydney", seats)))
		shadow := mustFlight(rt, "CA003", "Beijing", "Sydney", seats)

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			name := rapid.SampledFrom([]string{"Alice", "Bob", "Carol"}).Draw(rt, "name")
			if rapid.Bool().Draw(rt, "book") {
				require.Equal(rt, shadow.BookSeat(name), r.BookFlight("CA003", name))
			} else {
				require.Equal(rt, shadow.CancelBooking(name), r.CancelBooking("CA003", name))
			}
		}

		f, _ := r.GetByID("CA003")
		require.Equal(rt, shadow.AvailableSeats(), f.AvailableSeats())
	})
}
