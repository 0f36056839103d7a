package domain

import "errors"

var (
	ErrDuplicateFlight = errors.New("duplicate flight")

	ErrFlightNotFound = errors.New("flight not found")

	ErrInvalidSeatCount = errors.New("total seats must not be negative")

	ErrNilFlight = errors.New("flight is nil")
)
