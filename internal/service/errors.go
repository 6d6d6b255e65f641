package service

import "errors"

var (
	// ErrInvalidRateID is returned when a rate id is empty.
	ErrInvalidRateID = errors.New("invalid rate id")

	// ErrInvalidBookingID is returned when a booking id is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrMissingDepartureDate is returned when no departure date is supplied.
	ErrMissingDepartureDate = errors.New("departure date is required")

	// ErrInvalidDepartureDate is returned when the departure date is not a valid ISO date.
	ErrInvalidDepartureDate = errors.New("invalid departure date")

	// ErrInvalidMode is returned when a freight mode is not ocean or air.
	ErrInvalidMode = errors.New("invalid freight mode")

	// ErrInvalidRateType is returned when a rate type is not contract or spot.
	ErrInvalidRateType = errors.New("invalid rate type")

	// ErrInvalidBookingStatus is returned when a booking status is outside the enumeration.
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)
