package domain

import "errors"

var (
	// ErrInvalidInterval is returned for zero-length or inverted time windows
	ErrInvalidInterval = errors.New("domain: invalid interval, start must be before end")

	// ErrInvalidTransition is returned when an appointment status change is not allowed
	ErrInvalidTransition = errors.New("domain: invalid appointment status transition")

	// ErrInvalidDayOfWeek is returned for unknown day codes
	ErrInvalidDayOfWeek = errors.New("domain: invalid day of week")
)
