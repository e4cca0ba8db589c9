package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// SpecialtyMatch controls how several specialty ids are combined
type SpecialtyMatch string

const (
	// SpecialtyMatchAny interpreter holds at least one of the ids
	SpecialtyMatchAny SpecialtyMatch = "ANY"
	// SpecialtyMatchAll interpreter holds every id
	SpecialtyMatchAll SpecialtyMatch = "ALL"
)

// Valid reports whether m is a known match mode
func (m SpecialtyMatch) Valid() bool {
	return m == SpecialtyMatchAny || m == SpecialtyMatchAll
}

// InterpreterFilter search criteria for interpreters
// Every field is optional; present fields are AND-combined
type InterpreterFilter struct {
	Modality     *Modality
	Gender       *Gender
	UF           *string
	City         *string
	Neighborhood *string

	SpecialtyIDs   []uuid.UUID
	SpecialtyMatch SpecialtyMatch

	// Availability window: interpreter must have a schedule on Day containing [Start, End)
	Day            *DayOfWeek
	RequestedStart *types.TimeString
	RequestedEnd   *types.TimeString
	// Date narrows the window to a concrete day and excludes interpreters already booked then
	Date *time.Time

	NamePattern *string

	Page Pagination
}

// HasTimeWindow reports whether an availability window was requested
func (f *InterpreterFilter) HasTimeWindow() bool {
	return f.RequestedStart != nil && f.RequestedEnd != nil
}

// RequestedInterval returns the requested availability window
func (f *InterpreterFilter) RequestedInterval() Interval {
	return Interval{Start: *f.RequestedStart, End: *f.RequestedEnd}
}

// HasLocation reports whether any location criterion is set
func (f *InterpreterFilter) HasLocation() bool {
	return f.UF != nil || f.City != nil || f.Neighborhood != nil
}
