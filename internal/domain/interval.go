package domain

import (
	"fmt"

	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// Interval is a half-open time-of-day window [Start, End)
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval builds a validated interval
func NewInterval(start, end types.TimeString) (Interval, error) {
	i := Interval{Start: start, End: end}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// Validate rejects malformed, zero-length and inverted windows
func (i Interval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidInterval, err)
	}
	if err := i.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidInterval, err)
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, i.Start, i.End)
	}
	return nil
}

// Overlaps reports whether two half-open intervals intersect
// Touching intervals (one ends exactly where the other starts) do not overlap
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}

// Contains reports whether other lies entirely within i
func (i Interval) Contains(other Interval) bool {
	return !i.Start.IsAfter(other.Start) && !i.End.IsBefore(other.End)
}

// DurationMinutes returns the length of the interval in minutes
func (i Interval) DurationMinutes() int {
	return i.End.Minutes() - i.Start.Minutes()
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}
