package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// TimeSlot is a free window of an interpreter on a concrete date
// Produced by availability queries, never persisted
type TimeSlot struct {
	Date          time.Time
	InterpreterID uuid.UUID
	StartTime     types.TimeString
	EndTime       types.TimeString
}

// Interval returns the slot window
func (s TimeSlot) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// GroupedAvailability holds the free slots of one interpreter on one date
type GroupedAvailability struct {
	Date          time.Time
	InterpreterID uuid.UUID
	Slots         []TimeSlot
}
