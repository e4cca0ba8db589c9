package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// Schedule is a recurring weekly availability window of an interpreter
type Schedule struct {
	ID            uuid.UUID
	InterpreterID uuid.UUID
	Day           DayOfWeek
	StartTime     types.TimeString
	EndTime       types.TimeString
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Interval returns the window as a half-open interval
func (s *Schedule) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// ScheduleFilter filters the schedule listing
type ScheduleFilter struct {
	InterpreterID *uuid.UUID
	Day           *DayOfWeek
	TimeFrom      *types.TimeString // start_time >= TimeFrom
	TimeTo        *types.TimeString // end_time <= TimeTo
	Page          Pagination
}
