package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// AppointmentStatus lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusAccepted  AppointmentStatus = "ACCEPTED"
	AppointmentStatusCanceled  AppointmentStatus = "CANCELED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// Valid reports whether s is a known status
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusAccepted,
		AppointmentStatusCanceled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// IsTerminal returns true for statuses with no further transitions
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCanceled || s == AppointmentStatusCompleted
}

// allowedTransitions PENDING -> ACCEPTED|CANCELED, ACCEPTED -> CANCELED|COMPLETED
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:  {AppointmentStatusAccepted, AppointmentStatusCanceled},
	AppointmentStatusAccepted: {AppointmentStatusCanceled, AppointmentStatusCompleted},
}

// CanTransitionTo reports whether the status may change to next
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a dated booking between a user and an interpreter
type Appointment struct {
	ID            uuid.UUID
	InterpreterID uuid.UUID
	UserID        uuid.UUID
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Modality      Modality
	Status        AppointmentStatus

	// Address of the session, only meaningful for PERSONALLY
	UF             *string
	City           *string
	Neighborhood   *string
	Street         *string
	StreetNumber   *int
	AddressDetails *string

	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booked time window
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}

// IsActive returns true if the appointment occupies the interpreter's time
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusAccepted
}

// EndsAt returns the moment the session ends, in the location of Date
func (a *Appointment) EndsAt() time.Time {
	return a.EndTime.On(a.Date)
}

// IsExpired returns true once now is past the end of the session
func (a *Appointment) IsExpired(now time.Time) bool {
	return now.After(a.EndsAt())
}

// ExpiredStatusTarget returns the status reconciliation moves an expired appointment to
// Second value is false when the appointment is not subject to reconciliation
func (a *Appointment) ExpiredStatusTarget() (AppointmentStatus, bool) {
	switch a.Status {
	case AppointmentStatusPending:
		return AppointmentStatusCanceled, true
	case AppointmentStatusAccepted:
		return AppointmentStatusCompleted, true
	default:
		return "", false
	}
}

// AppointmentFilter filters the appointment search
type AppointmentFilter struct {
	InterpreterID *uuid.UUID
	UserID        *uuid.UUID
	Status        *AppointmentStatus
	Modality      *Modality
	FromDate      *time.Time // date >= FromDate
	DayLimit      *int       // date < FromDate (or today) + DayLimit days
	Page          Pagination
}

// AppointmentTransition is a status change applied by a bulk update
type AppointmentTransition struct {
	AppointmentID uuid.UUID
	InterpreterID uuid.UUID
	UserID        uuid.UUID
	From          AppointmentStatus
	To            AppointmentStatus
}
