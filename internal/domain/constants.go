package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Parameter store keys
const (
	// ParamAppointmentStatusSchedulerInterval run interval of the status reconciliation, in milliseconds
	ParamAppointmentStatusSchedulerInterval = "appointment_status_scheduler_interval"
)

// Scheduler defaults
const (
	DefaultSchedulerInterval = 30 * time.Minute
	MinSchedulerInterval     = time.Second
)

// Pagination defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Available slots defaults
const (
	DefaultSlotDurationMinutes = 60
	DefaultSlotStepMinutes     = 30
	DefaultMaxSlotRangeDays    = 31
)

// ActiveAppointmentStatuses statuses that occupy the interpreter's time
// Only these take part in conflict detection
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusAccepted,
}
