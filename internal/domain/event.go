package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventSource tells who caused a status change
type EventSource string

const (
	EventSourceAPI       EventSource = "api"
	EventSourceScheduler EventSource = "scheduler"
)

// AppointmentEvent signals that an appointment transitioned to a new status
// Consumers (notifications, calendars) subscribe to it, delivery is not handled here
type AppointmentEvent struct {
	EventID       uuid.UUID         `json:"eventId"`
	AppointmentID uuid.UUID         `json:"appointmentId"`
	InterpreterID uuid.UUID         `json:"interpreterId"`
	UserID        uuid.UUID         `json:"userId"`
	From          AppointmentStatus `json:"from,omitempty"`
	To            AppointmentStatus `json:"to"`
	Source        EventSource       `json:"source"`
	OccurredAt    time.Time         `json:"occurredAt"`
}

// NewAppointmentEvent builds an event for a transition
func NewAppointmentEvent(t AppointmentTransition, source EventSource, at time.Time) AppointmentEvent {
	return AppointmentEvent{
		EventID:       uuid.New(),
		AppointmentID: t.AppointmentID,
		InterpreterID: t.InterpreterID,
		UserID:        t.UserID,
		From:          t.From,
		To:            t.To,
		Source:        source,
		OccurredAt:    at,
	}
}

// RoutingKey returns the broker routing key, e.g. "appointment.canceled"
func (e AppointmentEvent) RoutingKey() string {
	return "appointment." + strings.ToLower(string(e.To))
}
