package accept_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments/models"
)

type AppointmentService interface {
	Accept(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
