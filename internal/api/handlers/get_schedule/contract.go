package get_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
