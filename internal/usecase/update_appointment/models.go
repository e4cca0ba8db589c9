package update_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// Request перенос записи, nil поля не меняются
type Request struct {
	AppointmentID uuid.UUID
	Date          *time.Time
	StartTime     *types.TimeString
	EndTime       *types.TimeString
}

// Response модель ответа с перенесенной записью
type Response struct {
	Appointment *domain.Appointment
}
