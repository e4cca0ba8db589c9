package register_schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// Request модель запроса на регистрацию окна расписания
type Request struct {
	InterpreterID uuid.UUID
	Day           domain.DayOfWeek
	StartTime     types.TimeString // "09:00"
	EndTime       types.TimeString // "12:00"
}

// Response модель ответа с созданным окном
type Response struct {
	ID            uuid.UUID
	InterpreterID uuid.UUID
	Day           domain.DayOfWeek
	StartTime     types.TimeString
	EndTime       types.TimeString
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toResponse(s *domain.Schedule) *Response {
	return &Response{
		ID:            s.ID,
		InterpreterID: s.InterpreterID,
		Day:           s.Day,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
