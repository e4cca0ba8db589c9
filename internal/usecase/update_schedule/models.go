package update_schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// Request частичное обновление окна, nil поля не меняются
type Request struct {
	ScheduleID    uuid.UUID
	InterpreterID *uuid.UUID // допускается только текущий интерпретатор окна
	Day           *domain.DayOfWeek
	StartTime     *types.TimeString
	EndTime       *types.TimeString
}

// Response модель ответа с обновленным окном
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
