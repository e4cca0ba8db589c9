package register_schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules/models"
	registerSchedule "github.com/m04kA/SMC-InterpreterService/internal/usecase/register_schedule"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// RegisterScheduleRequest HTTP request model
type RegisterScheduleRequest struct {
	InterpreterID string `json:"interpreterId" validate:"required,uuid"`
	Day           string `json:"dayOfWeek" validate:"required"` // "MON"
	StartTime     string `json:"startTime" validate:"required"` // "09:00"
	EndTime       string `json:"endTime" validate:"required"`   // "12:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterScheduleRequest) ToUseCaseRequest() (*registerSchedule.Request, error) {
	interpreterID, err := uuid.Parse(r.InterpreterID)
	if err != nil {
		return nil, fmt.Errorf("interpreterId: %w", err)
	}

	day, err := domain.ParseDayOfWeek(r.Day)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &registerSchedule.Request{
		InterpreterID: interpreterID,
		Day:           day,
		StartTime:     start,
		EndTime:       end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerSchedule.Response) *models.ScheduleResponse {
	return &models.ScheduleResponse{
		ID:            resp.ID,
		InterpreterID: resp.InterpreterID,
		Day:           string(resp.Day),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}
}
