package update_schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules/models"
	updateSchedule "github.com/m04kA/SMC-InterpreterService/internal/usecase/update_schedule"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

// UpdateScheduleRequest HTTP request model, все поля опциональны
type UpdateScheduleRequest struct {
	InterpreterID *string `json:"interpreterId,omitempty" validate:"omitempty,uuid"`
	Day           *string `json:"dayOfWeek,omitempty"`
	StartTime     *string `json:"startTime,omitempty"`
	EndTime       *string `json:"endTime,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateScheduleRequest) ToUseCaseRequest(scheduleID uuid.UUID) (*updateSchedule.Request, error) {
	req := &updateSchedule.Request{ScheduleID: scheduleID}

	if r.InterpreterID != nil {
		id, err := uuid.Parse(*r.InterpreterID)
		if err != nil {
			return nil, fmt.Errorf("interpreterId: %w", err)
		}
		req.InterpreterID = &id
	}

	if r.Day != nil {
		day, err := domain.ParseDayOfWeek(*r.Day)
		if err != nil {
			return nil, err
		}
		req.Day = &day
	}

	if r.StartTime != nil {
		t, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("startTime: %w", err)
		}
		req.StartTime = &t
	}

	if r.EndTime != nil {
		t, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("endTime: %w", err)
		}
		req.EndTime = &t
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) *models.ScheduleResponse {
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
