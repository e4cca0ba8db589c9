package update_schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ScheduleID == uuid.Nil {
		return fmt.Errorf("%w: scheduleId is required", ErrInvalidInput)
	}

	if req.Day == nil && req.StartTime == nil && req.EndTime == nil && req.InterpreterID == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Day != nil && !req.Day.Valid() {
		return fmt.Errorf("%w: unknown day %q", ErrInvalidInput, *req.Day)
	}

	// Если в запросе оба конца окна, интервал проверяется до обращения к хранилищу
	if req.StartTime != nil && req.EndTime != nil {
		interval := domain.Interval{Start: *req.StartTime, End: *req.EndTime}
		if err := interval.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
		}
	}

	return nil
}

// applyPatch применяет изменения к копии окна и проверяет итоговый интервал
func applyPatch(current *domain.Schedule, req *Request) (*domain.Schedule, error) {
	if req.InterpreterID != nil && *req.InterpreterID != current.InterpreterID {
		return nil, ErrInterpreterChange
	}

	updated := *current
	if req.Day != nil {
		updated.Day = *req.Day
	}
	if req.StartTime != nil {
		updated.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		updated.EndTime = *req.EndTime
	}

	if err := updated.Interval().Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	return &updated, nil
}
