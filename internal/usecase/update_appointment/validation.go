package update_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID == uuid.Nil {
		return fmt.Errorf("%w: appointmentId is required", ErrInvalidInput)
	}

	if req.Date == nil && req.StartTime == nil && req.EndTime == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be empty", ErrInvalidInput)
	}

	return nil
}

// applyPatch применяет перенос к копии записи и проверяет новый интервал
func applyPatch(current *domain.Appointment, req *Request, now time.Time) (*domain.Appointment, error) {
	if !current.IsActive() {
		return nil, fmt.Errorf("%w: status %s", ErrNotReschedulable, current.Status)
	}

	updated := *current
	if req.Date != nil {
		updated.Date = *req.Date
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

	day := time.Date(updated.Date.Year(), updated.Date.Month(), updated.Date.Day(), 0, 0, 0, 0, now.Location())
	if updated.StartTime.On(day).Before(now) {
		return nil, fmt.Errorf("%w: %s %s", ErrInvalidDate, updated.Date.Format(domain.DateFormat), updated.StartTime)
	}

	return &updated, nil
}
