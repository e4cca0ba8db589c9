package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает интервал записи
func validateRequest(req *Request) (domain.Interval, error) {
	if req.UserID == uuid.Nil {
		return domain.Interval{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.InterpreterID == uuid.Nil {
		return domain.Interval{}, fmt.Errorf("%w: interpreterId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Modality.ValidForAppointment() {
		return domain.Interval{}, fmt.Errorf("%w: modality must be ONLINE or PERSONALLY, got %q", ErrInvalidInput, req.Modality)
	}

	if req.UF != nil && len(*req.UF) != 2 {
		return domain.Interval{}, fmt.Errorf("%w: uf must have exactly 2 characters", ErrInvalidInput)
	}

	if req.StreetNumber != nil && *req.StreetNumber <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: streetNumber must be positive", ErrInvalidInput)
	}

	interval, err := domain.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	return interval, nil
}

// validateNotInPast запись должна начинаться не раньше текущего момента
func validateNotInPast(date time.Time, interval domain.Interval, now time.Time) error {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if interval.Start.On(day).Before(now) {
		return fmt.Errorf("%w: %s %s", ErrInvalidDate, date.Format(domain.DateFormat), interval.Start)
	}
	return nil
}
