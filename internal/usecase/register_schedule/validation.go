package register_schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.Interval, error) {
	if req.InterpreterID == uuid.Nil {
		return domain.Interval{}, fmt.Errorf("%w: interpreterId is required", ErrInvalidInput)
	}

	if !req.Day.Valid() {
		return domain.Interval{}, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, req.Day)
	}

	interval, err := domain.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	return interval, nil
}
