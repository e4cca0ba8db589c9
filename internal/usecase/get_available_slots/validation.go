package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxRangeDays int) error {
	if len(req.InterpreterIDs) == 0 {
		return fmt.Errorf("%w: at least one interpreterId is required", ErrInvalidInput)
	}

	for _, id := range req.InterpreterIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: interpreterId must not be empty", ErrInvalidInput)
		}
	}

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	from, to := dateOnly(req.DateFrom), dateOnly(req.DateTo)
	if from.After(to) {
		return fmt.Errorf("%w: dateFrom is after dateTo", ErrInvalidDateRange)
	}

	if days := int(to.Sub(from).Hours() / 24); days > maxRangeDays {
		return fmt.Errorf("%w: range of %d days exceeds %d", ErrInvalidDateRange, days, maxRangeDays)
	}

	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// dateOnly обнуляет время, оставляя дату в UTC
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
