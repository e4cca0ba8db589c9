package get_available_slots

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда dateFrom позже dateTo или диапазон слишком длинный
	ErrInvalidDateRange = errors.New("get_available_slots: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
