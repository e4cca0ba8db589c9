package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда окно расписания не найдено
	ErrScheduleNotFound = errors.New("schedules: schedule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedules: internal error")
)
