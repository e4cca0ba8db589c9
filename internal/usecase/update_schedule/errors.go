package update_schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда окно расписания не найдено
	ErrScheduleNotFound = errors.New("update_schedule: schedule not found")

	// ErrScheduleConflict возвращается, когда новое окно пересекается с другим окном интерпретатора
	ErrScheduleConflict = errors.New("update_schedule: schedule conflicts with an existing window")

	// ErrInterpreterChange возвращается при попытке перенести окно другому интерпретатору
	ErrInterpreterChange = errors.New("update_schedule: schedule cannot be moved to another interpreter")

	// ErrInvalidInterval возвращается, когда начало окна не раньше его конца
	ErrInvalidInterval = errors.New("update_schedule: invalid interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_schedule: internal error")
)
