package register_schedule

import "errors"

var (
	// ErrInterpreterNotFound возвращается, когда интерпретатор не найден
	ErrInterpreterNotFound = errors.New("register_schedule: interpreter not found")

	// ErrScheduleConflict возвращается, когда окно пересекается с существующим окном в этот день
	ErrScheduleConflict = errors.New("register_schedule: schedule conflicts with an existing window")

	// ErrInvalidInterval возвращается, когда начало окна не раньше его конца
	ErrInvalidInterval = errors.New("register_schedule: invalid interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_schedule: internal error")
)
