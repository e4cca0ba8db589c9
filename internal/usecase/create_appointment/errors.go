package create_appointment

import "errors"

var (
	// ErrInterpreterNotFound возвращается, когда интерпретатор не найден
	ErrInterpreterNotFound = errors.New("create_appointment: interpreter not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в UserService
	ErrUserNotFound = errors.New("create_appointment: user not found")

	// ErrUserInactive возвращается, когда учетная запись пользователя не активна
	ErrUserInactive = errors.New("create_appointment: user is not active")

	// ErrAppointmentConflict возвращается, когда интерпретатор уже занят в это время
	ErrAppointmentConflict = errors.New("create_appointment: interpreter already has an appointment in this window")

	// ErrInvalidInterval возвращается, когда начало записи не раньше ее конца
	ErrInvalidInterval = errors.New("create_appointment: invalid interval")

	// ErrInvalidDate возвращается, когда запись начинается в прошлом
	ErrInvalidDate = errors.New("create_appointment: appointment cannot start in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
