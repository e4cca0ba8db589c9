package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrNotReschedulable возвращается для отмененных и завершенных записей
	ErrNotReschedulable = errors.New("update_appointment: only PENDING or ACCEPTED appointments can be rescheduled")

	// ErrAppointmentConflict возвращается, когда интерпретатор занят в новое время
	ErrAppointmentConflict = errors.New("update_appointment: interpreter already has an appointment in this window")

	// ErrInvalidInterval возвращается, когда начало записи не раньше ее конца
	ErrInvalidInterval = errors.New("update_appointment: invalid interval")

	// ErrInvalidDate возвращается, когда запись переносится в прошлое
	ErrInvalidDate = errors.New("update_appointment: appointment cannot start in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
