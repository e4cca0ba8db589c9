package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/appointment"
)

// UseCase use case переноса записи на другую дату или время
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute переносит активную запись, исключая ее саму из проверки пересечений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: appointment=%s", req.AppointmentID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var result *domain.Appointment

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Текущее состояние записи (FOR UPDATE внутри транзакции)
		current, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2. Применяем перенос
		updated, err := applyPatch(current, req, now)
		if err != nil {
			uc.logger.Warn("UpdateAppointment: patch rejected for appointment id=%s: %v", req.AppointmentID, err)
			return err
		}

		// 3. Блокируем целевую дату интерпретатора
		if err := uc.appointmentRepo.LockInterpreterDate(txCtx, updated.InterpreterID, updated.Date); err != nil {
			uc.logger.Error("UpdateAppointment: failed to lock interpreter date: %v", err)
			return fmt.Errorf("%w: failed to lock interpreter date: %v", ErrInternal, err)
		}

		// 4. Проверка пересечений без учета самой записи
		conflict, err := uc.appointmentRepo.HasConflict(txCtx, updated.InterpreterID, updated.Date, updated.Interval(), &updated.ID)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("UpdateAppointment: interpreter id=%s is busy on %s %s",
				updated.InterpreterID, updated.Date.Format(domain.DateFormat), updated.Interval())
			return fmt.Errorf("%w: %s %s", ErrAppointmentConflict, updated.Date.Format(domain.DateFormat), updated.Interval())
		}

		if err := uc.appointmentRepo.Reschedule(txCtx, updated); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to reschedule appointment id=%s: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to reschedule appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: appointment id=%s moved to %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.Interval())

	return &Response{Appointment: result}, nil
}
