package update_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/schedule"
)

// UseCase use case изменения окна расписания
type UseCase struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute меняет день или время окна
// Само окно исключается из проверки пересечений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: schedule=%s", req.ScheduleID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Schedule

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Текущее состояние окна (FOR UPDATE внутри транзакции)
		current, err := uc.scheduleRepo.GetByID(txCtx, req.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("UpdateSchedule: schedule id=%s not found", req.ScheduleID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("UpdateSchedule: failed to get schedule id=%s: %v", req.ScheduleID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 2. Применяем изменения
		updated, err := applyPatch(current, req)
		if err != nil {
			uc.logger.Warn("UpdateSchedule: patch rejected for schedule id=%s: %v", req.ScheduleID, err)
			return err
		}

		// 3. Блокируем день, в который попадает окно после изменения
		if err := uc.scheduleRepo.LockInterpreterDay(txCtx, updated.InterpreterID, updated.Day); err != nil {
			uc.logger.Error("UpdateSchedule: failed to lock interpreter day: %v", err)
			return fmt.Errorf("%w: failed to lock interpreter day: %v", ErrInternal, err)
		}

		// 4. Проверка пересечений без учета самого окна
		conflict, err := uc.scheduleRepo.HasConflict(txCtx, updated.InterpreterID, updated.Day, updated.Interval(), &updated.ID)
		if err != nil {
			uc.logger.Error("UpdateSchedule: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("UpdateSchedule: window %s on %s conflicts, schedule id=%s",
				updated.Interval(), updated.Day, updated.ID)
			return fmt.Errorf("%w: %s %s", ErrScheduleConflict, updated.Day, updated.Interval())
		}

		if err := uc.scheduleRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				return ErrScheduleNotFound
			}
			uc.logger.Error("UpdateSchedule: failed to update schedule id=%s: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSchedule: successfully updated schedule id=%s, day=%s, window=%s",
		result.ID, result.Day, result.Interval())

	return toResponse(result), nil
}
