package register_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// UseCase use case регистрации окна расписания интерпретатора
type UseCase struct {
	scheduleRepo    ScheduleRepository
	interpreterRepo InterpreterRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	interpreterRepo InterpreterRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		interpreterRepo: interpreterRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute регистрирует окно, если оно не пересекается с другими окнами интерпретатора в этот день
// Проверка и запись идут под advisory lock (интерпретатор, день) в транзакции READ COMMITTED
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterSchedule: interpreter=%s, day=%s, window=%s-%s",
		req.InterpreterID, req.Day, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RegisterSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Интерпретатор должен существовать
	exists, err := uc.interpreterRepo.Exists(ctx, req.InterpreterID)
	if err != nil {
		uc.logger.Error("RegisterSchedule: failed to check interpreter id=%s: %v", req.InterpreterID, err)
		return nil, fmt.Errorf("%w: failed to check interpreter: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("RegisterSchedule: interpreter id=%s not found", req.InterpreterID)
		return nil, ErrInterpreterNotFound
	}

	var result *domain.Schedule

	// 3. Проверка пересечений и запись в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.scheduleRepo.LockInterpreterDay(txCtx, req.InterpreterID, req.Day); err != nil {
			uc.logger.Error("RegisterSchedule: failed to lock interpreter day: %v", err)
			return fmt.Errorf("%w: failed to lock interpreter day: %v", ErrInternal, err)
		}

		conflict, err := uc.scheduleRepo.HasConflict(txCtx, req.InterpreterID, req.Day, interval, nil)
		if err != nil {
			uc.logger.Error("RegisterSchedule: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("RegisterSchedule: window %s on %s conflicts with an existing window of interpreter id=%s",
				interval, req.Day, req.InterpreterID)
			return fmt.Errorf("%w: %s %s", ErrScheduleConflict, req.Day, interval)
		}

		created, err := uc.scheduleRepo.Create(txCtx, &domain.Schedule{
			InterpreterID: req.InterpreterID,
			Day:           req.Day,
			StartTime:     interval.Start,
			EndTime:       interval.End,
		})
		if err != nil {
			uc.logger.Error("RegisterSchedule: failed to create schedule: %v", err)
			return fmt.Errorf("%w: failed to create schedule: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RegisterSchedule: successfully created schedule id=%s", result.ID)

	return toResponse(result), nil
}
