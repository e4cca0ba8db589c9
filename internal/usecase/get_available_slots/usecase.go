package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// UseCase use case получения свободных слотов интерпретаторов
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	settings        Settings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает свободные слоты интерпретаторов в диапазоне дат
// Результат только для отображения: занятость окончательно проверяется при создании записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: interpreters=%d, from=%s, to=%s",
		len(req.InterpreterIDs), req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.settings.MaxRangeDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	ids := uniqueIDs(req.InterpreterIDs)
	from, to := dateOnly(req.DateFrom), dateOnly(req.DateTo)
	now := uc.timeProvider.Now()

	// 2. Окна расписания интерпретаторов
	schedules, err := uc.scheduleRepo.ListByInterpreters(ctx, ids)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 3. Активные записи в диапазоне
	appointments, err := uc.appointmentRepo.ListActiveInRange(ctx, ids, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Генерация и группировка
	slots := generateSlots(schedules, appointments, from, to, now, uc.settings)
	groups := groupSlots(slots)

	uc.logger.Info("GetAvailableSlots: generated %d slots in %d groups from %d schedules, %d busy appointments",
		len(slots), len(groups), len(schedules), len(appointments))

	return &Response{
		DateFrom: from,
		DateTo:   to,
		Groups:   groups,
	}, nil
}
