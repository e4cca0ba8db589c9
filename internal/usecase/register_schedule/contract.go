package register_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
	HasConflict(ctx context.Context, interpreterID uuid.UUID, day domain.DayOfWeek, interval domain.Interval, excludeID *uuid.UUID) (bool, error)
	LockInterpreterDay(ctx context.Context, interpreterID uuid.UUID, day domain.DayOfWeek) error
}

// InterpreterRepository интерфейс репозитория интерпретаторов
type InterpreterRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
