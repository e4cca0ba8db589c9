package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	HasConflict(ctx context.Context, interpreterID uuid.UUID, date time.Time, interval domain.Interval, excludeID *uuid.UUID) (bool, error)
	LockInterpreterDate(ctx context.Context, interpreterID uuid.UUID, date time.Time) error
}

// InterpreterRepository интерфейс репозитория интерпретаторов
type InterpreterRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// EventPublisher публикует события о смене статуса записи
type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event domain.AppointmentEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
