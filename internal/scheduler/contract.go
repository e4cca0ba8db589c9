package scheduler

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/internal/infra/lock"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	TransitionExpired(ctx context.Context, from, to domain.AppointmentStatus, now time.Time) ([]domain.AppointmentTransition, error)
}

// IntervalSource читает интервал запуска из хранилища параметров
type IntervalSource interface {
	GetDuration(ctx context.Context, key string, def time.Duration) time.Duration
}

// EventPublisher публикует события о смене статуса записи
type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event domain.AppointmentEvent) error
}

// Locker выдает аренду, чтобы сверку выполняла одна реплика
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (lock.Unlock, bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
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
