package parameters

import (
	"context"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// ParameterRepository интерфейс репозитория параметров
type ParameterRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.Parameter, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
