package search_interpreters

import (
	"context"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
)

// InterpreterRepository интерфейс репозитория интерпретаторов
type InterpreterRepository interface {
	Search(ctx context.Context, filter domain.InterpreterFilter) ([]*domain.Interpreter, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
