package search_interpreters

import (
	"context"

	searchInterpreters "github.com/m04kA/SMC-InterpreterService/internal/usecase/search_interpreters"
)

type SearchInterpretersUseCase interface {
	Execute(ctx context.Context, req *searchInterpreters.Request) (*searchInterpreters.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
