package reconcile

import (
	"context"

	"github.com/m04kA/SMC-InterpreterService/internal/scheduler"
)

type Reconciler interface {
	Reconcile(ctx context.Context) scheduler.Result
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
