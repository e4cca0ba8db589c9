package register_schedule

import (
	"context"

	registerSchedule "github.com/m04kA/SMC-InterpreterService/internal/usecase/register_schedule"
)

type RegisterScheduleUseCase interface {
	Execute(ctx context.Context, req *registerSchedule.Request) (*registerSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
