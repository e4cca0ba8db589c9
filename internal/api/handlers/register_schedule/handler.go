package register_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
	registerSchedule "github.com/m04kA/SMC-InterpreterService/internal/usecase/register_schedule"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidFields       = "некорректные поля запроса: "
	msgInvalidInterval     = "время начала должно быть раньше времени окончания"
	msgInterpreterNotFound = "интерпретатор не найден"
	msgScheduleConflict    = "окно пересекается с уже зарегистрированным окном интерпретатора"
)

type Handler struct {
	useCase RegisterScheduleUseCase
	logger  Logger
}

func NewHandler(useCase RegisterScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /schedules - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields+err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, registerSchedule.ErrInvalidInterval):
			h.logger.Warn("POST /schedules - Invalid interval: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, registerSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields+err.Error())

		case errors.Is(err, registerSchedule.ErrInterpreterNotFound):
			h.logger.Warn("POST /schedules - Interpreter not found: interpreter_id=%s", req.InterpreterID)
			handlers.RespondNotFound(w, msgInterpreterNotFound)

		case errors.Is(err, registerSchedule.ErrScheduleConflict):
			h.logger.Warn("POST /schedules - Conflict: interpreter_id=%s, day=%s, window=%s-%s",
				req.InterpreterID, req.Day, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgScheduleConflict+" ("+req.Day+" "+req.StartTime+"-"+req.EndTime+")")

		default:
			h.logger.Error("POST /schedules - Failed to register schedule: interpreter_id=%s, error=%v",
				req.InterpreterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule registered: schedule_id=%s, interpreter_id=%s",
		result.ID, result.InterpreterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
