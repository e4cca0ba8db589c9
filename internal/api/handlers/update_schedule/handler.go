package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
	updateSchedule "github.com/m04kA/SMC-InterpreterService/internal/usecase/update_schedule"
)

const (
	msgInvalidScheduleID  = "некорректный ID окна расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные поля запроса: "
	msgInvalidInterval    = "время начала должно быть раньше времени окончания"
	msgNotFound           = "окно расписания не найдено"
	msgInterpreterChange  = "окно нельзя передать другому интерпретатору"
	msgScheduleConflict   = "окно пересекается с уже зарегистрированным окном интерпретатора"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := handlers.PathUUID(r, "scheduleId")
	if err != nil {
		h.logger.Warn("PATCH /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /schedules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PATCH /schedules/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields+err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(scheduleID)
	if err != nil {
		h.logger.Warn("PATCH /schedules/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSchedule.ErrScheduleNotFound):
			h.logger.Warn("PATCH /schedules/{id} - Schedule not found: schedule_id=%s", scheduleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateSchedule.ErrInvalidInterval):
			h.logger.Warn("PATCH /schedules/{id} - Invalid interval: schedule_id=%s", scheduleID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, updateSchedule.ErrInvalidInput):
			h.logger.Warn("PATCH /schedules/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields+err.Error())

		case errors.Is(err, updateSchedule.ErrInterpreterChange):
			h.logger.Warn("PATCH /schedules/{id} - Interpreter change rejected: schedule_id=%s", scheduleID)
			handlers.RespondBadRequest(w, msgInterpreterChange)

		case errors.Is(err, updateSchedule.ErrScheduleConflict):
			h.logger.Warn("PATCH /schedules/{id} - Conflict: schedule_id=%s, error=%v", scheduleID, err)
			handlers.RespondConflict(w, msgScheduleConflict)

		default:
			h.logger.Error("PATCH /schedules/{id} - Failed to update schedule: schedule_id=%s, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedules/{id} - Schedule updated: schedule_id=%s, day=%s, window=%s-%s",
		result.ID, result.Day, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
