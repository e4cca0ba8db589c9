package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
	"github.com/m04kA/SMC-InterpreterService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-InterpreterService/internal/usecase/create_appointment"
)

const (
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidFields       = "некорректные поля запроса: "
	msgInvalidInterval     = "время начала должно быть раньше времени окончания"
	msgInvalidDate         = "запись не может начинаться в прошлом"
	msgInterpreterNotFound = "интерпретатор не найден"
	msgUserNotFound        = "пользователь не найден"
	msgUserInactive        = "пользователь не активен"
	msgAppointmentConflict = "у интерпретатора уже есть запись в этом окне"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /appointments - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields+err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrAppointmentConflict):
			h.logger.Warn("POST /appointments - Conflict: interpreter_id=%s, date=%s, window=%s-%s",
				req.InterpreterID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgAppointmentConflict+" ("+req.Date+" "+req.StartTime+"-"+req.EndTime+")")

		case errors.Is(err, createAppointment.ErrInterpreterNotFound):
			h.logger.Warn("POST /appointments - Interpreter not found: interpreter_id=%s", req.InterpreterID)
			handlers.RespondNotFound(w, msgInterpreterNotFound)

		case errors.Is(err, createAppointment.ErrUserNotFound):
			h.logger.Warn("POST /appointments - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createAppointment.ErrUserInactive):
			h.logger.Warn("POST /appointments - User inactive: user_id=%s", userID)
			handlers.RespondForbidden(w, msgUserInactive)

		case errors.Is(err, createAppointment.ErrInvalidInterval):
			h.logger.Warn("POST /appointments - Invalid interval: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Appointment in the past: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields+err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%s, interpreter_id=%s, error=%v",
				userID, req.InterpreterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, user_id=%s, interpreter_id=%s, user_verified=%t",
		result.Appointment.ID, userID, req.InterpreterID, result.UserVerified)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
