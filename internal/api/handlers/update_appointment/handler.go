package update_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments/models"
	updateAppointment "github.com/m04kA/SMC-InterpreterService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgEmptyRequest         = "нужно указать date, startTime или endTime"
	msgInvalidFields        = "некорректные поля запроса: "
	msgNotFound             = "запись не найдена"
	msgNotReschedulable     = "перенести можно только запись в статусе PENDING или ACCEPTED"
	msgInvalidInterval      = "время начала должно быть раньше времени окончания"
	msgInvalidDate          = "запись не может начинаться в прошлом"
	msgAppointmentConflict  = "у интерпретатора уже есть запись в этом окне"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.IsEmpty() {
		h.logger.Warn("PATCH /appointments/{id} - Empty reschedule request: appointment_id=%s", appointmentID)
		handlers.RespondBadRequest(w, msgEmptyRequest)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrNotReschedulable):
			h.logger.Warn("PATCH /appointments/{id} - Not reschedulable: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgNotReschedulable)

		case errors.Is(err, updateAppointment.ErrAppointmentConflict):
			h.logger.Warn("PATCH /appointments/{id} - Conflict: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondConflict(w, msgAppointmentConflict)

		case errors.Is(err, updateAppointment.ErrInvalidInterval):
			h.logger.Warn("PATCH /appointments/{id} - Invalid interval: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, updateAppointment.ErrInvalidDate):
			h.logger.Warn("PATCH /appointments/{id} - Moved to the past: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields+err.Error())

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to reschedule: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment rescheduled: appointment_id=%s, date=%s, window=%s-%s",
		appointmentID, result.Appointment.Date.Format(domain.DateFormat), result.Appointment.StartTime, result.Appointment.EndTime)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(result.Appointment))
}
