package search_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments"
	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments/models"
)

const msgInvalidFilter = "некорректные параметры фильтра: "

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params (все опциональны): interpreterId, userId, status, modality, fromDate, dayLimit, page, size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.SearchRequest{
		InterpreterID: handlers.QueryPtr(r, "interpreterId"),
		UserID:        handlers.QueryPtr(r, "userId"),
		Status:        handlers.QueryPtr(r, "status"),
		Modality:      handlers.QueryPtr(r, "modality"),
		FromDate:      handlers.QueryPtr(r, "fromDate"),
		DayLimit:      handlers.QueryPtr(r, "dayLimit"),
		Page:          handlers.QueryPtr(r, "page"),
		Size:          handlers.QueryPtr(r, "size"),
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter+err.Error())

		default:
			h.logger.Error("GET /appointments - Failed to search appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments found: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
