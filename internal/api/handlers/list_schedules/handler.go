package list_schedules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules"
	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules/models"
)

const msgInvalidFilter = "некорректные параметры фильтра: "

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules
// Query params (все опциональны): interpreterId, dayOfWeek, timeFrom, timeTo, page, size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{
		InterpreterID: handlers.QueryPtr(r, "interpreterId"),
		Day:           handlers.QueryPtr(r, "dayOfWeek"),
		TimeFrom:      handlers.QueryPtr(r, "timeFrom"),
		TimeTo:        handlers.QueryPtr(r, "timeTo"),
		Page:          handlers.QueryPtr(r, "page"),
		Size:          handlers.QueryPtr(r, "size"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GET /schedules - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter+err.Error())

		default:
			h.logger.Error("GET /schedules - Failed to list schedules: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules - Schedules listed: count=%d", len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
