package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-InterpreterService/internal/usecase/get_available_slots"
)

const (
	msgMissingInterpreterID = "нужен хотя бы один interpreterId"
	msgMissingDates         = "параметры dateFrom и dateTo обязательны"
	msgInvalidParams        = "некорректные параметры запроса: "
	msgInvalidDateRange     = "некорректный диапазон дат: "
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/available
// Query params: interpreterId (повторяющийся или через запятую), dateFrom, dateTo (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	interpreterIDs := handlers.QueryList(r, "interpreterId")
	if len(interpreterIDs) == 0 {
		h.logger.Warn("GET /schedules/available - Missing interpreter IDs")
		handlers.RespondBadRequest(w, msgMissingInterpreterID)
		return
	}

	dateFrom := r.URL.Query().Get("dateFrom")
	dateTo := r.URL.Query().Get("dateTo")
	if dateFrom == "" || dateTo == "" {
		h.logger.Warn("GET /schedules/available - Missing date range")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(interpreterIDs, dateFrom, dateTo)
	if err != nil {
		h.logger.Warn("GET /schedules/available - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDateRange):
			h.logger.Warn("GET /schedules/available - Invalid date range: %s..%s: %v", dateFrom, dateTo, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange+err.Error())

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedules/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams+err.Error())

		default:
			h.logger.Error("GET /schedules/available - Failed to get slots: interpreters=%d, range=%s..%s, error=%v",
				len(interpreterIDs), dateFrom, dateTo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /schedules/available - Slots retrieved: interpreters=%d, range=%s..%s, groups=%d",
		len(useCaseReq.InterpreterIDs), dateFrom, dateTo, len(response.Groups))
	handlers.RespondJSON(w, http.StatusOK, response)
}
