package search_interpreters

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
	searchInterpreters "github.com/m04kA/SMC-InterpreterService/internal/usecase/search_interpreters"
)

const (
	msgInvalidCriteria = "некорректные критерии поиска: "
	msgInvalidInterval = "время начала должно быть раньше времени окончания"
)

type Handler struct {
	useCase SearchInterpretersUseCase
	logger  Logger
}

func NewHandler(useCase SearchInterpretersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/interpreters
// Query params (все опциональны): modality, gender, uf, city, neighborhood, specialtyIds, specialtyMatch,
// dayOfWeek, date, requestedStart, requestedEnd, namePattern, page, size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(r))
	if err != nil {
		switch {
		case errors.Is(err, searchInterpreters.ErrInvalidInterval):
			h.logger.Warn("GET /interpreters - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, searchInterpreters.ErrInvalidInput):
			h.logger.Warn("GET /interpreters - Invalid criteria: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCriteria+err.Error())

		default:
			h.logger.Error("GET /interpreters - Failed to search interpreters: query=%s, error=%v", r.URL.RawQuery, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /interpreters - Interpreters found: count=%d, page=%d", len(result.Interpreters), result.Page)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
