package reconcile

import (
	"net/http"

	"github.com/m04kA/SMC-InterpreterService/internal/api/handlers"
)

type Handler struct {
	reconciler Reconciler
	logger     Logger
}

func NewHandler(reconciler Reconciler, logger Logger) *Handler {
	return &Handler{
		reconciler: reconciler,
		logger:     logger,
	}
}

// Handle POST /api/v1/admin/reconcile
// Запускает одну сверку статусов вне расписания; ошибки переходов только логируются планировщиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.reconciler.Reconcile(r.Context())

	if result.Skipped {
		h.logger.Warn("POST /admin/reconcile - Skipped: lease is held by another replica")
		handlers.RespondJSON(w, http.StatusAccepted, result)
		return
	}

	h.logger.Info("POST /admin/reconcile - Done: canceled=%d, completed=%d", result.Canceled, result.Completed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
