package get_tables

import (
	"net/http"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
)

type Handler struct {
	service TablesService
	logger  Logger
}

func NewHandler(service TablesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /tables - Failed to list tables: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tables - Tables retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
