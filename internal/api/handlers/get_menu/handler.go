package get_menu

import (
	"net/http"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /menu - Failed to list menu: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /menu - Menu retrieved: items=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
