package update_menu

import (
	"errors"
	"net/http"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
	menuService "github.com/othmanalikhan-apps/project-aardvark/internal/service/menu"
	"github.com/othmanalikhan-apps/project-aardvark/internal/service/menu/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItems       = "некорректные позиции меню"
	msgInvalidFoodType    = "неизвестная категория блюда"
	msgDuplicateFood      = "блюдо с таким названием уже есть в меню"
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

// Handle POST /api/v1/menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddFoodsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /menu - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddFoods(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, menuService.ErrInvalidFoodType):
			h.logger.Warn("POST /menu - Invalid food type: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFoodType)

		case errors.Is(err, menuService.ErrDuplicateFood):
			h.logger.Warn("POST /menu - Duplicate food: %v", err)
			handlers.RespondConflict(w, msgDuplicateFood)

		case errors.Is(err, menuService.ErrInvalidInput):
			h.logger.Warn("POST /menu - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItems)

		default:
			h.logger.Error("POST /menu - Failed to add foods: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /menu - Menu updated: items=%d", result.Total)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
