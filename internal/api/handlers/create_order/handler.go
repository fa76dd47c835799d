package create_order

import (
	"errors"
	"net/http"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
	ordersService "github.com/othmanalikhan-apps/project-aardvark/internal/service/orders"
	"github.com/othmanalikhan-apps/project-aardvark/internal/service/orders/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItems       = "некорректные позиции заказа"
	msgTableNotFound      = "стол не найден"
	msgFoodNotFound       = "блюдо отсутствует в меню"
)

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PlaceOrdersRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.PlaceOrders(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrTableNotFound):
			h.logger.Warn("POST /orders - Table not found: table=%d", req.TableNumber)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, ordersService.ErrFoodNotFound):
			h.logger.Warn("POST /orders - Food not found: %v", err)
			handlers.RespondNotFound(w, msgFoodNotFound)

		case errors.Is(err, ordersService.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItems)

		default:
			h.logger.Error("POST /orders - Failed to place orders: table=%d, error=%v", req.TableNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Orders placed: table=%d, items=%d", result.TableNumber, result.ItemsPlaced)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
