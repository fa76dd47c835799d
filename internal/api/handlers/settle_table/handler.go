package settle_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
	ordersService "github.com/othmanalikhan-apps/project-aardvark/internal/service/orders"
)

const (
	msgInvalidTableNumber = "некорректный номер стола"
	msgTableNotFound      = "стол не найден"
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

// Handle POST /api/v1/tables/{number}/settle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	numberStr := mux.Vars(r)["number"]
	number, err := strconv.ParseInt(numberStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /tables/{number}/settle - Invalid table number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableNumber)
		return
	}

	result, err := h.service.SettleTable(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrTableNotFound):
			h.logger.Warn("POST /tables/{number}/settle - Table not found: table=%d", number)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, ordersService.ErrInvalidInput):
			h.logger.Warn("POST /tables/{number}/settle - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTableNumber)

		default:
			h.logger.Error("POST /tables/{number}/settle - Failed to settle table: table=%d, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables/{number}/settle - Table settled: table=%d, orders=%d",
		number, result.OrdersSettled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
