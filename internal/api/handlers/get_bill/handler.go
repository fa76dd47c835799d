package get_bill

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

// Handle GET /api/v1/tables/{number}/bill
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	numberStr := mux.Vars(r)["number"]
	number, err := strconv.ParseInt(numberStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{number}/bill - Invalid table number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableNumber)
		return
	}

	result, err := h.service.GetBill(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrTableNotFound):
			h.logger.Warn("GET /tables/{number}/bill - Table not found: table=%d", number)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, ordersService.ErrInvalidInput):
			h.logger.Warn("GET /tables/{number}/bill - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTableNumber)

		default:
			h.logger.Error("GET /tables/{number}/bill - Failed to get bill: table=%d, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{number}/bill - Bill retrieved: table=%d, total=%.2f", number, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
