package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
	bookingsService "github.com/othmanalikhan-apps/project-aardvark/internal/service/bookings"
)

const (
	msgInvalidReference = "некорректный номер брони"
	msgBookingNotFound  = "бронирование не найдено"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	result, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{reference} - Invalid reference: %s", reference)
			handlers.RespondBadRequest(w, msgInvalidReference)

		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{reference} - Booking not found: %s", reference)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{reference} - Failed to get booking: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{reference} - Booking retrieved: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, result)
}
