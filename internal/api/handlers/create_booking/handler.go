package create_booking

import (
	"errors"
	"net/http"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
	createBooking "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные данные бронирования"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgTableNotFound      = "стол не найден"
	msgSlotNotInScheme    = "время не входит в расписание ресторана"
	msgTableAlreadyBooked = "стол уже забронирован на этот слот"
	msgDateInPast         = "дата бронирования уже прошла"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if _, dateErr := parseDateOnly(req.Date); dateErr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTableAlreadyBooked):
			h.logger.Warn("POST /bookings - Table already booked: table=%d, date=%s, time=%s",
				req.TableNumber, req.Date, req.Time)
			handlers.RespondConflict(w, msgTableAlreadyBooked)

		case errors.Is(err, createBooking.ErrTableNotFound):
			h.logger.Warn("POST /bookings - Table not found: table=%d", req.TableNumber)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createBooking.ErrSlotNotInCatalogue):
			h.logger.Warn("POST /bookings - Slot not in catalogue: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgSlotNotInScheme)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: table=%d, date=%s, time=%s, error=%v",
				req.TableNumber, req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: reference=%s, table=%d, date=%s, time=%s",
		result.Reference, result.TableNumber, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
