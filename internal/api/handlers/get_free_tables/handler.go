package get_free_tables

import (
	"errors"
	"net/http"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
	getFreeTables "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_tables"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTime     = "время обязательно"
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
	msgMissingSize     = "количество мест обязательно"
	msgInvalidSize     = "некорректное количество мест"
	msgSlotNotInScheme = "время не входит в расписание ресторана"
)

type Handler struct {
	useCase GetFreeTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/tables
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM), size (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings/tables - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /bookings/tables - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	sizeStr := r.URL.Query().Get("size")
	if sizeStr == "" {
		h.logger.Warn("GET /bookings/tables - Missing size")
		handlers.RespondBadRequest(w, msgMissingSize)
		return
	}

	size, err := ParseSize(sizeStr)
	if err != nil || size <= 0 {
		h.logger.Warn("GET /bookings/tables - Invalid size: %s", sizeStr)
		handlers.RespondBadRequest(w, msgInvalidSize)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, timeStr, size)
	if err != nil {
		h.logger.Warn("GET /bookings/tables - Invalid date or time format: %v", err)
		if _, timeErr := parseTimeOnly(timeStr); timeErr != nil {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFreeTables.ErrSlotNotInCatalogue):
			h.logger.Warn("GET /bookings/tables - Slot not in catalogue: time=%s", timeStr)
			handlers.RespondBadRequest(w, msgSlotNotInScheme)

		case errors.Is(err, getFreeTables.ErrInvalidInput):
			h.logger.Warn("GET /bookings/tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings/tables - Failed to get free tables: date=%s, time=%s, size=%d, error=%v",
				dateStr, timeStr, size, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /bookings/tables - Free tables retrieved: date=%s, time=%s, size=%d, tables=%d",
		dateStr, timeStr, size, len(result.Tables))
	handlers.RespondJSON(w, http.StatusOK, response)
}
