package get_free_sizes

import (
	"errors"
	"net/http"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
	getFreeSizes "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_sizes"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingTime     = "время обязательно"
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
	msgSlotNotInScheme = "время не входит в расписание ресторана"
)

type Handler struct {
	useCase GetFreeSizesUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSizesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/sizes
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings/sizes - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /bookings/sizes - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, timeStr)
	if err != nil {
		h.logger.Warn("GET /bookings/sizes - Invalid date or time format: %v", err)
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
		case errors.Is(err, getFreeSizes.ErrSlotNotInCatalogue):
			h.logger.Warn("GET /bookings/sizes - Slot not in catalogue: time=%s", timeStr)
			handlers.RespondBadRequest(w, msgSlotNotInScheme)

		case errors.Is(err, getFreeSizes.ErrInvalidInput):
			h.logger.Warn("GET /bookings/sizes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings/sizes - Failed to get free sizes: date=%s, time=%s, error=%v",
				dateStr, timeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /bookings/sizes - Free sizes retrieved: date=%s, time=%s, sizes=%d",
		dateStr, timeStr, len(result.Sizes))
	handlers.RespondJSON(w, http.StatusOK, response)
}
