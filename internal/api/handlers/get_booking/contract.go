package get_booking

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/service/bookings/models"
)

type BookingsService interface {
	GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
