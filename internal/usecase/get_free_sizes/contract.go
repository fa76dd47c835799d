package get_free_sizes

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	List(ctx context.Context) ([]domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
