package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	bookingRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/booking"
	"github.com/othmanalikhan-apps/project-aardvark/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByReference получает бронирование по номеру брони
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking %s", reference)

	reference = strings.ToUpper(strings.TrimSpace(reference))
	if len(reference) != domain.ReferenceLength {
		s.logger.Warn("GetByReference: malformed reference %q", reference)
		return nil, fmt.Errorf("%w: reference must be %d characters", ErrInvalidInput, domain.ReferenceLength)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking %s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for %s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByReference: fetched booking %s (id=%d)", reference, booking.ID)
	return models.FromDomainBooking(booking), nil
}
