package get_free_tables

import (
	"context"
	"fmt"

	"github.com/othmanalikhan-apps/project-aardvark/internal/availability"
	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// UseCase use case получения свободных столов на (дата, слот, размер)
type UseCase struct {
	catalogue   []types.TimeString
	bookingRepo BookingRepository
	tableRepo   TableRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogue []types.TimeString,
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogue:   catalogue,
		bookingRepo: bookingRepo,
		tableRepo:   tableRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных столов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeTables: date=%s, time=%s, size=%d",
		req.Date.Format(domain.DateFormat), req.Time, req.Size)

	if err := validateRequest(uc.catalogue, req); err != nil {
		uc.logger.Warn("GetFreeTables: validation failed: %v", err)
		return nil, err
	}

	tables, err := uc.tableRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetFreeTables: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		Date:      &req.Date,
		StartTime: &req.Time,
	})
	if err != nil {
		uc.logger.Error("GetFreeTables: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	free, err := availability.FreeTablesAtSlotAndSize(tables, bookings, req.Date, req.Time, req.Size)
	if err != nil {
		uc.logger.Error("GetFreeTables: data integrity violation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}

	uc.logger.Info("GetFreeTables: %d free tables of size %d at %s %s",
		len(free), req.Size, req.Date.Format(domain.DateFormat), req.Time)

	return &Response{
		Date:   req.Date,
		Time:   req.Time,
		Size:   req.Size,
		Tables: free,
	}, nil
}

// validateRequest валидирует входные данные запроса
// Неизвестный размер стола валиден (пустой результат), а вот время
// обязано входить в каталог слотов
func validateRequest(catalogue []types.TimeString, req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if req.Size <= 0 {
		return fmt.Errorf("%w: size must be positive", ErrInvalidInput)
	}
	for _, slot := range catalogue {
		if slot == req.Time {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSlotNotInCatalogue, req.Time)
}
