package get_free_sizes

import (
	"context"
	"fmt"

	"github.com/othmanalikhan-apps/project-aardvark/internal/availability"
	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// UseCase use case получения размеров свободных столов на (дата, слот)
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

// Execute выполняет use case получения свободных размеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSizes: date=%s, time=%s",
		req.Date.Format(domain.DateFormat), req.Time)

	if err := validateRequest(uc.catalogue, req); err != nil {
		uc.logger.Warn("GetFreeSizes: validation failed: %v", err)
		return nil, err
	}

	tables, err := uc.tableRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetFreeSizes: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		Date:      &req.Date,
		StartTime: &req.Time,
	})
	if err != nil {
		uc.logger.Error("GetFreeSizes: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	sizes, err := availability.FreeSizesAtSlot(tables, bookings, req.Date, req.Time)
	if err != nil {
		uc.logger.Error("GetFreeSizes: data integrity violation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}

	uc.logger.Info("GetFreeSizes: %d free tables at %s %s",
		len(sizes), req.Date.Format(domain.DateFormat), req.Time)

	return &Response{
		Date:  req.Date,
		Time:  req.Time,
		Sizes: sizes,
	}, nil
}

// validateRequest валидирует входные данные запроса
// Время обязано входить в каталог: клиент выбирает его из выпадающего
// списка слотов, любое другое значение - ошибка запроса
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
	for _, slot := range catalogue {
		if slot == req.Time {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSlotNotInCatalogue, req.Time)
}
