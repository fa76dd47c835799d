package get_free_slots

import (
	"context"
	"fmt"

	"github.com/othmanalikhan-apps/project-aardvark/internal/availability"
	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// UseCase use case получения свободных слотов по каждому столу
type UseCase struct {
	catalogue   []types.TimeString
	bookingRepo BookingRepository
	tableRepo   TableRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// Каталог слотов инжектируется из конфигурации на старте
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

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetFreeSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	tables, err := uc.tableRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{Date: &req.Date})
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots, err := availability.FreeSlotsPerTable(uc.catalogue, tables, bookings, req.Date)
	if err != nil {
		// Калькулятор чистый: его ошибка означает битые данные в хранилище
		uc.logger.Error("GetFreeSlots: data integrity violation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}

	uc.logger.Info("GetFreeSlots: computed availability for %d tables, %d bookings on %s",
		len(tables), len(bookings), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
