package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// UseCase use case создания бронирования стола
type UseCase struct {
	catalogue    []types.TimeString
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogue []types.TimeString,
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogue:    catalogue,
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка занятости стола и вставка выполняются в одной serializable
// транзакции, чтобы два конкурентных запроса не забронировали один стол
// на один и тот же слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: table=%d, date=%s, time=%s",
		req.TableNumber, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateSlotInCatalogue(uc.catalogue, req.StartTime); err != nil {
		uc.logger.Warn("CreateBooking: slot not in catalogue: %s", req.StartTime)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date in the past: %s", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	table, err := uc.tableRepo.GetByNumber(ctx, req.TableNumber)
	if err != nil {
		uc.logger.Warn("CreateBooking: table %d lookup failed: %v", req.TableNumber, err)
		return nil, fmt.Errorf("%w: %d", ErrTableNotFound, req.TableNumber)
	}

	var created *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// Блокируем брони этого стола на дату через FOR UPDATE
		existing, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
			Date:        &req.Date,
			TableNumber: &req.TableNumber,
			StartTime:   &req.StartTime,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to check existing bookings: %v", ErrInternal, err)
		}
		if len(existing) > 0 {
			return fmt.Errorf("%w: table %d at %s on %s",
				ErrTableAlreadyBooked, req.TableNumber, req.StartTime, req.Date.Format(domain.DateFormat))
		}

		reference, err := uc.uniqueReference(ctx)
		if err != nil {
			return err
		}

		created, err = uc.bookingRepo.Create(ctx, &domain.Booking{
			Reference:     reference,
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerEmail: strings.TrimSpace(req.CustomerEmail),
			CustomerPhone: strings.TrimSpace(req.CustomerPhone),
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			TableNumber:   table.Number,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking %s (id=%d) for table %d",
		created.Reference, created.ID, created.TableNumber)

	// Подтверждение отправляем после коммита, ошибки отправки не влияют на бронь
	uc.notifier.SendBookingConfirmation(created)

	return &Response{
		ID:          created.ID,
		Reference:   created.Reference,
		TableNumber: created.TableNumber,
		Date:        created.BookingDate,
		StartTime:   created.StartTime,
		CreatedAt:   created.CreatedAt,
	}, nil
}
