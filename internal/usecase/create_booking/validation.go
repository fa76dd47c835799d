package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Ограничения длины полей совпадают со схемой хранения
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxCustomerEmailLength {
		return fmt.Errorf("%w: email must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerEmailLength)
	}

	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: phone must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}

	if req.TableNumber <= 0 {
		return fmt.Errorf("%w: table number must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlotInCatalogue проверяет, что время входит в каталог слотов
func validateSlotInCatalogue(catalogue []types.TimeString, at types.TimeString) error {
	for _, slot := range catalogue {
		if slot == at {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSlotNotInCatalogue, at)
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
