package create_booking

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	createBooking "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/create_booking"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

var validate = validator.New()

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Email       string `json:"email" validate:"required,email,max=80"`
	Phone       string `json:"phone" validate:"required,max=13"`
	Date        string `json:"date" validate:"required"`        // "2030-05-01"
	Time        string `json:"time" validate:"required"`        // "11:00"
	TableNumber int64  `json:"tableNumber" validate:"required,min=1"`
}

// Validate проверяет структуру запроса до разбора даты и времени
func (r *CreateBookingRequest) Validate() error {
	return validate.Struct(r)
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	TableNumber int64  `json:"tableNumber"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:  r.Name,
		CustomerEmail: r.Email,
		CustomerPhone: r.Phone,
		Date:          date,
		StartTime:     startTime,
		TableNumber:   r.TableNumber,
	}, nil
}

// parseDateOnly различает ошибку даты от ошибки времени при разборе запроса
func parseDateOnly(dateStr string) (time.Time, error) {
	return time.Parse(domain.DateFormat, dateStr)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		Reference:   resp.Reference,
		TableNumber: resp.TableNumber,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.StartTime.String(),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
