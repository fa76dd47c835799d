package models

import (
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
)

// BookingResponse бронирование стола
type BookingResponse struct {
	ID           int64  `json:"id"`
	Reference    string `json:"reference"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	TableNumber  int64  `json:"tableNumber"`
	CreatedAt    string `json:"createdAt"`
}

// FromDomainBooking конвертирует доменное бронирование в response-модель
// Контакты клиента наружу не отдаются
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		Reference:    b.Reference,
		CustomerName: b.CustomerName,
		Date:         b.BookingDate.Format(domain.DateFormat),
		Time:         b.StartTime.String(),
		TableNumber:  b.TableNumber,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}
