package domain

import (
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// Booking подтвержденное бронирование: один стол занят на один слот в одну дату
type Booking struct {
	ID            int64
	Reference     string // Номер брони вида "ABC1234567", выдается клиенту
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BookingDate   time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Слот из каталога ресторана
	TableNumber   int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSameSlot возвращает true, если бронь занимает указанный слот в указанную дату
func (b *Booking) IsSameSlot(date time.Time, at types.TimeString) bool {
	return sameDate(b.BookingDate, date) && b.StartTime == at
}

// IsOnDate возвращает true, если бронь относится к указанной дате
func (b *Booking) IsOnDate(date time.Time) bool {
	return sameDate(b.BookingDate, date)
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date        *time.Time        // Дата (опционально, если nil - все даты)
	TableNumber *int64            // Фильтр по столу (опционально)
	StartTime   *types.TimeString // Фильтр по слоту (опционально)
}
