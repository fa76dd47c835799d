package create_booking

import (
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Слот из каталога ресторана
	TableNumber   int64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Reference   string // Номер брони, выдается клиенту
	TableNumber int64
	Date        time.Time
	StartTime   types.TimeString
	CreatedAt   time.Time
}
