package get_free_tables

import (
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// Request модель запроса свободных столов на (дата, слот, размер)
type Request struct {
	Date time.Time
	Time types.TimeString
	Size int64 // Запрошенное число мест; неизвестный размер - пустой результат
}

// Response модель ответа: номера свободных столов по возрастанию
type Response struct {
	Date   time.Time
	Time   types.TimeString
	Size   int64
	Tables []int64
}
