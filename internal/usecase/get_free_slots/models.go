package get_free_slots

import (
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// Request модель запроса свободных слотов по столам
type Request struct {
	Date time.Time // Дата, на которую запрашивается доступность
}

// Response модель ответа: свободные слоты каждого стола
// Ключ - номер стола, значение - слоты в порядке каталога
// Стол без броней получает полный каталог, полностью занятый - пустой список
type Response struct {
	Date  time.Time
	Slots map[int64][]types.TimeString
}
