package get_free_sizes

import (
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// Request модель запроса свободных размеров столов на слот
type Request struct {
	Date time.Time
	Time types.TimeString // Слот из каталога ресторана
}

// Response модель ответа: размеры свободных столов
// По одной записи на свободный стол, поэтому размеры могут повторяться
type Response struct {
	Date  time.Time
	Time  types.TimeString
	Sizes []string
}
