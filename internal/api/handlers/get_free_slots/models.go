package get_free_slots

import (
	"strconv"
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	getFreeSlots "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_slots"
)

// FreeSlotsResponse HTTP response model
// Ключ - номер стола (строкой, как принято в JSON-объектах),
// значение - свободные слоты в порядке каталога
type FreeSlotsResponse struct {
	Date  string              `json:"date"`
	Slots map[string][]string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make(map[string][]string, len(resp.Slots))
	for tableNumber, free := range resp.Slots {
		times := make([]string, len(free))
		for i, t := range free {
			times[i] = t.String()
		}
		slots[strconv.FormatInt(tableNumber, 10)] = times
	}

	return &FreeSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getFreeSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getFreeSlots.Request{Date: date}, nil
}
