package get_free_sizes

import (
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	getFreeSizes "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_sizes"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// FreeSizesResponse HTTP response model
// Размеры отсортированы как строки, по записи на каждый свободный стол
type FreeSizesResponse struct {
	Date  string   `json:"date"`
	Time  string   `json:"time"`
	Sizes []string `json:"sizes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSizes.Response) *FreeSizesResponse {
	sizes := resp.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	return &FreeSizesResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Time:  resp.Time.String(),
		Sizes: sizes,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, timeStr string) (*getFreeSizes.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &getFreeSizes.Request{Date: date, Time: slot}, nil
}

// parseTimeOnly различает ошибку времени от ошибки даты при разборе запроса
func parseTimeOnly(timeStr string) (types.TimeString, error) {
	return types.NewTimeStringFromString(timeStr)
}
