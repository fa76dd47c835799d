package get_free_tables

import (
	"strconv"
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	getFreeTables "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_tables"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// FreeTablesResponse HTTP response model
// Номера столов отсортированы по возрастанию
type FreeTablesResponse struct {
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Size   int64   `json:"size"`
	Tables []int64 `json:"tables"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeTables.Response) *FreeTablesResponse {
	tables := resp.Tables
	if tables == nil {
		tables = []int64{}
	}
	return &FreeTablesResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Time:   resp.Time.String(),
		Size:   resp.Size,
		Tables: tables,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, timeStr string, size int64) (*getFreeTables.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &getFreeTables.Request{Date: date, Time: slot, Size: size}, nil
}

// parseTimeOnly различает ошибку времени от ошибки даты при разборе запроса
func parseTimeOnly(timeStr string) (types.TimeString, error) {
	return types.NewTimeStringFromString(timeStr)
}

// ParseSize разбирает запрошенный размер стола
func ParseSize(sizeStr string) (int64, error) {
	return strconv.ParseInt(sizeStr, 10, 64)
}
