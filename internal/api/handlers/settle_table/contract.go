package settle_table

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/service/orders/models"
)

type OrdersService interface {
	SettleTable(ctx context.Context, tableNumber int64) (*models.SettleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
