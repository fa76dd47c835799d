package get_bill

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/service/orders/models"
)

type OrdersService interface {
	GetBill(ctx context.Context, tableNumber int64) (*models.BillResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
