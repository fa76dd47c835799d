package create_order

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/service/orders/models"
)

type OrdersService interface {
	PlaceOrders(ctx context.Context, req *models.PlaceOrdersRequest) (*models.PlaceOrdersResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
