package update_menu

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/service/menu/models"
)

type MenuService interface {
	AddFoods(ctx context.Context, req *models.AddFoodsRequest) (*models.MenuResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
