package get_menu

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/service/menu/models"
)

type MenuService interface {
	List(ctx context.Context) (*models.MenuResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
