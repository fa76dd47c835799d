package get_tables

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/service/tables/models"
)

type TablesService interface {
	List(ctx context.Context) (*models.TableListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
