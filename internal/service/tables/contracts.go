package tables

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	List(ctx context.Context) ([]domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
