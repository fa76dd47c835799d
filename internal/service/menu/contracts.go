package menu

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	List(ctx context.Context) ([]*domain.Food, error)
	GetByName(ctx context.Context, name string) (*domain.Food, error)
	CreateBatch(ctx context.Context, foods []*domain.Food) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
