package orders

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	CreateBatch(ctx context.Context, orders []*domain.Order) error
	GetActiveByTable(ctx context.Context, tableNumber int64) ([]*domain.Order, error)
	MarkHistoryByTable(ctx context.Context, tableNumber int64) (int64, error)
}

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Food, error)
	IncrementPopularity(ctx context.Context, foodID int64, by int64) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByNumber(ctx context.Context, number int64) (*domain.Table, error)
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
