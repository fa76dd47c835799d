package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/dbmetrics"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/psqlbuilder"
)

// Repository репозиторий заказов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch сохраняет заказы одной вставкой
func (r *Repository) CreateBatch(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("orders").
		Columns("table_number", "food_id", "food_name", "food_price", "quantity", "is_history")

	for _, o := range orders {
		insertBuilder = insertBuilder.Values(
			o.TableNumber, o.FoodID, o.FoodName, o.FoodPrice, o.Quantity, o.IsHistory)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetActiveByTable возвращает неоплаченные заказы стола
// Оплаченные (is_history=true) в текущий счет не входят
func (r *Repository) GetActiveByTable(ctx context.Context, tableNumber int64) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "table_number", "food_id", "food_name", "food_price", "quantity", "is_history", "created_at").
		From("orders").
		Where(squirrel.Eq{"table_number": tableNumber, "is_history": false}).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		var createdAt sql.NullTime
		err := rows.Scan(
			&o.ID,
			&o.TableNumber,
			&o.FoodID,
			&o.FoodName,
			&o.FoodPrice,
			&o.Quantity,
			&o.IsHistory,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveByTable - scan row: %v", ErrScanRow, err)
		}
		o.CreatedAt = createdAt.Time
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTable - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

// MarkHistoryByTable помечает все активные заказы стола оплаченными
// Возвращает число закрытых заказов
func (r *Repository) MarkHistoryByTable(ctx context.Context, tableNumber int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("is_history", true).
		Where(squirrel.Eq{"table_number": tableNumber, "is_history": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkHistoryByTable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkHistoryByTable - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkHistoryByTable - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
