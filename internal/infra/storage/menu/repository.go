package menu

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/dbmetrics"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/psqlbuilder"
)

const foodColumns = "id, name, type, description, price, popularity"

// Repository репозиторий меню ресторана
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все позиции меню по алфавиту
func (r *Repository) List(ctx context.Context) ([]*domain.Food, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(foodColumns).
		From("menu").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanFoods(rows)
}

// GetByName возвращает блюдо по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Food, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(foodColumns).
		From("menu").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	food, err := r.scanFood(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan row: %v", ErrScanRow, err)
	}

	return food, nil
}

// CreateBatch добавляет позиции меню одной вставкой
func (r *Repository) CreateBatch(ctx context.Context, foods []*domain.Food) error {
	if len(foods) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("menu").
		Columns("name", "type", "description", "price")

	for _, food := range foods {
		insertBuilder = insertBuilder.Values(food.Name, food.Type, food.Description, food.Price)
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

// IncrementPopularity увеличивает счетчик заказов блюда
func (r *Repository) IncrementPopularity(ctx context.Context, foodID int64, by int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("menu").
		Set("popularity", squirrel.Expr("popularity + ?", by)).
		Where(squirrel.Eq{"id": foodID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementPopularity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementPopularity - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementPopularity - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrFoodNotFound
	}

	return nil
}

func (r *Repository) scanFood(row interface{ Scan(...interface{}) error }) (*domain.Food, error) {
	var food domain.Food
	err := row.Scan(
		&food.ID,
		&food.Name,
		&food.Type,
		&food.Description,
		&food.Price,
		&food.Popularity,
	)
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *Repository) scanFoods(rows *sql.Rows) ([]*domain.Food, error) {
	foods := make([]*domain.Food, 0)

	for rows.Next() {
		food, err := r.scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanFoods - scan row: %v", ErrScanRow, err)
		}
		foods = append(foods, food)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanFoods - rows error: %v", ErrScanRow, err)
	}

	return foods, nil
}
