package orders

import (
	"context"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	menuRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/menu"
	tableRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/table"
)

type mockOrderRepo struct {
	orders []*domain.Order
	nextID int64
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{nextID: 1}
}

func (m *mockOrderRepo) CreateBatch(_ context.Context, orders []*domain.Order) error {
	for _, o := range orders {
		created := *o
		created.ID = m.nextID
		m.nextID++
		m.orders = append(m.orders, &created)
	}
	return nil
}

func (m *mockOrderRepo) GetActiveByTable(_ context.Context, tableNumber int64) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range m.orders {
		if o.TableNumber == tableNumber && !o.IsHistory {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) MarkHistoryByTable(_ context.Context, tableNumber int64) (int64, error) {
	var n int64
	for _, o := range m.orders {
		if o.TableNumber == tableNumber && !o.IsHistory {
			o.IsHistory = true
			n++
		}
	}
	return n, nil
}

type mockMenuRepo struct {
	foods      map[string]*domain.Food
	popularity map[int64]int64
}

func newMockMenuRepo(foods ...*domain.Food) *mockMenuRepo {
	m := &mockMenuRepo{foods: map[string]*domain.Food{}, popularity: map[int64]int64{}}
	for _, f := range foods {
		m.foods[f.Name] = f
	}
	return m
}

func (m *mockMenuRepo) GetByName(_ context.Context, name string) (*domain.Food, error) {
	f, ok := m.foods[name]
	if !ok {
		return nil, menuRepo.ErrFoodNotFound
	}
	return f, nil
}

func (m *mockMenuRepo) IncrementPopularity(_ context.Context, foodID int64, by int64) error {
	m.popularity[foodID] += by
	return nil
}

type mockTableRepo struct {
	tables map[int64]*domain.Table
}

func newMockTableRepo(tables ...*domain.Table) *mockTableRepo {
	m := &mockTableRepo{tables: map[int64]*domain.Table{}}
	for _, t := range tables {
		m.tables[t.Number] = t
	}
	return m
}

func (m *mockTableRepo) GetByNumber(_ context.Context, number int64) (*domain.Table, error) {
	t, ok := m.tables[number]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	return t, nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
