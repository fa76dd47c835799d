package menu

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	menuRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/menu"
	"github.com/othmanalikhan-apps/project-aardvark/internal/service/menu/models"
)

type mockMenuRepo struct {
	foods  []*domain.Food
	nextID int64
}

func newMockMenuRepo(foods ...*domain.Food) *mockMenuRepo {
	m := &mockMenuRepo{nextID: int64(len(foods)) + 1}
	m.foods = append(m.foods, foods...)
	return m
}

func (m *mockMenuRepo) List(_ context.Context) ([]*domain.Food, error) {
	return m.foods, nil
}

func (m *mockMenuRepo) GetByName(_ context.Context, name string) (*domain.Food, error) {
	for _, f := range m.foods {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, menuRepo.ErrFoodNotFound
}

func (m *mockMenuRepo) CreateBatch(_ context.Context, foods []*domain.Food) error {
	for _, f := range foods {
		created := *f
		created.ID = m.nextID
		m.nextID++
		m.foods = append(m.foods, &created)
	}
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *mockMenuRepo) *Service {
	return NewService(repo, &mockTxManager{}, nopLogger{})
}

func TestList(t *testing.T) {
	repo := newMockMenuRepo(
		&domain.Food{ID: 1, Name: "Bruschetta", Type: domain.TypeStarter, Price: 4.50, Popularity: 7},
		&domain.Food{ID: 2, Name: "Carbonara", Type: domain.TypeMainCourse, Price: 11.00},
	)
	svc := newTestService(repo)

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "starter", resp.Items[0].Type)
	assert.Equal(t, int64(7), resp.Items[0].Popularity)
}

func TestAddFoods_Success(t *testing.T) {
	repo := newMockMenuRepo()
	svc := newTestService(repo)

	resp, err := svc.AddFoods(context.Background(), &models.AddFoodsRequest{
		Items: []models.AddFoodRequest{
			{Name: "Carbonara", Type: "main course", Description: "Classic roman pasta", Price: 11.00},
			{Name: "Lemonade", Type: "Beverage", Price: 2.50},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	// Категория нормализуется к нижнему регистру
	food, err := repo.GetByName(context.Background(), "Lemonade")
	require.NoError(t, err)
	assert.Equal(t, domain.TypeBeverage, food.Type)
	assert.Zero(t, food.Popularity)
}

func TestAddFoods_DuplicateInMenu(t *testing.T) {
	repo := newMockMenuRepo(&domain.Food{ID: 1, Name: "Carbonara", Type: domain.TypeMainCourse, Price: 11.00})
	svc := newTestService(repo)

	_, err := svc.AddFoods(context.Background(), &models.AddFoodsRequest{
		Items: []models.AddFoodRequest{{Name: "Carbonara", Type: "main course", Price: 12.00}},
	})

	assert.ErrorIs(t, err, ErrDuplicateFood)
	assert.Len(t, repo.foods, 1)
}

func TestAddFoods_Validation(t *testing.T) {
	tests := []struct {
		name    string
		items   []models.AddFoodRequest
		wantErr error
	}{
		{"no items", nil, ErrInvalidInput},
		{"empty name", []models.AddFoodRequest{{Name: " ", Type: "starter", Price: 1}}, ErrInvalidInput},
		{"name too long", []models.AddFoodRequest{{Name: strings.Repeat("a", domain.MaxFoodNameLength+1), Type: "starter", Price: 1}}, ErrInvalidInput},
		{"unknown type", []models.AddFoodRequest{{Name: "Soup", Type: "appetizer", Price: 1}}, ErrInvalidFoodType},
		{"negative price", []models.AddFoodRequest{{Name: "Soup", Type: "starter", Price: -1}}, ErrInvalidInput},
		{"duplicate in request", []models.AddFoodRequest{
			{Name: "Soup", Type: "starter", Price: 1},
			{Name: "Soup", Type: "starter", Price: 2},
		}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newMockMenuRepo())

			_, err := svc.AddFoods(context.Background(), &models.AddFoodsRequest{Items: tt.items})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
