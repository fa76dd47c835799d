package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	menuRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/menu"
	"github.com/othmanalikhan-apps/project-aardvark/internal/service/menu/models"
)

// Service сервис для работы с меню ресторана
type Service struct {
	menuRepo  MenuRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(menuRepo MenuRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		menuRepo:  menuRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает полное меню ресторана
func (s *Service) List(ctx context.Context) (*models.MenuResponse, error) {
	s.logger.Info("List: fetching menu")

	foods, err := s.menuRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d menu items", len(foods))
	return models.FromDomainFoods(foods), nil
}

// AddFoods добавляет новые блюда в меню
// Блюда с уже существующими названиями отклоняются целиком, частичной
// вставки не бывает
func (s *Service) AddFoods(ctx context.Context, req *models.AddFoodsRequest) (*models.MenuResponse, error) {
	s.logger.Info("AddFoods: adding %d menu items", len(req.Items))

	foods, err := toDomainFoods(req.Items)
	if err != nil {
		s.logger.Warn("AddFoods: validation failed: %v", err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, f := range foods {
			_, err := s.menuRepo.GetByName(ctx, f.Name)
			if err == nil {
				return fmt.Errorf("%w: %s", ErrDuplicateFood, f.Name)
			}
			if !errors.Is(err, menuRepo.ErrFoodNotFound) {
				return fmt.Errorf("%w: AddFoods - repository error: %v", ErrInternal, err)
			}
		}
		if err := s.menuRepo.CreateBatch(ctx, foods); err != nil {
			return fmt.Errorf("%w: AddFoods - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateFood) {
			s.logger.Warn("AddFoods: %v", err)
		} else {
			s.logger.Error("AddFoods: transaction failed: %v", err)
		}
		return nil, err
	}

	s.logger.Info("AddFoods: added %d menu items", len(foods))
	return s.List(ctx)
}

// toDomainFoods валидирует и конвертирует запрос в доменные блюда
func toDomainFoods(items []models.AddFoodRequest) ([]*domain.Food, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}

	foods := make([]*domain.Food, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: food name is required", ErrInvalidInput)
		}
		if len(name) > domain.MaxFoodNameLength {
			return nil, fmt.Errorf("%w: food name must not exceed %d characters", ErrInvalidInput, domain.MaxFoodNameLength)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate item %s in request", ErrInvalidInput, name)
		}
		seen[name] = struct{}{}

		foodType := domain.FoodType(strings.ToLower(strings.TrimSpace(item.Type)))
		if !domain.IsValidFoodType(foodType) {
			return nil, fmt.Errorf("%w: %s (expected one of %v)", ErrInvalidFoodType, item.Type, domain.FoodTypes)
		}

		if item.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}

		foods = append(foods, &domain.Food{
			Name:        name,
			Type:        foodType,
			Description: strings.TrimSpace(item.Description),
			Price:       item.Price,
		})
	}

	return foods, nil
}
