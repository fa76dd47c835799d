package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	menuRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/menu"
	tableRepo "github.com/othmanalikhan-apps/project-aardvark/internal/infra/storage/table"
	"github.com/othmanalikhan-apps/project-aardvark/internal/service/orders/models"
)

// Service сервис заказов и счетов
type Service struct {
	orderRepo OrderRepository
	menuRepo  MenuRepository
	tableRepo TableRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(
	orderRepo OrderRepository,
	menuRepo MenuRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		tableRepo: tableRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// PlaceOrders оформляет заказ для стола
// Цена и название блюда фиксируются в заказе на момент оформления, чтобы
// последующие правки меню не меняли уже выставленные счета
func (s *Service) PlaceOrders(ctx context.Context, req *models.PlaceOrdersRequest) (*models.PlaceOrdersResponse, error) {
	s.logger.Info("PlaceOrders: table=%d, items=%d", req.TableNumber, len(req.Items))

	if err := validatePlaceOrders(req); err != nil {
		s.logger.Warn("PlaceOrders: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.tableRepo.GetByNumber(ctx, req.TableNumber); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("PlaceOrders: table %d not found", req.TableNumber)
			return nil, fmt.Errorf("%w: %d", ErrTableNotFound, req.TableNumber)
		}
		s.logger.Error("PlaceOrders: table lookup failed: %v", err)
		return nil, fmt.Errorf("%w: PlaceOrders - repository error: %v", ErrInternal, err)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orders := make([]*domain.Order, 0, len(req.Items))

		for _, item := range req.Items {
			name := strings.TrimSpace(item.FoodName)

			food, err := s.menuRepo.GetByName(ctx, name)
			if err != nil {
				if errors.Is(err, menuRepo.ErrFoodNotFound) {
					return fmt.Errorf("%w: %s", ErrFoodNotFound, name)
				}
				return fmt.Errorf("%w: PlaceOrders - repository error: %v", ErrInternal, err)
			}

			orders = append(orders, &domain.Order{
				TableNumber: req.TableNumber,
				FoodID:      food.ID,
				FoodName:    food.Name,
				FoodPrice:   food.Price,
				Quantity:    item.Quantity,
			})

			if err := s.menuRepo.IncrementPopularity(ctx, food.ID, item.Quantity); err != nil {
				return fmt.Errorf("%w: PlaceOrders - popularity update: %v", ErrInternal, err)
			}
		}

		if err := s.orderRepo.CreateBatch(ctx, orders); err != nil {
			return fmt.Errorf("%w: PlaceOrders - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			s.logger.Warn("PlaceOrders: %v", err)
		} else {
			s.logger.Error("PlaceOrders: transaction failed: %v", err)
		}
		return nil, err
	}

	s.logger.Info("PlaceOrders: placed %d items for table %d", len(req.Items), req.TableNumber)
	return &models.PlaceOrdersResponse{
		TableNumber: req.TableNumber,
		ItemsPlaced: len(req.Items),
	}, nil
}

// GetBill возвращает счет стола по неоплаченным заказам
// Пустой счет с нулевым итогом - валидный ответ
func (s *Service) GetBill(ctx context.Context, tableNumber int64) (*models.BillResponse, error) {
	s.logger.Info("GetBill: table=%d", tableNumber)

	if tableNumber <= 0 {
		return nil, fmt.Errorf("%w: table number must be positive", ErrInvalidInput)
	}

	if _, err := s.tableRepo.GetByNumber(ctx, tableNumber); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("GetBill: table %d not found", tableNumber)
			return nil, fmt.Errorf("%w: %d", ErrTableNotFound, tableNumber)
		}
		s.logger.Error("GetBill: table lookup failed: %v", err)
		return nil, fmt.Errorf("%w: GetBill - repository error: %v", ErrInternal, err)
	}

	orders, err := s.orderRepo.GetActiveByTable(ctx, tableNumber)
	if err != nil {
		s.logger.Error("GetBill: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBill - repository error: %v", ErrInternal, err)
	}

	bill := models.BillFromDomainOrders(tableNumber, orders)
	s.logger.Info("GetBill: table=%d, lines=%d, total=%.2f", tableNumber, len(bill.Lines), bill.Total)
	return bill, nil
}

// SettleTable закрывает счет стола, переводя все активные заказы в историю
func (s *Service) SettleTable(ctx context.Context, tableNumber int64) (*models.SettleResponse, error) {
	s.logger.Info("SettleTable: table=%d", tableNumber)

	if tableNumber <= 0 {
		return nil, fmt.Errorf("%w: table number must be positive", ErrInvalidInput)
	}

	if _, err := s.tableRepo.GetByNumber(ctx, tableNumber); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("SettleTable: table %d not found", tableNumber)
			return nil, fmt.Errorf("%w: %d", ErrTableNotFound, tableNumber)
		}
		s.logger.Error("SettleTable: table lookup failed: %v", err)
		return nil, fmt.Errorf("%w: SettleTable - repository error: %v", ErrInternal, err)
	}

	var settled int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		n, err := s.orderRepo.MarkHistoryByTable(ctx, tableNumber)
		if err != nil {
			return fmt.Errorf("%w: SettleTable - repository error: %v", ErrInternal, err)
		}
		settled = n
		return nil
	})
	if err != nil {
		s.logger.Error("SettleTable: transaction failed: %v", err)
		return nil, err
	}

	s.logger.Info("SettleTable: settled %d orders for table %d", settled, tableNumber)
	return &models.SettleResponse{
		TableNumber:   tableNumber,
		OrdersSettled: settled,
	}, nil
}

func validatePlaceOrders(req *models.PlaceOrdersRequest) error {
	if req.TableNumber <= 0 {
		return fmt.Errorf("%w: table number must be positive", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.FoodName) == "" {
			return fmt.Errorf("%w: food name is required", ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
	}
	return nil
}
