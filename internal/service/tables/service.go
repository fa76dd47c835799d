package tables

import (
	"context"
	"fmt"

	"github.com/othmanalikhan-apps/project-aardvark/internal/service/tables/models"
)

// Service сервис для работы со столами ресторана
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// List возвращает все столы ресторана с их вместимостью
func (s *Service) List(ctx context.Context) (*models.TableListResponse, error) {
	s.logger.Info("List: fetching restaurant tables")

	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d tables", len(tables))
	return models.FromDomainTables(tables), nil
}
