package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/service/catalog/models"
)

// Service сервис каталога товаров
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List получает доступные товары каталога
func (s *Service) List(ctx context.Context) (*models.ProductListResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProductList(products), nil
}
