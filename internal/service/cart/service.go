package cart

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/cart/models"
)

// Service сервис корзины: загрузка, мутация через машину состояний, сохранение
// Цены позиций берутся из каталога, клиентские цены не принимаются
type Service struct {
	cartStore   CartStore
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(
	cartStore CartStore,
	productRepo ProductRepository,
	logger Logger,
) *Service {
	return &Service{
		cartStore:   cartStore,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart получает корзину пользователя
func (s *Service) GetCart(ctx context.Context, userID int64) (*models.CartView, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainCart(cart), nil
}

// AddItem добавляет товар в корзину
// Цена и название позиции и добавок берутся из каталога, клиентские цены
// не принимаются; повторное добавление того же товара увеличивает количество
func (s *Service) AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartView, error) {
	s.logger.Info("AddItem: user=%d product=%d qty=%d", userID, req.ProductID, req.Qty)

	if req.ProductID <= 0 {
		return nil, fmt.Errorf("%w: productId must be positive", ErrInvalidInput)
	}

	ids := make([]int64, 0, 1+len(req.Supplements))
	ids = append(ids, req.ProductID)
	for _, sup := range req.Supplements {
		if sup.ProductID <= 0 {
			return nil, fmt.Errorf("%w: supplement productId must be positive", ErrInvalidInput)
		}
		ids = append(ids, sup.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("AddItem: catalog error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: AddItem - catalog error: %v", ErrInternal, err)
	}

	byID := make(map[int64]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	product, ok := byID[req.ProductID]
	if !ok {
		s.logger.Warn("AddItem: product=%d not found", req.ProductID)
		return nil, ErrProductNotFound
	}
	if !product.Available {
		s.logger.Warn("AddItem: product=%d unavailable", req.ProductID)
		return nil, ErrProductUnavailable
	}

	supplements := make([]domain.CartSupplement, 0, len(req.Supplements))
	for _, sup := range req.Supplements {
		catalogSup, ok := byID[sup.ProductID]
		if !ok {
			s.logger.Warn("AddItem: supplement product=%d not found", sup.ProductID)
			return nil, ErrProductNotFound
		}
		if !catalogSup.Available {
			s.logger.Warn("AddItem: supplement product=%d unavailable", sup.ProductID)
			return nil, ErrProductUnavailable
		}

		supplements = append(supplements, domain.CartSupplement{
			ProductID: catalogSup.ID,
			Name:      catalogSup.Name,
			UnitPrice: catalogSup.Price,
			Qty:       sup.Qty,
		})
	}

	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(domain.CartLine{
		ProductID:   product.ID,
		Name:        product.Name,
		UnitPrice:   product.Price,
		Qty:         req.Qty,
		Supplements: supplements,
	})

	if err := s.saveCart(ctx, userID, cart); err != nil {
		return nil, err
	}

	s.logger.Info("AddItem: user=%d cart now has %d lines", userID, len(cart.Lines))
	return models.FromDomainCart(cart), nil
}

// ChangeQty изменяет количество позиции по индексу
// Количество не опускается ниже 1: удаление только через RemoveItem
func (s *Service) ChangeQty(ctx context.Context, userID int64, index int, delta int) (*models.CartView, error) {
	s.logger.Info("ChangeQty: user=%d index=%d delta=%d", userID, index, delta)

	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.ChangeQty(index, delta) {
		s.logger.Warn("ChangeQty: user=%d line index=%d not found", userID, index)
		return nil, ErrLineNotFound
	}

	if err := s.saveCart(ctx, userID, cart); err != nil {
		return nil, err
	}

	return models.FromDomainCart(cart), nil
}

// RemoveItem удаляет позицию по индексу
func (s *Service) RemoveItem(ctx context.Context, userID int64, index int) (*models.CartView, error) {
	s.logger.Info("RemoveItem: user=%d index=%d", userID, index)

	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(index) {
		s.logger.Warn("RemoveItem: user=%d line index=%d not found", userID, index)
		return nil, ErrLineNotFound
	}

	if err := s.saveCart(ctx, userID, cart); err != nil {
		return nil, err
	}

	return models.FromDomainCart(cart), nil
}

func (s *Service) loadCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	cart, err := s.cartStore.Load(ctx, userID)
	if err != nil {
		s.logger.Error("loadCart: store error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: loadCart - store error: %v", ErrInternal, err)
	}
	return cart, nil
}

func (s *Service) saveCart(ctx context.Context, userID int64, cart *domain.Cart) error {
	if err := s.cartStore.Save(ctx, userID, cart); err != nil {
		s.logger.Error("saveCart: store error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: saveCart - store error: %v", ErrInternal, err)
	}
	return nil
}
