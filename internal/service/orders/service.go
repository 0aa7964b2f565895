package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	orderRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/order"
	"github.com/m04kA/SMC-RestaurantService/internal/service/orders/models"
)

// Service сервис жизненного цикла заказов
type Service struct {
	orderRepo OrderRepository
	cartStore CartStore
	mailer    Mailer
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(
	orderRepo OrderRepository,
	cartStore CartStore,
	mailer Mailer,
	logger Logger,
) *Service {
	return &Service{
		orderRepo: orderRepo,
		cartStore: cartStore,
		mailer:    mailer,
		logger:    logger,
	}
}

// GetUserOrders получает историю заказов пользователя
func (s *Service) GetUserOrders(ctx context.Context, userID int64) (*models.OrderListResponse, error) {
	s.logger.Info("GetUserOrders: fetching orders for user=%d", userID)

	orders, err := s.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserOrders: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserOrders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserOrders: successfully fetched %d orders for user=%d", len(orders), userID)
	return models.FromDomainOrderList(orders), nil
}

// MarkPaidBySession помечает заказ оплаченным по идентификатору Stripe сессии
// Идемпотентна: повторное уведомление для уже оплаченного заказа - no-op
// После оплаты корзина пользователя очищается, гостю уходит подтверждение
func (s *Service) MarkPaidBySession(ctx context.Context, sessionID, customerEmail string) error {
	s.logger.Info("MarkPaidBySession: processing payment for session=%s", sessionID)

	order, err := s.orderRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("MarkPaidBySession: no order for session=%s", sessionID)
			return ErrOrderNotFound
		}
		s.logger.Error("MarkPaidBySession: repository error for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: MarkPaidBySession - repository error: %v", ErrInternal, err)
	}

	if !order.CanBePaid() {
		s.logger.Info("MarkPaidBySession: order id=%d already in status=%s, skipping", order.ID, order.Status)
		return nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderPaid); err != nil {
		s.logger.Error("MarkPaidBySession: failed to update order id=%d: %v", order.ID, err)
		return fmt.Errorf("%w: MarkPaidBySession - repository error: %v", ErrInternal, err)
	}

	// Корзина своё отработала, сбой очистки не откатывает оплату
	if err := s.cartStore.Clear(ctx, order.UserID); err != nil {
		s.logger.Warn("MarkPaidBySession: failed to clear cart for user=%d: %v", order.UserID, err)
	}

	if customerEmail != "" {
		if err := s.mailer.SendOrderPaid(customerEmail, order.Reference, order.Total); err != nil {
			s.logger.Warn("MarkPaidBySession: failed to send email for order id=%d: %v", order.ID, err)
		}
	}

	s.logger.Info("MarkPaidBySession: order id=%d reference=%s marked paid", order.ID, order.Reference)
	return nil
}

// MarkCancelledBySession помечает заказ отменённым по идентификатору Stripe сессии
// Используется при истечении или явной отмене платёжной сессии
func (s *Service) MarkCancelledBySession(ctx context.Context, sessionID string) error {
	s.logger.Info("MarkCancelledBySession: processing cancellation for session=%s", sessionID)

	order, err := s.orderRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("MarkCancelledBySession: no order for session=%s", sessionID)
			return ErrOrderNotFound
		}
		s.logger.Error("MarkCancelledBySession: repository error for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: MarkCancelledBySession - repository error: %v", ErrInternal, err)
	}

	if !order.CanBeCancelled() {
		s.logger.Info("MarkCancelledBySession: order id=%d in status=%s, skipping", order.ID, order.Status)
		return nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderCancelled); err != nil {
		s.logger.Error("MarkCancelledBySession: failed to update order id=%d: %v", order.ID, err)
		return fmt.Errorf("%w: MarkCancelledBySession - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkCancelledBySession: order id=%d cancelled", order.ID)
	return nil
}
