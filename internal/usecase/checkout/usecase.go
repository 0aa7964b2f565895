package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/stripepay"
)

// UseCase use case оформления заказа из корзины
type UseCase struct {
	orderRepo    OrderRepository
	productRepo  ProductRepository
	cartStore    CartStore
	stripeClient StripeClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	cartStore CartStore,
	stripeClient StripeClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		cartStore:    cartStore,
		stripeClient: stripeClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case оформления заказа
// Цены пересчитываются по каталогу: корзина хранится на клиентской стороне
// сессии и её ценам доверять нельзя. Если платёжную сессию создать не удалось,
// заказ удаляется, а корзина остаётся нетронутой для повторной попытки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Checkout: user=%d", req.UserID)

	// 1. Загружаем корзину
	cart, err := uc.cartStore.Load(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("Checkout: failed to load cart for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	if cart.State() == domain.CartEmpty {
		uc.logger.Warn("Checkout: empty cart for user=%d", req.UserID)
		return nil, ErrEmptyCart
	}

	// 2. Пересчитываем цены по каталогу, включая добавки
	ids := make([]int64, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		ids = append(ids, l.ProductID)
		for _, s := range l.Supplements {
			ids = append(ids, s.ProductID)
		}
	}

	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("Checkout: catalog error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: catalog error: %v", ErrInternal, err)
	}

	priceByID := make(map[int64]*domain.Product, len(products))
	for _, p := range products {
		priceByID[p.ID] = p
	}

	items := make([]domain.OrderItem, 0, len(cart.Lines))
	lineItems := make([]stripepay.LineItem, 0, len(cart.Lines))
	var total float64

	for _, l := range cart.Lines {
		product, ok := priceByID[l.ProductID]
		if !ok {
			uc.logger.Warn("Checkout: product=%d from cart not found in catalog", l.ProductID)
			return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, l.ProductID)
		}

		item := domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Qty:       l.Qty,
		}

		lineItems = append(lineItems, stripepay.LineItem{
			Name:       product.Name,
			UnitAmount: toMinorUnits(product.Price),
			Quantity:   int64(l.Qty),
		})

		lineTotal := product.Price * float64(l.Qty)

		if len(l.Supplements) > 0 {
			supplements := make([]domain.CartSupplement, 0, len(l.Supplements))
			for _, s := range l.Supplements {
				catalogSup, ok := priceByID[s.ProductID]
				if !ok {
					uc.logger.Warn("Checkout: supplement product=%d from cart not found in catalog", s.ProductID)
					return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, s.ProductID)
				}

				supplements = append(supplements, domain.CartSupplement{
					ProductID: catalogSup.ID,
					Name:      catalogSup.Name,
					UnitPrice: catalogSup.Price,
					Qty:       s.Qty,
				})

				lineItems = append(lineItems, stripepay.LineItem{
					Name:       product.Name + " - " + catalogSup.Name,
					UnitAmount: toMinorUnits(catalogSup.Price),
					Quantity:   int64(s.Qty),
				})
				lineTotal += catalogSup.Price * float64(s.Qty)
			}

			raw, err := json.Marshal(supplements)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to encode supplements: %v", ErrInternal, err)
			}
			encoded := string(raw)
			item.Supplements = &encoded
		}

		items = append(items, item)
		total += lineTotal
	}

	// 3. Создаем заказ в статусе pending
	order := &domain.Order{
		UserID:    req.UserID,
		Reference: uuid.NewString(),
		Items:     items,
		Total:     total,
		Status:    domain.OrderPending,
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.orderRepo.Create(txCtx, order)
		if err != nil {
			uc.logger.Error("Checkout: failed to create order for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Checkout: order id=%d reference=%s total=%.2f created", order.ID, order.Reference, order.Total)

	// 4. Создаем платёжную сессию Stripe
	session, err := uc.stripeClient.CreateCheckoutSession(ctx, order.Reference, lineItems)
	if err != nil {
		uc.logger.Error("Checkout: stripe session failed for order id=%d: %v", order.ID, err)

		// Заказ без платёжной сессии не нужен, корзина остаётся для повторной попытки
		if delErr := uc.orderRepo.Delete(ctx, order.ID); delErr != nil {
			uc.logger.Error("Checkout: failed to delete order id=%d after stripe failure: %v", order.ID, delErr)
		}

		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	// 5. Привязываем сессию к заказу
	if err := uc.orderRepo.SetSession(ctx, order.ID, session.ID); err != nil {
		uc.logger.Error("Checkout: failed to set session for order id=%d: %v", order.ID, err)
		return nil, fmt.Errorf("%w: failed to set session: %v", ErrInternal, err)
	}

	uc.logger.Info("Checkout: order id=%d handed off to stripe session=%s", order.ID, session.ID)

	return &Response{
		OrderID:     order.ID,
		Reference:   order.Reference,
		Total:       order.Total,
		CheckoutURL: session.URL,
		SessionID:   session.ID,
	}, nil
}

// toMinorUnits переводит цену в минорные единицы валюты (центы)
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
