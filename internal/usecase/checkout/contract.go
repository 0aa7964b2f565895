package checkout

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/stripepay"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	SetSession(ctx context.Context, id int64, sessionID string) error
	Delete(ctx context.Context, id int64) error
}

// ProductRepository интерфейс репозитория каталога
type ProductRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error)
}

// CartStore интерфейс хранилища корзин
type CartStore interface {
	Load(ctx context.Context, userID int64) (*domain.Cart, error)
}

// StripeClient интерфейс платёжного клиента
type StripeClient interface {
	CreateCheckoutSession(ctx context.Context, reference string, items []stripepay.LineItem) (*stripepay.CheckoutSession, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
