package orders

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Order, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// CartStore интерфейс хранилища корзин
type CartStore interface {
	Clear(ctx context.Context, userID int64) error
}

// Mailer интерфейс отправителя уведомлений
type Mailer interface {
	SendOrderPaid(to, reference string, total float64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
