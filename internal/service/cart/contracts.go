package cart

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// CartStore интерфейс хранилища корзин
type CartStore interface {
	Load(ctx context.Context, userID int64) (*domain.Cart, error)
	Save(ctx context.Context, userID int64, cart *domain.Cart) error
}

// ProductRepository интерфейс репозитория каталога
type ProductRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
