package catalog

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// ProductRepository интерфейс репозитория каталога
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
