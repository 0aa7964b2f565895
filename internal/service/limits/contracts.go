package limits

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// LimitConfigRepository интерфейс репозитория конфигурации ограничений
type LimitConfigRepository interface {
	Read(ctx context.Context) (*domain.LimitConfig, error)
	Write(ctx context.Context, config *domain.LimitConfig) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
