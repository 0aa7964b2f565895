package get_user_orders

import (
	"context"

	orderModels "github.com/m04kA/SMC-RestaurantService/internal/service/orders/models"
)

type OrdersService interface {
	GetUserOrders(ctx context.Context, userID int64) (*orderModels.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
