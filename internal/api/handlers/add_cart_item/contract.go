package add_cart_item

import (
	"context"

	cartModels "github.com/m04kA/SMC-RestaurantService/internal/service/cart/models"
)

type CartService interface {
	AddItem(ctx context.Context, userID int64, req *cartModels.AddItemRequest) (*cartModels.CartView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
