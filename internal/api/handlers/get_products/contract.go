package get_products

import (
	"context"

	catalogModels "github.com/m04kA/SMC-RestaurantService/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) (*catalogModels.ProductListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
