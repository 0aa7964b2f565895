package get_limits

import (
	"context"

	limitsModels "github.com/m04kA/SMC-RestaurantService/internal/service/limits/models"
)

type LimitsService interface {
	GetStatus(ctx context.Context) (*limitsModels.LimitsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
