package update_limits

import (
	"context"

	limitsModels "github.com/m04kA/SMC-RestaurantService/internal/service/limits/models"
)

type LimitsService interface {
	Update(ctx context.Context, req *limitsModels.UpdateLimitsRequest) (*limitsModels.UpdateLimitsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
