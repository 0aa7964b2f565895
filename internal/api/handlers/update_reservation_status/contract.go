package update_reservation_status

import (
	"context"

	reservationModels "github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
)

type ReservationsService interface {
	UpdateStatus(ctx context.Context, id int64, status string) (*reservationModels.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
