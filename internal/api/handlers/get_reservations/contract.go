package get_reservations

import (
	"context"

	reservationModels "github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetReservations(ctx context.Context, req *reservationModels.GetReservationsRequest) (*reservationModels.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
