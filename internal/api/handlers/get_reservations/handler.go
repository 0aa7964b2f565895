package get_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationsService "github.com/m04kA/SMC-RestaurantService/internal/service/reservations"
	reservationModels "github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

const (
	msgInvalidDateFormat = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus     = "некорректный статус брони"
)

type Handler struct {
	reservationsService ReservationsService
	logger              Logger
}

func NewHandler(reservationsService ReservationsService, logger Logger) *Handler {
	return &Handler{
		reservationsService: reservationsService,
		logger:              logger,
	}
}

// Handle GET /api/v1/admin/reservations?date=&status=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &reservationModels.GetReservationsRequest{
		IncludeCancelled: r.URL.Query().Get("includeCancelled") == "true",
	}

	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid date %q: %v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidDateFormat)
			return
		}
		req.Date = ptr.Ptr(date)
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.reservationsService.GetReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/reservations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Returned %d reservations", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
