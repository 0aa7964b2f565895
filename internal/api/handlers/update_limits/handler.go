package update_limits

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	limitsService "github.com/m04kA/SMC-RestaurantService/internal/service/limits"
	limitsModels "github.com/m04kA/SMC-RestaurantService/internal/service/limits/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyUpdate        = "нужно указать хотя бы одно поле для изменения"
)

type Handler struct {
	limitsService LimitsService
	logger        Logger
}

func NewHandler(limitsService LimitsService, logger Logger) *Handler {
	return &Handler{
		limitsService: limitsService,
		logger:        logger,
	}
}

// Handle PUT /api/v1/admin/reservation-limits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req limitsModels.UpdateLimitsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/reservation-limits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.limitsService.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, limitsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/reservation-limits - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmptyUpdate)

		default:
			h.logger.Error("PUT /admin/reservation-limits - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/reservation-limits - Updated: onlineEnabled=%v, rejectedHours=%d, rejectedDates=%d",
		result.OnlineEnabled, len(result.RejectedHours), len(result.RejectedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
