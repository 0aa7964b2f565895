package reset_limits

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
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

// Handle DELETE /api/v1/admin/reservation-limits
// Сбрасывает ограничения к значениям по умолчанию: онлайн-бронирования
// включены, черные списки пусты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.limitsService.Reset(r.Context())
	if err != nil {
		h.logger.Error("DELETE /admin/reservation-limits - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/reservation-limits - Limits reset to defaults")
	handlers.RespondJSON(w, http.StatusOK, result)
}
