package get_limits

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

// Handle GET /api/v1/admin/reservation-limits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.limitsService.GetStatus(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reservation-limits - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
