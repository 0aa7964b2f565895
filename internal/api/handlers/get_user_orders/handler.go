package get_user_orders

import (
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
)

const msgUnauthorized = "пользователь не аутентифицирован"

type Handler struct {
	ordersService OrdersService
	logger        Logger
}

func NewHandler(ordersService OrdersService, logger Logger) *Handler {
	return &Handler{
		ordersService: ordersService,
		logger:        logger,
	}
}

// Handle GET /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.ordersService.GetUserOrders(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /orders - Failed for user=%d: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /orders - Returned %d orders for user=%d", result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
