package stripe_webhook

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	ordersService "github.com/m04kA/SMC-RestaurantService/internal/service/orders"
)

const msgInvalidPayload = "некорректное тело события"

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

// Handle POST /api/v1/webhook/stripe
// Stripe повторяет доставку при не-2xx ответе, поэтому неизвестные события
// и неизвестные сессии подтверждаются, а 500 возвращается только при сбоях БД
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.logger.Warn("POST /webhook/stripe - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	sessionID := event.Data.Object.ID

	switch event.Type {
	case eventSessionCompleted:
		err := h.ordersService.MarkPaidBySession(r.Context(), sessionID, event.Data.Object.CustomerDetails.Email)
		if err != nil && !errors.Is(err, ordersService.ErrOrderNotFound) {
			h.logger.Error("POST /webhook/stripe - Failed to mark paid: session=%s: %v", sessionID, err)
			handlers.RespondInternalError(w)
			return
		}
		if errors.Is(err, ordersService.ErrOrderNotFound) {
			h.logger.Warn("POST /webhook/stripe - Unknown session: %s", sessionID)
		}

	case eventSessionExpired:
		err := h.ordersService.MarkCancelledBySession(r.Context(), sessionID)
		if err != nil && !errors.Is(err, ordersService.ErrOrderNotFound) {
			h.logger.Error("POST /webhook/stripe - Failed to mark cancelled: session=%s: %v", sessionID, err)
			handlers.RespondInternalError(w)
			return
		}

	default:
		h.logger.Info("POST /webhook/stripe - Ignoring event type=%s", event.Type)
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"received": "true"})
}
