package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	cartService "github.com/m04kA/SMC-RestaurantService/internal/service/cart"
	cartModels "github.com/m04kA/SMC-RestaurantService/internal/service/cart/models"
)

const (
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgProductNotFound    = "товар не найден"
	msgProductUnavailable = "товар временно недоступен"
)

type Handler struct {
	cartService CartService
	logger      Logger
}

func NewHandler(cartService CartService, logger Logger) *Handler {
	return &Handler{
		cartService: cartService,
		logger:      logger,
	}
}

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req cartModels.AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.cartService.AddItem(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrProductNotFound):
			h.logger.Warn("POST /cart/items - Product not found: user=%d, product=%d", userID, req.ProductID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, cartService.ErrProductUnavailable):
			h.logger.Warn("POST /cart/items - Product unavailable: user=%d, product=%d", userID, req.ProductID)
			handlers.RespondError(w, http.StatusConflict, msgProductUnavailable)

		case errors.Is(err, cartService.ErrInvalidInput):
			h.logger.Warn("POST /cart/items - Invalid input: user=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /cart/items - Failed for user=%d: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - Item added: user=%d, product=%d, itemCount=%d",
		userID, req.ProductID, result.ItemCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
