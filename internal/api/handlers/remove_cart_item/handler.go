package remove_cart_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	cartService "github.com/m04kA/SMC-RestaurantService/internal/service/cart"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
	msgInvalidIndex = "некорректный индекс позиции корзины"
	msgLineNotFound = "позиция корзины не найдена"
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

// Handle DELETE /api/v1/cart/items/{index}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 {
		h.logger.Warn("DELETE /cart/items - Invalid index: %s", mux.Vars(r)["index"])
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	result, err := h.cartService.RemoveItem(r.Context(), userID, index)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrLineNotFound):
			h.logger.Warn("DELETE /cart/items - Line not found: user=%d, index=%d", userID, index)
			handlers.RespondNotFound(w, msgLineNotFound)

		default:
			h.logger.Error("DELETE /cart/items - Failed for user=%d: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cart/items - Item removed: user=%d, index=%d", userID, index)
	handlers.RespondJSON(w, http.StatusOK, result)
}
