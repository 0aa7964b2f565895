package update_cart_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	cartService "github.com/m04kA/SMC-RestaurantService/internal/service/cart"
	cartModels "github.com/m04kA/SMC-RestaurantService/internal/service/cart/models"
)

const (
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidIndex       = "некорректный индекс позиции корзины"
	msgLineNotFound       = "позиция корзины не найдена"
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

// Handle PATCH /api/v1/cart/items/{index}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 {
		h.logger.Warn("PATCH /cart/items - Invalid index: %s", mux.Vars(r)["index"])
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	var req cartModels.ChangeQtyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.cartService.ChangeQty(r.Context(), userID, index, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrLineNotFound):
			h.logger.Warn("PATCH /cart/items - Line not found: user=%d, index=%d", userID, index)
			handlers.RespondNotFound(w, msgLineNotFound)

		default:
			h.logger.Error("PATCH /cart/items - Failed for user=%d: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /cart/items - Qty changed: user=%d, index=%d, delta=%d", userID, index, req.Delta)
	handlers.RespondJSON(w, http.StatusOK, result)
}
