package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	checkoutUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/checkout"
)

const (
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgEmptyCart          = "корзина пуста"
	msgProductNotFound    = "товар из корзины больше недоступен"
	msgPaymentUnavailable = "оплата временно недоступна, попробуйте позже"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkoutUC.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrEmptyCart):
			h.logger.Warn("POST /orders/checkout - Empty cart: user=%d", userID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgEmptyCart)

		case errors.Is(err, checkoutUC.ErrProductNotFound):
			h.logger.Warn("POST /orders/checkout - Product not found: user=%d: %v", userID, err)
			handlers.RespondError(w, http.StatusConflict, msgProductNotFound)

		case errors.Is(err, checkoutUC.ErrPaymentUnavailable):
			h.logger.Error("POST /orders/checkout - Payment unavailable: user=%d: %v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /orders/checkout - Failed for user=%d: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/checkout - Order created: user=%d, order=%d, reference=%s",
		userID, result.OrderID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
