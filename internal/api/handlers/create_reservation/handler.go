package create_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPartyTooLarge      = "для групп больше 14 человек позвоните в ресторан"
	msgOnlineDisabled     = "онлайн-бронирование временно недоступно"
	msgDateDisabled       = "выбранная дата недоступна для бронирования"
	msgTimeDisabled       = "выбранное время недоступно для бронирования"
	msgInvalidSlot        = "выбранное время не входит в расписание ресторана"
	msgInvalidDate        = "некорректная дата бронирования"
	msgSlotFull           = "недостаточно мест в выбранном слоте, осталось мест: %d"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotFull *createReservation.SlotFullError

		switch {
		case errors.As(err, &slotFull):
			h.logger.Warn("POST /reservations - Slot full: date=%s, time=%s, remaining=%d",
				req.Date, req.Time, slotFull.Remaining)
			handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(msgSlotFull, slotFull.Remaining))

		case errors.Is(err, createReservation.ErrPartyTooLarge):
			h.logger.Info("POST /reservations - Party too large: party=%d", req.PartySize)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPartyTooLarge)

		case errors.Is(err, createReservation.ErrOnlineDisabled):
			h.logger.Info("POST /reservations - Online reservations disabled")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgOnlineDisabled)

		case errors.Is(err, createReservation.ErrDateDisabled):
			h.logger.Info("POST /reservations - Date disabled: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateDisabled)

		case errors.Is(err, createReservation.ErrTimeDisabled):
			h.logger.Info("POST /reservations - Time disabled: time=%s", req.Time)
			handlers.RespondError(w, http.StatusConflict, msgTimeDisabled)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /reservations - Invalid slot: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, date=%s, time=%s, party=%d",
		result.ID, req.Date, req.Time, req.PartySize)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
