package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Time           string `json:"time"`
	RemainingSeats int    `json:"remainingSeats"`
	Available      bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string         `json:"date"`
	OnlineEnabled bool           `json:"onlineEnabled"`
	Slots         []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:           s.Time,
			RemainingSeats: s.RemainingSeats,
			Available:      s.Available,
		})
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date,
		OnlineEnabled: resp.OnlineEnabled,
		Slots:         slots,
	}
}
