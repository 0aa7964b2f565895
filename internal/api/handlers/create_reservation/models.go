package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	createReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	PartySize int     `json:"partySize"`
	Date      string  `json:"date"` // "2026-03-14"
	Time      string  `json:"time"` // "19:30"
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	PartySize      int     `json:"partySize"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	RemainingSeats int     `json:"remainingSeats"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		PartySize: r.PartySize,
		Date:      date,
		Time:      slotTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		Name:           resp.Name,
		Phone:          resp.Phone,
		Email:          resp.Email,
		PartySize:      resp.PartySize,
		Date:           resp.Date.Format(domain.DateFormat),
		Time:           resp.Time.String(),
		Status:         resp.Status,
		Notes:          resp.Notes,
		RemainingSeats: resp.RemainingSeats,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
