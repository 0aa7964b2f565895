package models

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Request модели

// GetReservationsRequest запрос на получение списка броней (админка)
type GetReservationsRequest struct {
	Date             *time.Time `json:"date,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		if !domain.ValidReservationStatus(*r.Status) {
			return filter, ErrInvalidStatus
		}
		status := domain.ReservationStatus(*r.Status)
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	PartySize int     `json:"partySize"`
	Date      string  `json:"date"` // "2026-03-14"
	Time      string  `json:"time"` // "19:30"
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain бронь в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		PartySize: r.PartySize,
		Date:      r.Date.Format(domain.DateFormat),
		Time:      r.Time.String(),
		Status:    string(r.Status),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain броней в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, *FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
