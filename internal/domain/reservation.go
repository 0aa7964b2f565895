package domain

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// ReservationStatus статус брони столика
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation бронь столика в ресторане
type Reservation struct {
	ID         int64
	Name       string
	Phone      string
	Email      string
	PartySize  int
	Date       time.Time        // Дата брони (без времени)
	Time       types.TimeString // Время слота, например "19:30"
	Status     ReservationStatus
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive возвращает true, если бронь занимает места в квоте слота
// Отменённые брони в подсчёте квоты не участвуют
func (r *Reservation) IsActive() bool {
	return r.Status != ReservationCancelled
}

// CanTransitionTo проверяет допустимость перехода статуса
// Разрешены только переходы Pending -> Confirmed и Pending/Confirmed -> Cancelled
func (r *Reservation) CanTransitionTo(target ReservationStatus) bool {
	switch target {
	case ReservationConfirmed:
		return r.Status == ReservationPending
	case ReservationCancelled:
		return r.Status == ReservationPending || r.Status == ReservationConfirmed
	default:
		return false
	}
}

// ValidReservationStatus проверяет, что строка является известным статусом
func ValidReservationStatus(s string) bool {
	switch ReservationStatus(s) {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	default:
		return false
	}
}

// ReservationsFilter фильтр для выборки броней (админский список)
type ReservationsFilter struct {
	Date             *time.Time         // Конкретная дата (опционально)
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые брони
}
