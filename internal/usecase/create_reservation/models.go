package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	Name      string           // Имя гостя
	Phone     string           // Контактный телефон
	Email     string           // Email для уведомлений
	PartySize int              // Количество человек
	Date      time.Time        // Дата брони (без времени)
	Time      types.TimeString // Время слота (например, "19:30")
	Notes     *string          // Пожелания гостя (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        int64            // ID созданной брони
	Name      string           // Имя гостя
	Phone     string           // Контактный телефон
	Email     string           // Email
	PartySize int              // Количество человек
	Date      time.Time        // Дата брони
	Time      types.TimeString // Время слота
	Status    string           // Статус брони (pending до подтверждения)
	Notes     *string          // Пожелания

	// RemainingSeats сколько мест осталось в слоте после этой брони
	RemainingSeats int

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
