package get_available_slots

import "time"

// Request модель запроса доступных слотов на дату
type Request struct {
	Date time.Time // Дата (без времени)
}

// Slot доступность одного слота
type Slot struct {
	Time           string // Время слота, например "19:30"
	RemainingSeats int    // Сколько мест осталось
	Available      bool   // Можно ли бронировать этот слот онлайн
}

// Response модель ответа со слотами на дату
type Response struct {
	Date          string // Дата в формате "2026-03-14"
	OnlineEnabled bool   // Включены ли онлайн-бронирования вообще
	Slots         []Slot // Сетка слотов с остатками
}
