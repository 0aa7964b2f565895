package domain

// Слоты бронирования: обед и ужин с фиксированным шагом
const (
	LunchOpenTime  = "12:00"
	LunchCloseTime = "14:00"

	DinnerOpenTime  = "19:00"
	DinnerCloseTime = "22:30"

	SlotStepMinutes = 30
)

// Бизнес-ограничения бронирования
const (
	// SlotCapacity максимальное суммарное количество гостей на один слот
	SlotCapacity = 40

	// MaxPartySize максимальное количество гостей в одной брони
	MaxPartySize = 14

	// MinPartySize минимальное количество гостей в одной брони
	MinPartySize = 1
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения на данные заказа
const (
	MaxOrderItemNameLength = 200
	MaxContactNameLength   = 100
)
